package ploverlang

import (
	"regexp"
	"strings"

	"github.com/stenocode/cretrans/directive"
)

// Format renders a directive sequence as Plover translation text. This is
// the formatter used on the RTF->Plover path: it is the only place
// directive.OrthoAttach is ever consumed, via the attach fixup applied
// once to the whole rendered string afterwards.
func Format(seq []directive.Directive) string {
	var b strings.Builder
	orthoAttach := false
	for _, d := range seq {
		if d.Kind == directive.OrthoAttachKind {
			orthoAttach = true
			continue
		}
		b.WriteString(renderOne(d))
	}
	out := b.String()
	if orthoAttach {
		out = fixAttach(out)
	}
	return out
}

func renderOne(d directive.Directive) string {
	switch d.Kind {
	case directive.RawStringKind:
		return d.Text
	case directive.CancelKind:
		return "{}"
	case directive.NoopKind:
		return "{#}"
	case directive.HardSpaceKind:
		return "{^ ^}"
	case directive.DeleteStrokeKind:
		return "=undo"
	case directive.RepeatLastStrokeKind:
		return "{*+}"
	case directive.RetroToggleStarKind:
		return "{*}"
	case directive.RetroInsertSpaceKind:
		return "{*?}"
	case directive.RetroDeleteSpaceKind:
		return "{*!}"
	case directive.ParagraphKind:
		if d.ParagraphMode == directive.ParagraphContin {
			return "{#return}{#return}    "
		}
		return "{#return}{#return}"
	case directive.FingerspellKind:
		return "{&" + d.Text + "}"
	case directive.StitchKind:
		return "{:stitch:" + d.Text + "}"
	case directive.CommandKind:
		if d.HasArg {
			return "{plover:" + d.Name + ":" + d.Arg + "}"
		}
		return "{plover:" + d.Name + "}"
	case directive.MetaKind:
		if d.HasArg {
			return "{:" + d.Name + ":" + d.Arg + "}"
		}
		return "{:" + d.Name + "}"
	case directive.MacroKind:
		if d.HasArg {
			return "=" + d.Name + ":" + d.Arg
		}
		return "=" + d.Name
	case directive.CurrencyKind:
		pre := ""
		if d.HasPre {
			pre = d.Pre
		}
		post := ""
		if d.HasPost {
			post = d.Post
		}
		return "{*(" + pre + "c" + post + ")}"
	case directive.PunctuationKind:
		return "{" + d.Text + "}"
	case directive.KeyComboKind:
		return "{#" + d.Text + "}"
	case directive.CaseModeKind:
		return "{mode:" + caseModeName(d.Case) + "}"
	case directive.SpaceModeKind:
		if d.HasSpace {
			return "{mode:set_space:" + d.Space + "}"
		}
		return "{mode:reset_space}"
	case directive.ResetCaseAndSpaceKind:
		return "{mode:reset}"
	case directive.AttachRawKind:
		return "{^}"
	case directive.ForceCapitalizeKind:
		return "{-|}"
	case directive.ForceLowercaseKind:
		return "{>}"
	case directive.ForceCapitalizeWordKind:
		return "{<}"
	case directive.RetroForceCapitalizeKind:
		return "{*-|}"
	case directive.RetroForceLowercaseKind:
		return "{*>}"
	case directive.RetroForceCapitalizeWordKind:
		return "{*<}"
	case directive.CarryCapRawKind:
		return "{~|}"
	default:
		// Space, Attach{Prefix,Suffix,Infix}, CarryCap{Prefix,Suffix,Infix}
		// never arise from the RTF parse table directly; they only appear
		// as the result of the attach fixup below, never as an input
		// directive on this path.
		return ""
	}
}

func caseModeName(c directive.Case) string {
	switch c {
	case directive.CaseSentence:
		return "reset_case"
	case directive.CaseLower:
		return "lower"
	case directive.CaseUpper:
		return "caps"
	case directive.CaseTitle:
		return "title"
	case directive.CaseCamel:
		return "camel"
	case directive.CaseSnake:
		return "snake"
	default:
		return "reset_case"
	}
}

// fixAttach folds the AttachRaw/RawString token pairs an OrthoAttach
// marker leaves behind into Plover's own attach-block spelling. It is
// anchored to the whole rendered string and applied in a fixed order,
// innermost form first.
var (
	reInfix           = regexp.MustCompile(`^\{\^\}([^{]+?)\{\^\}$`)
	rePrefix          = regexp.MustCompile(`^([^{]+?)\{\^\}$`)
	reSuffix          = regexp.MustCompile(`^\{\^\}([^{]+?)$`)
	reCarryCapInfix   = regexp.MustCompile(`^\{~\|\}\{\^\}([^{]+?)\{\^\}$`)
	reCarryCapPrefix  = regexp.MustCompile(`^\{~\|\}([^{]+?)\{\^\}$`)
	reCarryCapSuffix  = regexp.MustCompile(`^\{~\|\}\{\^\}([^{]+?)$`)
	reCarryCap        = regexp.MustCompile(`^\{~\|\}([^{]+?)$`)
)

func fixAttach(s string) string {
	s = reInfix.ReplaceAllString(s, `{^$1^}`)
	s = rePrefix.ReplaceAllString(s, `{$1^}`)
	s = reSuffix.ReplaceAllString(s, `{^$1}`)
	s = reCarryCapInfix.ReplaceAllString(s, `{~|^$1^}`)
	s = reCarryCapPrefix.ReplaceAllString(s, `{~|$1^}`)
	s = reCarryCapSuffix.ReplaceAllString(s, `{~|^$1}`)
	s = reCarryCap.ReplaceAllString(s, `{~|$1}`)
	return s
}
