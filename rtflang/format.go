package rtflang

import (
	"strconv"
	"strings"

	"github.com/stenocode/cretrans/directive"
)

// Format renders a directive sequence as an RTF translation body. This is
// the formatter used on the Plover->RTF path; directive.OrthoAttach never
// reaches it (an RTF-only marker consumed solely by ploverlang.Format) and
// is rendered as nothing if it somehow does.
func Format(seq []directive.Directive) string {
	var b strings.Builder
	for _, d := range seq {
		b.WriteString(renderOne(d))
	}
	return b.String()
}

func renderOne(d directive.Directive) string {
	switch d.Kind {
	case directive.RawStringKind:
		return escapeText(d.Text)
	case directive.CancelKind:
		return `{\*\cxplvrcancel}`
	case directive.NoopKind:
		return `{\*\cxplvrnop}`
	case directive.SpaceKind:
		return " "
	case directive.HardSpaceKind:
		return `\~`
	case directive.DeleteStrokeKind:
		return `\cxdstroke `
	case directive.RepeatLastStrokeKind:
		return `{\*\cxplvrrpt}`
	case directive.RetroToggleStarKind:
		return `{\*\cxplvrast}`
	case directive.RetroInsertSpaceKind:
		return `{\*\cxplvrrtisp}`
	case directive.RetroDeleteSpaceKind:
		return `{\*\cxplvrrtdsp}`
	case directive.ParagraphKind:
		if d.ParagraphMode == directive.ParagraphContin {
			return `\par\s1 `
		}
		return `\par\s0 `
	case directive.FingerspellKind:
		return `{\cxfing ` + escapeText(d.Text) + `}`
	case directive.StitchKind:
		return `{\cxstit ` + escapeText(d.Text) + `}`
	case directive.PunctuationKind:
		return `{\cxp` + d.Text + ` }`
	case directive.KeyComboKind:
		return `{\*\cxplvrkey ` + d.Text + `}`
	case directive.CommandKind:
		return `{\*\cxplvrcmd ` + nameArg(d) + `}`
	case directive.MetaKind:
		return `{\*\cxplvrmeta ` + nameArg(d) + `}`
	case directive.MacroKind:
		return `{\*\cxplvrmac ` + nameArg(d) + `}`
	case directive.CurrencyKind:
		pre := ""
		if d.HasPre {
			pre = d.Pre
		}
		post := ""
		if d.HasPost {
			post = d.Post
		}
		return `{\*\cxplvrcurr ` + pre + "c" + post + `}`
	case directive.CaseModeKind:
		return caseModeRTF(d.Case)
	case directive.SpaceModeKind:
		if d.HasSpace {
			return `{\*\cxplvrspc ` + d.Space + `}`
		}
		return `{\*\cxplvrspc}`
	case directive.ResetCaseAndSpaceKind:
		return `{\*\cxplvrcase0\cxplvrspc0}`
	case directive.ForceCapitalizeKind:
		return `\cxfc `
	case directive.ForceLowercaseKind:
		return `\cxfl `
	case directive.ForceCapitalizeWordKind:
		return `{\*\cxplvrfcw}`
	case directive.RetroForceCapitalizeKind:
		return `{\*\cxplvrrtfc}`
	case directive.RetroForceLowercaseKind:
		return `{\*\cxplvrrtfl}`
	case directive.RetroForceCapitalizeWordKind:
		return `{\*\cxplvrrtfcw}`
	case directive.AttachRawKind:
		return `\cxds `
	// Attach and carry-capitalize payloads are written verbatim, without
	// escapeText.
	case directive.AttachSuffixKind:
		return `{\*\cxplvrortho}\cxds ` + d.Text
	case directive.AttachPrefixKind:
		return `{\*\cxplvrortho}` + d.Text + `\cxds `
	case directive.AttachInfixKind:
		return `{\*\cxplvrortho}\cxds ` + d.Text + `\cxds `
	case directive.CarryCapRawKind:
		return `{\*\cxplvrccap}` + d.Text
	case directive.CarryCapSuffixKind:
		return `{\*\cxplvrccap}{\*\cxplvrortho}\cxds ` + d.Text
	case directive.CarryCapPrefixKind:
		return `{\*\cxplvrccap}{\*\cxplvrortho}` + d.Text + `\cxds `
	case directive.CarryCapInfixKind:
		return `{\*\cxplvrccap}{\*\cxplvrortho}\cxds ` + d.Text + `\cxds `
	default:
		// OrthoAttach never legitimately reaches this formatter.
		return ""
	}
}

func nameArg(d directive.Directive) string {
	if d.HasArg {
		return d.Name + ":" + d.Arg
	}
	return d.Name
}

func caseModeRTF(c directive.Case) string {
	switch c {
	case directive.CaseSentence:
		return `{\*\cxplvrcase0}`
	case directive.CaseLower:
		return `{\*\cxplvrcase1}`
	case directive.CaseUpper:
		return `{\*\cxplvrcase2}`
	case directive.CaseTitle:
		return `{\*\cxplvrcase3}`
	case directive.CaseCamel:
		return `{\*\cxplvrcase4\cxplvrspc}`
	case directive.CaseSnake:
		return `{\*\cxplvrcase0\cxplvrspc _}`
	default:
		return `{\*\cxplvrcase0}`
	}
}

// escapeText applies the Plover->RTF escaping rules to literal RawString
// (and other free-text payload) content, rune by rune.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '-':
			b.WriteString(`\_`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r > 255 {
				b.WriteString(`\u`)
				b.WriteString(strconv.Itoa(int(r)))
				b.WriteByte(' ')
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
