package rtflang

import (
	"strconv"
	"strings"

	"github.com/stenocode/cretrans/directive"
)

// Parse recognizes an RTF translation body and returns the directive
// sequence it spells out. Parse never fails: a control word, symbol or
// group it doesn't recognize contributes no directive (the RTF
// equivalent of degrading to an empty RawString), and text runs become
// RawString.
func Parse(input string) []directive.Directive {
	p := &parser{sc: NewScanner(input)}
	p.run()
	return p.out
}

type parser struct {
	sc  *Scanner
	out []directive.Directive
}

func (p *parser) emit(d directive.Directive) {
	p.out = append(p.out, d)
}

func (p *parser) run() {
	for {
		tok := p.sc.Next()
		switch tok.Type {
		case EOFToken:
			return
		case LeftBraceToken:
			p.parseGroup()
		case RightBraceToken:
			// Unbalanced close brace; drop and keep going.
		case ControlWordToken:
			p.dispatchControlWord(tok)
		case ControlSymbolToken:
			p.dispatchControlSymbol(tok)
		case UnicodeEscapeToken:
			p.emit(directive.RawString(string(rune(tok.CodePoint))))
		case TextToken:
			if tok.Text != "" {
				p.emit(directive.RawString(tok.Text))
			}
		}
	}
}

func (p *parser) dispatchControlWord(tok Token) {
	switch tok.Word {
	case "par":
		p.parsePar()
	case "cxdstroke":
		p.emit(directive.DeleteStroke())
	case "cxfc":
		p.emit(directive.ForceCapitalize())
	case "cxfl":
		p.emit(directive.ForceLowercase())
	case "cxds":
		p.emit(directive.AttachRaw())
	case "n":
		p.emit(directive.RawString(`\n`))
	case "t":
		p.emit(directive.RawString(`\t`))
	default:
		// Unrecognized control word: silently dropped.
	}
}

func (p *parser) parsePar() {
	clone := p.sc.Clone()
	tok := clone.Next()
	if tok.Type == ControlWordToken && tok.Word == "s" && tok.HasNum {
		*p.sc = *clone
		if tok.Num == 1 {
			p.emit(directive.Paragraph(directive.ParagraphContin))
			return
		}
	}
	p.emit(directive.Paragraph(directive.ParagraphDefault))
}

func (p *parser) dispatchControlSymbol(tok Token) {
	switch tok.Symbol {
	case '_':
		p.emit(directive.RawString("-"))
	case '~':
		p.emit(directive.HardSpace())
	case '\\', '{', '}':
		p.emit(directive.RawString(`\` + string(tok.Symbol)))
	default:
		// Stray "\*" or other symbol outside a group: dropped.
	}
}

// parseGroup is called immediately after consuming a LeftBraceToken.
func (p *parser) parseGroup() {
	clone := p.sc.Clone()
	first := clone.Next()
	if first.Type == ControlSymbolToken && first.Symbol == '*' {
		second := clone.Next()
		if second.Type == ControlWordToken {
			*p.sc = *clone
			if p.dispatchExtensionGroup(second) {
				return
			}
			return
		}
	}
	if first.Type == ControlWordToken {
		switch first.Word {
		case "cxp", "cxfing", "cxstit", "cxconf", "cxa":
			*p.sc = *clone
			p.dispatchPlainGroup(first)
			return
		}
	}
	// Unrecognized group shape; skip it whole, contributing nothing.
	p.sc.readBalancedBody()
}

// dispatchExtensionGroup handles a "{\*\cxplvrXXX ...}" group. The caller
// has already consumed through the marker control word.
func (p *parser) dispatchExtensionGroup(word Token) bool {
	switch word.Word {
	case "cxplvrcase":
		p.parseCaseGroup(word)
	case "cxplvrnop":
		p.closeGroup()
		p.emit(directive.Noop())
	case "cxplvrcancel":
		p.closeGroup()
		p.emit(directive.Cancel())
	case "cxplvrast":
		p.closeGroup()
		p.emit(directive.RetroToggleStar())
	case "cxplvrrpt":
		p.closeGroup()
		p.emit(directive.RepeatLastStroke())
	case "cxplvrrtisp":
		p.closeGroup()
		p.emit(directive.RetroInsertSpace())
	case "cxplvrrtdsp":
		p.closeGroup()
		p.emit(directive.RetroDeleteSpace())
	case "cxplvrccap":
		p.closeGroup()
		p.emit(directive.CarryCapRaw(""))
	case "cxplvrrtfc":
		p.closeGroup()
		p.emit(directive.RetroForceCapitalize())
	case "cxplvrrtfl":
		p.closeGroup()
		p.emit(directive.RetroForceLowercase())
	case "cxplvrfcw":
		p.closeGroup()
		p.emit(directive.ForceCapitalizeWord())
	case "cxplvrrtfcw":
		p.closeGroup()
		p.emit(directive.RetroForceCapitalizeWord())
	case "cxplvrspc":
		p.parseStandaloneSpaceGroup(word)
	case "cxplvrortho":
		p.closeGroup()
		p.emit(directive.OrthoAttach())
	case "cxplvrmeta":
		body, _ := p.sc.readBalancedBody()
		name, arg := splitNameArg(body)
		p.emit(directive.Meta(strings.ToLower(name), arg))
	case "cxplvrmac":
		body, _ := p.sc.readBalancedBody()
		name, arg := splitNameArg(body)
		p.emit(directive.Macro(strings.ToLower(name), arg))
	case "cxplvrcmd":
		body, _ := p.sc.readBalancedBody()
		name, arg := splitNameArg(body)
		p.emit(directive.Command(strings.ToLower(name), arg))
	case "cxplvrkey":
		body, _ := p.sc.readBalancedBody()
		p.emit(directive.KeyCombo(body))
	case "cxplvrcurr":
		body, _ := p.sc.readBalancedBody()
		p.emit(currencyFromBody(body))
	default:
		p.sc.readBalancedBody()
	}
	return true
}

// closeGroup consumes through the group's matching close brace, dropping
// whatever (normally nothing) is left in the body.
func (p *parser) closeGroup() {
	p.sc.readBalancedBody()
}

func splitNameArg(body string) (string, *string) {
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		arg := body[idx+1:]
		return body[:idx], optArg(arg)
	}
	return body, nil
}

func optArg(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func currencyFromBody(body string) directive.Directive {
	idx := strings.IndexByte(body, 'c')
	if idx < 0 {
		return directive.Currency(optArg(body), nil)
	}
	pre := body[:idx]
	post := body[idx+1:]
	return directive.Currency(optArg(pre), optArg(post))
}

func caseModeFromNum(n int) directive.Case {
	switch n {
	case 0:
		return directive.CaseSentence
	case 1:
		return directive.CaseLower
	case 2:
		return directive.CaseUpper
	case 3:
		return directive.CaseTitle
	default:
		return directive.CaseSentence
	}
}

// parseCaseGroup handles "{\*\cxplvrcaseN...}", both the standalone form
// (CaseMode(N)) and the form combined with a following \cxplvrspc word
// (case+space reset, camel or snake).
func (p *parser) parseCaseGroup(caseWord Token) {
	clone := p.sc.Clone()
	spc := clone.Next()
	if spc.Type != ControlWordToken || spc.Word != "cxplvrspc" {
		// Standalone "{\*\cxplvrcaseN}".
		p.sc.readBalancedBody()
		p.emit(directive.CaseMode(caseModeFromNum(caseWord.Num)))
		return
	}
	*p.sc = *clone
	if spc.HasNum && spc.Num == 0 {
		p.sc.readBalancedBody()
		p.emit(directive.ResetCaseAndSpace())
		return
	}
	body, _ := p.sc.readBalancedBody()
	switch body {
	case "":
		p.emit(directive.CaseMode(directive.CaseCamel))
	case "_":
		p.emit(directive.CaseMode(directive.CaseSnake))
	default:
		p.emit(directive.CaseMode(caseModeFromNum(caseWord.Num)))
		p.emit(directive.SpaceMode(optArg(body)))
	}
}

func (p *parser) parseStandaloneSpaceGroup(word Token) {
	if word.HasNum {
		p.sc.readBalancedBody()
		if word.Num == 0 {
			p.emit(directive.SpaceMode(nil))
			return
		}
		n := strconv.Itoa(word.Num)
		p.emit(directive.SpaceMode(&n))
		return
	}
	body, _ := p.sc.readBalancedBody()
	p.emit(directive.SpaceMode(optArg(body)))
}

func (p *parser) dispatchPlainGroup(word Token) {
	switch word.Word {
	case "cxp":
		body, _ := p.sc.readBalancedBody()
		punct := body
		if len(punct) > 0 {
			punct = punct[:len(punct)-1]
		}
		p.emit(directive.Punctuation(punct))
	case "cxfing":
		body, _ := p.sc.readBalancedBody()
		p.emit(directive.Fingerspell(body))
	case "cxstit":
		body, _ := p.sc.readBalancedBody()
		p.emit(directive.Stitch(body))
	case "cxa":
		body, _ := p.sc.readBalancedBody()
		p.emit(directive.RawString(body))
	case "cxconf":
		p.parseConf()
	}
}

// parseConf handles "{\cxconf {\cxc A}{\cxc B}...}", taking the last
// alternative.
func (p *parser) parseConf() {
	last := ""
	for {
		clone := p.sc.Clone()
		tok := clone.Next()
		if tok.Type == LeftBraceToken {
			inner := clone.Next()
			if inner.Type == ControlWordToken && inner.Word == "cxc" {
				*p.sc = *clone
				body, _ := p.sc.readBalancedBody()
				last = body
				continue
			}
		}
		if tok.Type == RightBraceToken {
			*p.sc = *clone
			break
		}
		// Malformed body; stop defensively rather than loop forever.
		break
	}
	p.emit(directive.RawString(last))
}

// ReadGroupBody is the exported form of readBalancedBody, for drivers
// outside this package (such as cretrans's dictionary-file parser) that
// reuse this scanner to read an already-open group's raw body.
func (s *Scanner) ReadGroupBody() (string, bool) {
	return s.readBalancedBody()
}

// readBalancedBody scans from the current position (assumed to be just
// after an opening brace already consumed) to the matching closing
// brace, treating any backslash as escaping the next byte so an escaped
// brace never miscounts as a real delimiter. It returns the raw body text
// and consumes through the closing brace.
func (s *Scanner) readBalancedBody() (string, bool) {
	start := s.pos
	depth := 0
	p := s.pos
	for p < len(s.input) {
		c := s.input[p]
		if c == '\\' && p+1 < len(s.input) {
			p += 2
			continue
		}
		if c == '{' {
			depth++
			p++
			continue
		}
		if c == '}' {
			if depth == 0 {
				body := s.input[start:p]
				s.pos = p + 1
				return body, true
			}
			depth--
			p++
			continue
		}
		p++
	}
	s.pos = len(s.input)
	return s.input[start:], false
}
