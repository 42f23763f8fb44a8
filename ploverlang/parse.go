// Package ploverlang implements the Plover translation-language dialect:
// parsing a Plover translation string into a directive.Directive sequence,
// and rendering a directive sequence back into Plover syntax (the latter
// is also how the RTF->Plover direction renders its final output, since
// OrthoAttach is only ever consumed here).
package ploverlang

import (
	"strings"
	"unicode"

	"github.com/stenocode/cretrans/directive"
)

// Parse recognizes a Plover translation string and returns the directive
// sequence it spells out. Parse never fails: anything it cannot recognize
// degrades to directive.RawString, per the dialect's "every dictionary
// entry renders to something" design.
func Parse(translation string) []directive.Directive {
	if translation == "" {
		return nil
	}
	if strings.HasPrefix(translation, "=") {
		return []directive.Directive{parseMacro(translation)}
	}
	return parseRest(translation)
}

// optString collapses an absent or empty argument to nil, mirroring the
// dialect's own `opt!` convention: a colon followed by nothing is the same
// as no colon at all.
func optString(present bool, s string) *string {
	if !present || s == "" {
		return nil
	}
	return &s
}

func parseMacro(translation string) directive.Directive {
	body := translation[1:] // past '='
	name := body
	var arg *string
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		name = body[:idx]
		a := body[idx+1:]
		arg = optString(true, a)
	}
	nameLC := strings.ToLower(name)
	switch nameLC {
	case "undo":
		return directive.DeleteStroke()
	case "repeat_last_stroke":
		return directive.RepeatLastStroke()
	case "retrospective_toggle_asterisk":
		return directive.RetroToggleStar()
	case "retrospective_insert_space":
		return directive.RetroInsertSpace()
	case "retrospective_delete_space":
		return directive.RetroDeleteSpace()
	default:
		return directive.Macro(nameLC, arg)
	}
}

func parseRest(input string) []directive.Directive {
	var out []directive.Directive
	c := newCursor(input)
	for !c.eof() {
		if d, ok := tryNext(c); ok {
			out = append(out, d)
			continue
		}
		// Safety net: guarantee progress on anything no rule recognized
		// (a backslash that starts none of the three escapes, or a "{"
		// with no closing "}" after it).
		r := []rune(c.rest())[0]
		out = append(out, directive.RawString(string(r)))
		c.pos += len(string(r))
	}
	return out
}

// tryNext tries every rule in the order laid out by the dialect's grammar
// (first match wins) and reports whether one matched.
func tryNext(c *cursor) (directive.Directive, bool) {
	type rule func(*cursor) (directive.Directive, bool)
	rules := [...]rule{
		tryEscaped,
		tryCancel,
		tryNoop,
		trySpaces,
		tryPar,
		tryCommand,
		tryModeSpace,
		tryMode,
		tryGlue,
		tryCurrency,
		tryCurrencyMeta,
		tryKeyCombo,
		tryPunctuation,
		tryOperator,
		tryMeta,
		tryCarryCapBlock,
		tryAttachBlock,
		tryAnythingBetweenBraces,
		tryRaw,
	}
	for _, r := range rules {
		if d, ok := r(c); ok {
			return d, true
		}
	}
	return directive.Directive{}, false
}

func tryEscaped(c *cursor) (directive.Directive, bool) {
	for _, esc := range []string{`\\`, `\{`, `\}`} {
		if c.hasPrefix(esc) {
			c.pos += len(esc)
			return directive.RawString(esc[1:]), true
		}
	}
	return directive.Directive{}, false
}

func trySpaces(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{") {
		return directive.Directive{}, false
	}
	ws := cl.takeWhile(unicode.IsSpace)
	if ws == "" {
		return directive.Directive{}, false
	}
	if !cl.consume("}") {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.Space(), true
}

func tryCancel(c *cursor) (directive.Directive, bool) {
	if c.consume("{}") {
		return directive.Cancel(), true
	}
	return directive.Directive{}, false
}

func tryNoop(c *cursor) (directive.Directive, bool) {
	if c.consume("{#}") {
		return directive.Noop(), true
	}
	return directive.Directive{}, false
}

func tryPar(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consumeFold("{#return}{#return}") {
		return directive.Directive{}, false
	}
	mode := directive.ParagraphDefault
	if cl.consume("    ") {
		mode = directive.ParagraphContin
	}
	c.pos = cl.pos
	return directive.Paragraph(mode), true
}

func tryCommand(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consumeFold("{plover:") {
		return directive.Directive{}, false
	}
	name := cl.takeWhile(isMetaNameRune(true))
	var arg *string
	hasArg := false
	var argText string
	if cl.hasPrefix(":") {
		cl.consume(":")
		argText = cl.takeWhileNot("}")
		hasArg = true
	}
	if !cl.consume("}") {
		return directive.Directive{}, false
	}
	arg = optString(hasArg, argText)
	c.pos = cl.pos
	return directive.Command(strings.ToLower(name), arg), true
}

func tryModeSpace(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consumeFold("{mode:set_space:") {
		return directive.Directive{}, false
	}
	space, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	if space == " " {
		return directive.SpaceMode(nil), true
	}
	return directive.SpaceMode(&space), true
}

func tryMode(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consumeFold("{mode:") {
		return directive.Directive{}, false
	}
	mode, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	d, known := caseModeFromName(strings.ToLower(mode))
	if !known {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return d, true
}

func caseModeFromName(name string) (directive.Directive, bool) {
	switch name {
	case "reset_case":
		return directive.CaseMode(directive.CaseSentence), true
	case "lower":
		return directive.CaseMode(directive.CaseLower), true
	case "title":
		return directive.CaseMode(directive.CaseTitle), true
	case "caps":
		return directive.CaseMode(directive.CaseUpper), true
	case "camel":
		return directive.CaseMode(directive.CaseCamel), true
	case "snake":
		return directive.CaseMode(directive.CaseSnake), true
	case "reset_space":
		return directive.SpaceMode(nil), true
	case "reset":
		return directive.ResetCaseAndSpace(), true
	default:
		return directive.Directive{}, false
	}
}

func tryGlue(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{&") {
		return directive.Directive{}, false
	}
	letters, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.Fingerspell(letters), true
}

func tryCurrency(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{*(") {
		return directive.Directive{}, false
	}
	pre, ok := cl.takeUntil("c")
	if !ok {
		return directive.Directive{}, false
	}
	post, ok2 := cl.takeUntil(")}")
	if !ok2 {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.Currency(optString(true, pre), optString(true, post)), true
}

func tryCurrencyMeta(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{:retro_currency:") {
		return directive.Directive{}, false
	}
	pre, ok := cl.takeUntil("c")
	if !ok {
		return directive.Directive{}, false
	}
	post, ok2 := cl.takeUntil("}")
	if !ok2 {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.Currency(optString(true, pre), optString(true, post)), true
}

func tryKeyCombo(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{#") {
		return directive.Directive{}, false
	}
	combo, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.KeyCombo(combo), true
}

var punctuationForms = []string{"...", "--", "-", ".", ",", ":", ";", "?", "!"}

func tryPunctuation(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{") {
		return directive.Directive{}, false
	}
	for _, p := range punctuationForms {
		if cl.consume(p) {
			if cl.consume("}") {
				c.pos = cl.pos
				return directive.Punctuation(p), true
			}
			return directive.Directive{}, false
		}
	}
	return directive.Directive{}, false
}

var operatorForms = []struct {
	text string
	mk   func() directive.Directive
}{
	{"^", directive.AttachRaw},
	{"-|", directive.ForceCapitalize},
	{"*-|", directive.RetroForceCapitalize},
	{"*+", directive.RepeatLastStroke},
	{"*?", directive.RetroInsertSpace},
	{"*!", directive.RetroDeleteSpace},
	{"*<", directive.RetroForceCapitalizeWord},
	{"*>", directive.RetroForceLowercase},
	{"*", directive.RetroToggleStar},
	{"<", directive.ForceCapitalizeWord},
	{">", directive.ForceLowercase},
	{"l+", directive.ForceLowercase},
	{"l-", directive.ForceCapitalize},
}

func tryOperator(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{") {
		return directive.Directive{}, false
	}
	for _, op := range operatorForms {
		if cl.consume(op.text) {
			if cl.consume("}") {
				c.pos = cl.pos
				return op.mk(), true
			}
			return directive.Directive{}, false
		}
	}
	// "{|}" and "{'}" are literal pass-through operators.
	for _, lit := range []string{"|", "'"} {
		if cl.consume(lit) {
			if cl.consume("}") {
				c.pos = cl.pos
				return directive.RawString(lit), true
			}
			return directive.Directive{}, false
		}
	}
	return directive.Directive{}, false
}

func tryMeta(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{:") {
		return directive.Directive{}, false
	}
	name := cl.takeWhile(isMetaNameRune(true))
	hasArg := false
	var argRaw string
	if cl.hasPrefix(":") {
		cl.consume(":")
		argRaw = cl.takeWhileNot("}")
		hasArg = true
	}
	if !cl.consume("}") {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return dispatchMeta(strings.ToLower(name), hasArg, argRaw), true
}

func dispatchMeta(nameLC string, hasArg bool, argRaw string) directive.Directive {
	collapsed := optString(hasArg, argRaw)

	switch nameLC {
	case "glue":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		return directive.Fingerspell(*collapsed)
	case "stop", "comma":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		return directive.Punctuation(*collapsed)
	case "key_combo":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		return directive.KeyCombo(*collapsed)
	case "case":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		return forceCaseDirective(*collapsed, nameLC, false)
	case "retro_case":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		return forceCaseDirective(*collapsed, nameLC, true)
	case "attach":
		return attachFromMetaArg(hasArg, argRaw)
	case "carry_capitalize":
		if !hasArg {
			return directive.CarryCapRaw("")
		}
		return splitCarryCap(argRaw)
	case "stitch":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		letters := *collapsed
		if idx := strings.IndexByte(letters, ':'); idx >= 0 {
			// The delimiter (upstream engine doesn't support it yet) is dropped.
			letters = letters[:idx]
		}
		return directive.Stitch(letters)
	case "command":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		arg := *collapsed
		if idx := strings.IndexByte(arg, ':'); idx >= 0 {
			return directive.Command(strings.ToLower(arg[:idx]), optString(true, arg[idx+1:]))
		}
		return directive.Command(strings.ToLower(arg), nil)
	case "mode":
		if collapsed == nil {
			return directive.Meta(nameLC, nil)
		}
		arg := *collapsed
		if strings.HasPrefix(arg, "set_space:") {
			space := arg[len("set_space:"):]
			return directive.SpaceMode(&space)
		}
		if d, known := caseModeFromName(arg); known {
			return d
		}
		return directive.Meta(nameLC, collapsed)
	default:
		return directive.Meta(nameLC, collapsed)
	}
}

func forceCaseDirective(arg, metaName string, retro bool) directive.Directive {
	switch arg {
	case "cap_first_word":
		if retro {
			return directive.RetroForceCapitalize()
		}
		return directive.ForceCapitalize()
	case "upper_first_word":
		if retro {
			return directive.RetroForceCapitalizeWord()
		}
		return directive.ForceCapitalizeWord()
	case "lower_first_char":
		if retro {
			return directive.RetroForceLowercase()
		}
		return directive.ForceLowercase()
	default:
		a := arg
		return directive.Meta(metaName, &a)
	}
}

func attachFromMetaArg(hasArg bool, arg string) directive.Directive {
	if !hasArg {
		return directive.AttachRaw()
	}
	switch {
	case arg == " ":
		return directive.HardSpace()
	case strings.HasPrefix(arg, "^"):
		return directive.AttachSuffix(arg[1:])
	case strings.HasSuffix(arg, "^"):
		return directive.AttachPrefix(arg[:len(arg)-1])
	default:
		return directive.AttachInfix(arg)
	}
}

func splitCarryCap(body string) directive.Directive {
	switch {
	case len(body) >= 2 && strings.HasPrefix(body, "^") && strings.HasSuffix(body, "^"):
		return directive.CarryCapInfix(body[1 : len(body)-1])
	case strings.HasSuffix(body, "^"):
		return directive.CarryCapPrefix(body[:len(body)-1])
	case strings.HasPrefix(body, "^"):
		return directive.CarryCapSuffix(body[1:])
	default:
		return directive.CarryCapRaw(body)
	}
}

func tryCarryCapBlock(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{~|") {
		return directive.Directive{}, false
	}
	body, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return splitCarryCap(body), true
}

func splitAttach(body string) directive.Directive {
	switch {
	case len(body) >= 2 && strings.HasPrefix(body, "^") && strings.HasSuffix(body, "^"):
		middle := body[1 : len(body)-1]
		if middle == " " {
			return directive.HardSpace()
		}
		return directive.AttachInfix(middle)
	case strings.HasSuffix(body, "^"):
		return directive.AttachPrefix(body[:len(body)-1])
	case strings.HasPrefix(body, "^"):
		return directive.AttachSuffix(body[1:])
	default:
		return directive.RawString(body)
	}
}

func tryAttachBlock(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{") {
		return directive.Directive{}, false
	}
	body, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	if !strings.Contains(body, "^") {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return splitAttach(body), true
}

func tryAnythingBetweenBraces(c *cursor) (directive.Directive, bool) {
	cl := c.clone()
	if !cl.consume("{") {
		return directive.Directive{}, false
	}
	body, ok := cl.takeUntil("}")
	if !ok {
		return directive.Directive{}, false
	}
	c.pos = cl.pos
	return directive.RawString(body), true
}

func tryRaw(c *cursor) (directive.Directive, bool) {
	text := c.takeWhileNot("{\\")
	if text == "" {
		return directive.Directive{}, false
	}
	return directive.RawString(text), true
}
