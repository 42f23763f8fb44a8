package cretrans

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/stenocode/cretrans/rtflang"
)

// ParseDictionaryFile recognizes a full RTF dictionary file -- header,
// a sequence of "{\*\cxs STENO}TRANSLATION[{\*\cxcomment TEXT}]" entries,
// and a closing brace footer -- and returns the Dictionary it describes.
// Each entry's translation body is fed through RTFToPlover and stored in
// Plover form. logger may be nil (see NewDictionary). A malformed file
// (missing header, unbalanced groups, missing footer) is reported as a
// FileParseErrors, never a panic; the pure translator core underneath
// never fails.
func ParseDictionaryFile(input string, logger logrus.FieldLogger) (*Dictionary, error) {
	d := &parser{sc: rtflang.NewScanner(input), input: input}
	creSystem, err := d.parseHeader()
	if err != nil {
		return nil, err
	}

	dict := NewDictionary(creSystem, logger)

	for {
		d.skipWhitespace()

		clone := d.sc.Clone()
		tok := clone.Next()
		if tok.Type == rtflang.RightBraceToken {
			*d.sc = *clone
			return dict, nil
		}
		if tok.Type == rtflang.EOFToken {
			return nil, FileParseErrors{Errors: []FileParseError{
				{Pos: d.sc.PosAt(d.sc.Pos()), Message: "unexpected end of input: missing closing brace for dictionary group"},
			}}
		}

		steno, err := d.expectMarkerGroup("cxs")
		if err != nil {
			return nil, err
		}

		translation := d.scanTranslationBody()

		comment := ""
		if d.peekMarker("cxcomment") {
			comment, err = d.expectMarkerGroup("cxcomment")
			if err != nil {
				return nil, err
			}
		}

		dict.AddEntry(steno, RTFToPlover(translation), comment)
	}
}

// parser is the small recursive-descent driver over an rtflang.Scanner
// used to recognize the dictionary-file grammar (header/body/footer),
// the way cretrans's sibling dialect packages drive their own Scanner.
type parser struct {
	sc    *rtflang.Scanner
	input string
}

func (d *parser) errAt(pos int, msg string) error {
	return FileParseErrors{Errors: []FileParseError{{Pos: d.sc.PosAt(pos), Message: msg}}}
}

// parseHeader recognizes
// "{\rtf1\ansi{\*\cxrev100}\cxdict{\*\cxsystem NAME}", tolerating an
// optional "{\stylesheet ...}" group and arbitrary whitespace between
// tokens, and returns NAME.
func (d *parser) parseHeader() (string, error) {
	expectWord := func(word string) error {
		start := d.sc.Pos()
		tok := d.sc.Next()
		if tok.Type != rtflang.ControlWordToken || tok.Word != word {
			return d.errAt(start, "expected control word \\"+word)
		}
		return nil
	}
	expectType := func(tt rtflang.TokenType, what string) error {
		start := d.sc.Pos()
		tok := d.sc.Next()
		if tok.Type != tt {
			return d.errAt(start, "expected "+what)
		}
		return nil
	}

	if err := expectType(rtflang.LeftBraceToken, "'{' opening the dictionary group"); err != nil {
		return "", err
	}
	rtfStart := d.sc.Pos()
	if tok := d.sc.Next(); tok.Type != rtflang.ControlWordToken || tok.Word != "rtf" || tok.Num != 1 {
		return "", d.errAt(rtfStart, "expected control word \\rtf1")
	}
	if err := expectWord("ansi"); err != nil {
		return "", err
	}
	if err := expectType(rtflang.LeftBraceToken, "'{' opening \\cxrev"); err != nil {
		return "", err
	}
	if err := expectType(rtflang.ControlSymbolToken, "'*' before \\cxrev"); err != nil {
		return "", err
	}
	if err := expectWord("cxrev"); err != nil {
		return "", err
	}
	if err := expectType(rtflang.RightBraceToken, "'}' closing \\cxrev"); err != nil {
		return "", err
	}
	if err := expectWord("cxdict"); err != nil {
		return "", err
	}
	if err := expectType(rtflang.LeftBraceToken, "'{' opening \\cxsystem"); err != nil {
		return "", err
	}
	if err := expectType(rtflang.ControlSymbolToken, "'*' before \\cxsystem"); err != nil {
		return "", err
	}
	if err := expectWord("cxsystem"); err != nil {
		return "", err
	}
	name, ok := d.sc.ReadGroupBody()
	if !ok {
		return "", d.errAt(d.sc.Pos(), "unterminated \\cxsystem group")
	}
	name = strings.TrimSpace(name)

	d.skipWhitespace()
	d.skipOptionalStylesheet()
	return name, nil
}

// skipOptionalStylesheet consumes a "{\stylesheet ...}" group if one is
// next, leaving the scanner untouched otherwise.
func (d *parser) skipOptionalStylesheet() {
	clone := d.sc.Clone()
	tok := clone.Next()
	if tok.Type != rtflang.LeftBraceToken {
		return
	}
	word := clone.Next()
	if word.Type != rtflang.ControlWordToken || word.Word != "stylesheet" {
		return
	}
	*d.sc = *clone
	d.sc.ReadGroupBody()
	d.skipWhitespace()
}

// skipWhitespace consumes whitespace-only text tokens between
// structural elements.
func (d *parser) skipWhitespace() {
	for {
		clone := d.sc.Clone()
		tok := clone.Next()
		if tok.Type != rtflang.TextToken || strings.TrimSpace(tok.Text) != "" {
			return
		}
		*d.sc = *clone
	}
}

// peekMarker reports whether the upcoming tokens are "{\*\word", without
// consuming anything.
func (d *parser) peekMarker(word string) bool {
	clone := d.sc.Clone()
	if clone.Next().Type != rtflang.LeftBraceToken {
		return false
	}
	if clone.Next().Type != rtflang.ControlSymbolToken {
		return false
	}
	tok := clone.Next()
	return tok.Type == rtflang.ControlWordToken && tok.Word == word
}

// expectMarkerGroup consumes "{\*\word BODY}" and returns BODY.
func (d *parser) expectMarkerGroup(word string) (string, error) {
	start := d.sc.Pos()
	if d.sc.Next().Type != rtflang.LeftBraceToken {
		return "", d.errAt(start, "expected '{' opening \\"+word)
	}
	if d.sc.Next().Type != rtflang.ControlSymbolToken {
		return "", d.errAt(start, "expected '*' before \\"+word)
	}
	tok := d.sc.Next()
	if tok.Type != rtflang.ControlWordToken || tok.Word != word {
		return "", d.errAt(start, "expected \\"+word+" marker")
	}
	body, ok := d.sc.ReadGroupBody()
	if !ok {
		return "", d.errAt(d.sc.Pos(), "unterminated \\"+word+" group")
	}
	return body, nil
}

// scanTranslationBody reads raw RTF content, starting right after a
// "{\*\cxs STENO}" marker, up to (not including) the next "{\*\cxs" or
// "{\*\cxcomment" marker or the dictionary group's closing brace.
// Balanced groups belonging to the translation itself (directive groups
// like "{\*\cxplvrortho}") are consumed whole and kept in the body; a
// backslash always escapes the following byte so an escaped brace never
// miscounts as a structural delimiter. A trailing run of whitespace that
// contains a line break (the layout between entries) is not part of the
// returned body.
func (d *parser) scanTranslationBody() string {
	input := d.input
	p := d.sc.Pos()
	start := p
	for p < len(input) {
		c := input[p]
		if c == '\\' && p+1 < len(input) {
			p += 2
			continue
		}
		if c == '{' {
			if strings.HasPrefix(input[p:], `{\*\cxs`) || strings.HasPrefix(input[p:], `{\*\cxcomment`) {
				break
			}
			depth := 1
			p++
			for p < len(input) && depth > 0 {
				cc := input[p]
				if cc == '\\' && p+1 < len(input) {
					p += 2
					continue
				}
				if cc == '{' {
					depth++
				} else if cc == '}' {
					depth--
				}
				p++
			}
			continue
		}
		if c == '}' {
			break
		}
		p++
	}
	d.sc.SetPos(p)
	body := input[start:p]
	if trimmed := strings.TrimRight(body, " \t\r\n"); strings.ContainsAny(body[len(trimmed):], "\r\n") {
		body = trimmed
	}
	return body
}
