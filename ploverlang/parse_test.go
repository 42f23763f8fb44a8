package ploverlang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stenocode/cretrans/directive"
)

func TestParseRaw(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.RawString("hello")}, Parse("hello"))
}

func TestParseEscaped(t *testing.T) {
	assert.Equal(t,
		[]directive.Directive{directive.RawString("{"), directive.RawString("a"), directive.RawString("}")},
		Parse(`\{a\}`))
}

func TestParseCancelAndNoop(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Cancel()}, Parse("{}"))
	assert.Equal(t, []directive.Directive{directive.Noop()}, Parse("{#}"))
}

func TestParseMacros(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.DeleteStroke()}, Parse("=undo"))
	assert.Equal(t, []directive.Directive{directive.RepeatLastStroke()}, Parse("=repeat_last_stroke"))
	arg := "x"
	assert.Equal(t, []directive.Directive{directive.Macro("lookup", &arg)}, Parse("=lookup:x"))
	assert.Equal(t, []directive.Directive{directive.Macro("lookup", nil)}, Parse("=lookup"))
}

func TestParseCommand(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Command("lookup", nil)}, Parse("{plover:lookup}"))
	arg := "x"
	assert.Equal(t, []directive.Directive{directive.Command("lookup", &arg)}, Parse("{plover:lookup:x}"))
	assert.Equal(t, []directive.Directive{directive.Command("lookup", nil)}, Parse("{PLOVER:LOOKUP}"))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.CaseMode(directive.CaseLower)}, Parse("{mode:lower}"))
	assert.Equal(t, []directive.Directive{directive.CaseMode(directive.CaseSentence)}, Parse("{mode:reset_case}"))
	assert.Equal(t, []directive.Directive{directive.ResetCaseAndSpace()}, Parse("{mode:reset}"))
	assert.Equal(t, []directive.Directive{directive.SpaceMode(nil)}, Parse("{mode:reset_space}"))
}

func TestParseModeSetSpace(t *testing.T) {
	space := "-"
	assert.Equal(t, []directive.Directive{directive.SpaceMode(&space)}, Parse("{mode:set_space:-}"))
	assert.Equal(t, []directive.Directive{directive.SpaceMode(nil)}, Parse("{mode:set_space: }"))
}

func TestParseGlue(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Fingerspell("ABC")}, Parse("{&ABC}"))
}

func TestParseCurrency(t *testing.T) {
	pre := "$"
	assert.Equal(t, []directive.Directive{directive.Currency(&pre, nil)}, Parse("{*($c)}"))
	assert.Equal(t, []directive.Directive{directive.Currency(nil, nil)}, Parse("{*(c)}"))
	post := "EUR"
	assert.Equal(t, []directive.Directive{directive.Currency(nil, &post)}, Parse("{*(cEUR)}"))
}

func TestParseKeyCombo(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.KeyCombo("Alt_L(Tab)")}, Parse("{#Alt_L(Tab)}"))
}

func TestParsePunctuation(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Punctuation(".")}, Parse("{.}"))
	assert.Equal(t, []directive.Directive{directive.Punctuation("...")}, Parse("{...}"))
}

func TestParseOperators(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.AttachRaw()}, Parse("{^}"))
	assert.Equal(t, []directive.Directive{directive.ForceCapitalize()}, Parse("{-|}"))
	assert.Equal(t, []directive.Directive{directive.RetroForceCapitalize()}, Parse("{*-|}"))
	assert.Equal(t, []directive.Directive{directive.RetroToggleStar()}, Parse("{*}"))
}

func TestParseAttachBlock(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.AttachSuffix("ing")}, Parse("{^ing}"))
	assert.Equal(t, []directive.Directive{directive.AttachPrefix("pre")}, Parse("{pre^}"))
	assert.Equal(t, []directive.Directive{directive.AttachInfix("mid")}, Parse("{^mid^}"))
	assert.Equal(t, []directive.Directive{directive.HardSpace()}, Parse("{^ ^}"))
}

func TestParseCarryCapBlock(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.CarryCapRaw("")}, Parse("{~|}"))
	assert.Equal(t, []directive.Directive{directive.CarryCapSuffix("ing")}, Parse("{~|^ing}"))
	assert.Equal(t, []directive.Directive{directive.CarryCapPrefix("re")}, Parse("{~|re^}"))
	assert.Equal(t, []directive.Directive{directive.CarryCapInfix("mid")}, Parse("{~|^mid^}"))
}

func TestParseMetaAttach(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.AttachRaw()}, Parse("{:attach}"))
	assert.Equal(t, []directive.Directive{directive.HardSpace()}, Parse("{:attach: }"))
	assert.Equal(t, []directive.Directive{directive.AttachSuffix("ing")}, Parse("{:attach:^ing}"))
}

func TestParseMetaCommand(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Command("lookup", nil)}, Parse("{:command:lookup}"))
	arg := "x"
	assert.Equal(t, []directive.Directive{directive.Command("lookup", &arg)}, Parse("{:command:lookup:x}"))
}

func TestParseMetaStitch(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Stitch("ABC")}, Parse("{:stitch:ABC}"))
}

func TestParseMetaPassthrough(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Meta("unknown", nil)}, Parse("{:unknown}"))
	arg := "x"
	assert.Equal(t, []directive.Directive{directive.Meta("unknown", &arg)}, Parse("{:unknown:x}"))
}

func TestParseFallbackBraces(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.RawString("mode:unrecognized")}, Parse("{mode:unrecognized}"))
}

func TestParseParagraph(t *testing.T) {
	assert.Equal(t, []directive.Directive{directive.Paragraph(directive.ParagraphDefault)}, Parse("{#return}{#return}"))
	assert.Equal(t, []directive.Directive{directive.Paragraph(directive.ParagraphContin)}, Parse("{#return}{#return}    "))
}

func TestParseConcatenation(t *testing.T) {
	got := Parse("hello{^}world")
	assert.Equal(t, []directive.Directive{
		directive.RawString("hello"),
		directive.AttachRaw(),
		directive.RawString("world"),
	}, got)
}
