package cretrans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		plover string
		rtf    string
	}{
		{"testing", "testing"},
		{"{.}", `{\cxp. }`},
		{"{^ing}", `{\*\cxplvrortho}\cxds ing`},
		{"你好!", "\\u20320 \\u22909 !"},
		{"=undo", `\cxdstroke `},
		{"{#return}{#return}    ", `\par\s1 `},
	}

	for _, c := range cases {
		assert.Equal(t, c.rtf, PloverToRTF(c.plover), "PloverToRTF(%q)", c.plover)
		assert.Equal(t, c.plover, RTFToPlover(c.rtf), "RTFToPlover(%q)", c.rtf)
	}
}

func TestCarryCapOrthoAttachScenario(t *testing.T) {
	assert.Equal(t, `{\*\cxplvrccap}{\*\cxplvrortho}\cxds -\cxds `, PloverToRTF("{~|^-^}"))
	assert.Equal(t, "{~|^-^}", RTFToPlover(`{\*\cxplvrccap}{\*\cxplvrortho}\cxds -\cxds `))
}

func TestCombinedLookupForceCapAttachScenario(t *testing.T) {
	got := PloverToRTF("lookup{PLOVER:LOOKUP}{-|}{^ed}")
	assert.Equal(t, `lookup{\*\cxplvrcmd lookup}\cxfc {\*\cxplvrortho}\cxds ed`, got)
}

func TestEmptyIdentity(t *testing.T) {
	assert.Equal(t, "", PloverToRTF(""))
	assert.Equal(t, "", RTFToPlover(""))
}

func TestPureTextPassthrough(t *testing.T) {
	s := "plain steno output with spaces and punctuation."
	assert.Equal(t, s, PloverToRTF(s))
	assert.Equal(t, s, RTFToPlover(s))
}

func TestCurrencySymmetry(t *testing.T) {
	s := "{*($c USD)}"
	assert.Equal(t, s, RTFToPlover(PloverToRTF(s)))
}

func TestUnicodeFidelity(t *testing.T) {
	assert.Equal(t, "\\u9731 ", PloverToRTF(string(rune(9731))))
	assert.Equal(t, string(rune(9731)), RTFToPlover("\\u9731 "))
}
