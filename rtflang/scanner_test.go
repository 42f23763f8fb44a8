package rtflang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerControlWordWithNumAndSpace(t *testing.T) {
	sc := NewScanner(`\par\s1 rest`)
	tok := sc.Next()
	assert.Equal(t, ControlWordToken, tok.Type)
	assert.Equal(t, "par", tok.Word)
	assert.False(t, tok.HasNum)

	tok = sc.Next()
	assert.Equal(t, "s", tok.Word)
	assert.True(t, tok.HasNum)
	assert.Equal(t, 1, tok.Num)
	assert.True(t, tok.HasTrailingSpace)

	tok = sc.Next()
	assert.Equal(t, TextToken, tok.Type)
	assert.Equal(t, "rest", tok.Text)
}

func TestScannerControlSymbol(t *testing.T) {
	sc := NewScanner(`\*\_\~`)
	tok := sc.Next()
	assert.Equal(t, ControlSymbolToken, tok.Type)
	assert.Equal(t, byte('*'), tok.Symbol)

	tok = sc.Next()
	assert.Equal(t, byte('_'), tok.Symbol)

	tok = sc.Next()
	assert.Equal(t, byte('~'), tok.Symbol)
}

func TestScannerUnicodeEscape(t *testing.T) {
	sc := NewScanner("\\u20320 x")
	tok := sc.Next()
	assert.Equal(t, UnicodeEscapeToken, tok.Type)
	assert.Equal(t, 20320, tok.CodePoint)
	assert.True(t, tok.HasTrailingSpace)
}

func TestScannerGroupBraces(t *testing.T) {
	sc := NewScanner(`{\*\cxplvrortho}`)
	assert.Equal(t, LeftBraceToken, sc.Next().Type)
	assert.Equal(t, ControlSymbolToken, sc.Next().Type)
	word := sc.Next()
	assert.Equal(t, "cxplvrortho", word.Word)
	assert.Equal(t, RightBraceToken, sc.Next().Type)
	assert.Equal(t, EOFToken, sc.Next().Type)
}

func TestScannerKindStringCoversEveryVariant(t *testing.T) {
	for tt := ControlWordToken; tt <= EOFToken; tt++ {
		assert.NotEmpty(t, tt.String())
	}
}
