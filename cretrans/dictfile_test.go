package cretrans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionaryFileMinimal(t *testing.T) {
	input := "{\\rtf1\\ansi{\\*\\cxrev100}\\cxdict{\\*\\cxsystem Test}\n" +
		"  {\\*\\cxs TEFGT}testing{\\*\\cxcomment inversion}\n" +
		"}"

	dict, err := ParseDictionaryFile(input, nil)
	require.NoError(t, err)

	assert.Equal(t, "Test", dict.CRESystem)
	assert.Equal(t, 1, dict.Len())

	entry, ok := dict.Lookup("TEFGT")
	require.True(t, ok)
	assert.Equal(t, "testing", entry.Translation)
	assert.Equal(t, "inversion", entry.Comment)
}

func TestParseDictionaryFileMultipleEntriesNoComment(t *testing.T) {
	input := "{\\rtf1\\ansi{\\*\\cxrev100}\\cxdict{\\*\\cxsystem Test}\n" +
		"{\\*\\cxs TEFT}{\\cxp. }\n" +
		"{\\*\\cxs -G}{\\*\\cxplvrortho}\\cxds ing\n" +
		"}"

	dict, err := ParseDictionaryFile(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, dict.Len())

	punct, ok := dict.Lookup("TEFT")
	require.True(t, ok)
	assert.Equal(t, "{.}", punct.Translation)

	e, ok := dict.Lookup("-G")
	require.True(t, ok)
	assert.Equal(t, "{^ing}", e.Translation)
	assert.Equal(t, "", e.Comment)
}

func TestParseDictionaryFileTracksLongestStroke(t *testing.T) {
	input := "{\\rtf1\\ansi{\\*\\cxrev100}\\cxdict{\\*\\cxsystem Test}\n" +
		"{\\*\\cxs TEFGT}one\n" +
		"{\\*\\cxs TEFGT/-G/PHOF}two\n" +
		"}"

	dict, err := ParseDictionaryFile(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, dict.LongestStrokeLength())
}

func TestParseDictionaryFileMissingHeaderIsStructuralError(t *testing.T) {
	_, err := ParseDictionaryFile("not rtf at all", nil)
	require.Error(t, err)
	var fpe FileParseErrors
	require.ErrorAs(t, err, &fpe)
	assert.NotEmpty(t, fpe.Errors)
}

func TestParseDictionaryFileMissingFooterIsStructuralError(t *testing.T) {
	input := "{\\rtf1\\ansi{\\*\\cxrev100}\\cxdict{\\*\\cxsystem Test}\n" +
		"{\\*\\cxs TEFGT}testing\n"

	_, err := ParseDictionaryFile(input, nil)
	require.Error(t, err)
}

func TestParseDictionaryFileToleratesStylesheetAndWhitespace(t *testing.T) {
	input := "{\\rtf1\\ansi{\\*\\cxrev100}\\cxdict{\\*\\cxsystem Test}\n" +
		"{\\stylesheet{\\*\\cxs ignored in stylesheet}}\n" +
		"   {\\*\\cxs TEFGT}testing\n" +
		"}"

	dict, err := ParseDictionaryFile(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dict.Len())
	_, ok := dict.Lookup("TEFGT")
	assert.True(t, ok)
}
