package dictionary

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestReadWords(t *testing.T) {
	input := "cat\r\n  dog \n\n\tfox\nhen"
	words, err := ReadWords(strings.NewReader(input), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fox", "hen"}, words)
}

func TestReadWordsNeverYieldsEmptyWord(t *testing.T) {
	words, err := ReadWords(strings.NewReader("cat\n   \n\ndog\n\n"), EncodingMacRoman)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)
	assert.NotContains(t, words, "")
}

func TestReadWordsStripsBOM(t *testing.T) {
	words, err := ReadWords(strings.NewReader("\ufeffapple\nbanana\n"), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, words)
}

func TestReadWordsLegacyEncodings(t *testing.T) {
	testCases := []struct {
		enc         Encoding
		raw         string
		expected    []string
		description string
	}{
		{EncodingMacRoman, "caf\x8e\nna\x95ve\n", []string{"café", "naïve"}, "MacRoman accents"},
		{EncodingLatin1, "caf\xe9\n", []string{"café"}, "Latin-1 accent"},
		{EncodingWindows1252, "\x93quoted\x94\n", []string{"“quoted”"}, "Windows-1252 curly quotes"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			words, err := ReadWords(strings.NewReader(tc.raw), tc.enc)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, words)
		})
	}
}

func TestParseEncoding(t *testing.T) {
	for name, want := range map[string]Encoding{
		"":           EncodingUTF8,
		"UTF-8":      EncodingUTF8,
		"macroman":   EncodingMacRoman,
		"Mac-Roman":  EncodingMacRoman,
		"macintosh":  EncodingMacRoman,
		"iso-8859-1": EncodingLatin1,
		"cp1252":     EncodingWindows1252,
	} {
		got, err := ParseEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseEncoding("ebcdic")
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	assert.Equal(t, "macroman", EncodingMacRoman.String())
	assert.Len(t, ListSupportedEncodings(), 4)
}

func TestLoaderWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("hen\ncat\nfox\ndog\n"), 0o644))

	var reported []error
	loader := &Loader{Path: path, OnError: func(err error) { reported = append(reported, err) }}
	assert.Equal(t, []string{"hen", "cat", "fox", "dog"}, loader.Words())
	assert.Empty(t, reported)
}

func TestLoaderMissingFileDegradesToEmpty(t *testing.T) {
	var reported []error
	loader := &Loader{
		Path:    filepath.Join(t.TempDir(), "missing.txt"),
		OnError: func(err error) { reported = append(reported, err) },
	}

	words := loader.Words()
	assert.NotNil(t, words)
	assert.Empty(t, words)
	require.Len(t, reported, 1)
	assert.True(t, errors.Is(reported[0], fs.ErrNotExist))

	_, err := loader.Load()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoaderDefaultReportDoesNotPanic(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.txt"), EncodingMacRoman)
	assert.NotPanics(t, func() { loader.Words() })
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(good, []byte("a\nb\n"), 0o644))
	noExt := filepath.Join(dir, "words")
	require.NoError(t, os.WriteFile(noExt, []byte("a\n"), 0o644))
	empty := filepath.Join(dir, "empty.dic")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	bad := filepath.Join(dir, "words.bin")
	require.NoError(t, os.WriteFile(bad, []byte("a\n"), 0o644))

	assert.NoError(t, ValidateFile(good))
	assert.NoError(t, ValidateFile(noExt))
	assert.NoError(t, ValidateFile(empty))
	assert.Error(t, ValidateFile(bad))
	assert.Error(t, ValidateFile(dir))
	assert.ErrorIs(t, ValidateFile(filepath.Join(dir, "nope.txt")), fs.ErrNotExist)
}
