/*
Package dictionary reads word lists from disk for the checker.

A word list is a text file with one word per line. Lines are decoded from the
configured encoding, trimmed of surrounding whitespace, and blank lines are skipped,
so the empty string is never loaded from a file.

The Loader never fails: a missing or unreadable file is reported once through its
OnError hook and yields an empty word list, so the checker starts with an empty
dictionary instead of aborting.

	loader := dictionary.NewLoader("dictionary.txt", dictionary.EncodingMacRoman)
	chk := checker.FromSource(loader)
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// ReadWords decodes r with enc and returns one word per non-blank line.
func ReadWords(r io.Reader, enc Encoding) ([]string, error) {
	scanner := bufio.NewScanner(enc.NewReader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return words, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// Loader reads a word list file. It implements checker.WordSource.
type Loader struct {
	Path     string
	Encoding Encoding
	// OnError receives load failures. Defaults to logging them.
	OnError func(err error)
}

// NewLoader creates a Loader for path that reports failures to the log.
func NewLoader(path string, enc Encoding) *Loader {
	return &Loader{Path: path, Encoding: enc}
}

// Load reads every word from the file, returning an error on failure.
func (l *Loader) Load() ([]string, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", l.Path, err)
	}
	defer file.Close()

	words, err := ReadWords(file, l.Encoding)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", l.Path, err)
	}
	log.Debugf("Loaded %d words from %s (%s)", len(words), l.Path, l.Encoding)
	return words, nil
}

// Words returns the words in the file, or an empty list after reporting the
// failure when the file cannot be read.
func (l *Loader) Words() []string {
	words, err := l.Load()
	if err != nil {
		l.report(err)
		return []string{}
	}
	return words
}

func (l *Loader) report(err error) {
	if l.OnError != nil {
		l.OnError(err)
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		log.Errorf("File not found: %s", l.Path)
		return
	}
	log.Errorf("Could not load dictionary: %v", err)
}
