package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned by ParseEncoding for names it does not recognize.
var ErrUnknownEncoding = errors.New("unknown dictionary encoding")

// Encoding is a text encoding a dictionary file may be stored in.
type Encoding int

const (
	EncodingUTF8     Encoding = iota
	EncodingMacRoman          // classic Mac OS word lists
	EncodingLatin1
	EncodingWindows1252
)

// EncodingInfo describes a supported encoding.
type EncodingInfo struct {
	Encoding    Encoding
	Name        string
	Aliases     []string
	Description string
	codec       encoding.Encoding
}

var supportedEncodings = map[Encoding]EncodingInfo{
	EncodingUTF8: {
		Encoding:    EncodingUTF8,
		Name:        "utf-8",
		Aliases:     []string{"utf8"},
		Description: "UTF-8 (BOM stripped)",
		codec:       unicode.UTF8BOM,
	},
	EncodingMacRoman: {
		Encoding:    EncodingMacRoman,
		Name:        "macroman",
		Aliases:     []string{"mac-roman", "macintosh", "x-mac-roman"},
		Description: "Mac OS Roman",
		codec:       charmap.Macintosh,
	},
	EncodingLatin1: {
		Encoding:    EncodingLatin1,
		Name:        "latin1",
		Aliases:     []string{"iso-8859-1", "iso8859-1"},
		Description: "ISO 8859-1",
		codec:       charmap.ISO8859_1,
	},
	EncodingWindows1252: {
		Encoding:    EncodingWindows1252,
		Name:        "windows-1252",
		Aliases:     []string{"cp1252"},
		Description: "Windows code page 1252",
		codec:       charmap.Windows1252,
	},
}

// dictExtensions are the file extensions accepted for word lists.
// An empty extension covers files like /usr/share/dict/words.
var dictExtensions = []string{".txt", ".dic", ".lst", ""}

// ParseEncoding maps a config or flag value to an Encoding. The empty string means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EncodingUTF8, nil
	}
	for enc, info := range supportedEncodings {
		if name == info.Name {
			return enc, nil
		}
		for _, alias := range info.Aliases {
			if name == alias {
				return enc, nil
			}
		}
	}
	return EncodingUTF8, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// String returns the canonical name of e.
func (e Encoding) String() string {
	if info, ok := supportedEncodings[e]; ok {
		return info.Name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// NewReader wraps r so that it yields UTF-8 text decoded from e.
func (e Encoding) NewReader(r io.Reader) io.Reader {
	info, ok := supportedEncodings[e]
	if !ok {
		return r
	}
	return info.codec.NewDecoder().Reader(r)
}

// ListSupportedEncodings returns all supported encodings.
func ListSupportedEncodings() []EncodingInfo {
	encodings := make([]EncodingInfo, 0, len(supportedEncodings))
	for enc := EncodingUTF8; enc <= EncodingWindows1252; enc++ {
		encodings = append(encodings, supportedEncodings[enc])
	}
	return encodings
}

// ValidateFile checks that filename looks like a readable word list.
func ValidateFile(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, expected a word list file", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range dictExtensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for a word list (expected: %q)",
			filename, ext, dictExtensions)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	if fileInfo.Size() == 0 {
		log.Warnf("Dictionary file %s is empty", filename)
		return nil
	}
	buffer := make([]byte, 1024)
	if _, err := file.Read(buffer); err != nil {
		return fmt.Errorf("failed to read from word list %s: %w", filename, err)
	}

	log.Debugf("Word list %s validated (%d bytes)", filename, fileInfo.Size())
	return nil
}
