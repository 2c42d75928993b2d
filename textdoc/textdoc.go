// Package textdoc decodes raw text files into lines
// for table detection and encodes them back.
package textdoc

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-texttable"
)

// DecodeConfig configures the charset detection of Decode.
type DecodeConfig struct {
	// Encodings are tried in order until one of them
	// decodes the data validly.
	Encodings []string `json:"encodings" yaml:"encodings"`

	// EncodingTests contains characters that have different
	// byte representations across encodings and are used
	// to validate a decoding.
	EncodingTests []string `json:"encodingTests" yaml:"encodingTests"`
}

// NewDefaultDecodeConfig returns a DecodeConfig for UTF-8
// and the common Western European legacy encodings.
func NewDefaultDecodeConfig() *DecodeConfig {
	return &DecodeConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// Document is a decoded text file.
type Document struct {
	// Lines without line endings.
	Lines texttable.Lines
	// Encoding is the name of the detected source encoding.
	Encoding string
	// Newline is "\r\n" if the source contained any, else "\n".
	Newline string
	// FinalNewline is true if the source ended with a newline.
	FinalNewline bool
}

// Decode detects the encoding and line endings of data
// and splits it into lines.
// A UTF-8 byte order mark is removed, invalid UTF-8 sequences
// are replaced with spaces.
// If config is nil, then NewDefaultDecodeConfig() is used.
func Decode(data []byte, config *DecodeConfig) (*Document, error) {
	if config == nil {
		config = NewDefaultDecodeConfig()
	}

	data = charset.TrimBOM(data, charset.BOMUTF8)

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, err
		}
		encodings = append(encodings, enc)
	}

	doc := new(Document)
	data, encoding, err := charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, err
	}
	doc.Encoding = encoding
	if doc.Encoding == "" {
		doc.Encoding = "UTF-8"
	}

	data = sanitizeUTF8(data)

	// If there are \r\n line endings then keep those
	if bytes.Contains(data, []byte{'\r', '\n'}) {
		doc.Newline = "\r\n"
	} else {
		doc.Newline = "\n"
	}

	text := string(data)
	if strings.HasSuffix(text, "\n") {
		doc.FinalNewline = true
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	}
	doc.Lines = texttable.SplitLines(text)
	return doc, nil
}

// Apply replaces the lines of doc with the edits applied.
func (doc *Document) Apply(edits []texttable.Edit) error {
	if doc == nil {
		return errors.New("<nil> textdoc.Document")
	}
	lines, err := texttable.ApplyEdits(doc.Lines, edits)
	if err != nil {
		return err
	}
	doc.Lines = lines
	return nil
}

// String joins the lines with Newline
// and appends a final Newline if the source had one.
func (doc *Document) String() string {
	var b strings.Builder
	for i, line := range doc.Lines {
		if i > 0 {
			b.WriteString(doc.Newline)
		}
		b.WriteString(line)
	}
	if doc.FinalNewline {
		b.WriteString(doc.Newline)
	}
	return b.String()
}

// Bytes returns String() as UTF-8 bytes.
// The text is always UTF-8 encoded independent of the source Encoding.
func (doc *Document) Bytes() []byte {
	return []byte(doc.String())
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with spaces.
// Validly encoded U+FFFD replacement characters are kept.
func sanitizeUTF8(str []byte) []byte {
	if utf8.Valid(str) {
		return str
	}
	sanitized := make([]byte, 0, len(str))
	for len(str) > 0 {
		r, size := utf8.DecodeRune(str)
		if r == utf8.RuneError && size <= 1 {
			sanitized = append(sanitized, ' ')
		} else {
			sanitized = append(sanitized, str[:size]...)
		}
		str = str[size:]
	}
	return sanitized
}
