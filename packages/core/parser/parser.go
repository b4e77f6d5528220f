package parser

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FormatForPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseFile reads and decodes a request file.
func ParseFile(path string) (Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Descriptor{}, &FileReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return Descriptor{}, &FileReadError{Path: path, Err: errors.New("not a regular file")}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, &FileReadError{Path: path, Err: err}
	}
	return Parse(string(content), path, FormatForPath(path))
}

// Parse decodes input in the given format. filename is only used for error
// messages.
//
// TOML is strict: a value of the wrong type, such as a number for method or
// a string for headers, is a ParseError. YAML is looser because yaml.v3
// decodes any scalar into a string field, so `method: 5` yields "5". A
// mapping or sequence where a string is expected is still an error.
func Parse(input, filename string, format Format) (Descriptor, error) {
	switch format {
	case FormatYAML:
		return parseYAML(input, filename)
	default:
		return parseTOML(input, filename)
	}
}

func parseTOML(input, filename string) (Descriptor, error) {
	var d Descriptor
	if _, err := toml.Decode(input, &d); err != nil {
		pe := &ParseError{File: filename, Message: err.Error()}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			// Lexer errors leave Message empty and keep the detail in the
			// wrapped error, which only Error() renders.
			if tomlErr.Message != "" {
				pe.Message = tomlErr.Message
			}
			pe.Line = tomlErr.Position.Line
			pe.Column = columnOf(input, tomlErr.Position.Start)
		}
		return Descriptor{}, pe
	}
	return d, nil
}

func parseYAML(input, filename string) (Descriptor, error) {
	var d Descriptor
	dec := yaml.NewDecoder(bytes.NewBufferString(input))
	if err := dec.Decode(&d); err != nil {
		// An empty document is an empty descriptor, like an empty TOML file.
		if errors.Is(err, io.EOF) {
			return Descriptor{}, nil
		}
		return Descriptor{}, &ParseError{File: filename, Message: err.Error()}
	}
	return d, nil
}

// columnOf converts a byte offset into a 1-based column on its line.
func columnOf(input string, offset int) int {
	if offset <= 0 || offset > len(input) {
		return 0
	}
	lineStart := strings.LastIndexByte(input[:offset], '\n') + 1
	return offset - lineStart + 1
}
