package parser

import (
	"fmt"
	"strconv"
)

// FileReadError is returned when a request file cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not read the file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a request file is not valid TOML/YAML or does
// not match the request schema. Line and Column are zero when the decoder
// did not report a position.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	where := e.File
	if where == "" {
		where = "input"
	}
	if e.Line > 0 {
		where += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			where += ":" + strconv.Itoa(e.Column)
		}
	}
	return "could not parse the file " + where + ": " + e.Message
}
