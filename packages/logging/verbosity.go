package logging

import (
	"fmt"
	"strings"
)

// Verbosity is an ordered output level: Minimal < Normal < Detailed.
type Verbosity int

const (
	// Minimal prints only the response body
	Minimal Verbosity = iota
	// Normal adds status, timing and response headers
	Normal
	// Detailed adds the assembled request before it is sent
	Detailed
)

var verbosityNames = map[Verbosity]string{
	Minimal:  "minimal",
	Normal:   "normal",
	Detailed: "detailed",
}

func (v Verbosity) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verbosity(%d)", int(v))
}

// ParseVerbosity maps a level name to a Verbosity, ignoring case.
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimal":
		return Minimal, nil
	case "normal", "":
		return Normal, nil
	case "detailed":
		return Detailed, nil
	}
	return Normal, fmt.Errorf("unknown verbosity %q (use minimal, normal or detailed)", name)
}

// Names lists the accepted level names in order.
func Names() []string {
	return []string{"minimal", "normal", "detailed"}
}
