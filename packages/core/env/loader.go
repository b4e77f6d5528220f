package env

import (
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/reqfile/packages/core/parser"
)

// DefaultBaseFile is looked up in the working directory when no base file is
// given.
const DefaultBaseFile = "env.toml"

type Environment struct {
	Path       string
	Descriptor parser.Descriptor
	Loaded     bool
}

// ResolvePath makes path absolute against the working directory. An empty
// path resolves to DefaultBaseFile.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultBaseFile
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

// LoadEnvironment reads the base file at path. On failure the returned
// Environment is still usable: it carries an empty descriptor and
// Loaded=false, and err says why.
func LoadEnvironment(path string) (*Environment, error) {
	env := &Environment{Path: path}

	resolved, err := ResolvePath(path)
	if err != nil {
		return env, &parser.FileReadError{Path: path, Err: err}
	}
	env.Path = resolved

	d, err := parser.ParseFile(resolved)
	if err != nil {
		return env, err
	}

	env.Descriptor = d
	env.Loaded = true
	return env, nil
}
