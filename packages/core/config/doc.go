// Package config reads reqfile settings from REQFILE_* environment
// variables. The values become the defaults of the command-line flags, so
// a flag given on the command line always wins.
package config
