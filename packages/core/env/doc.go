// Package env loads the base (environment) request file that sits beneath
// every request file.
//
// The base file is optional. Callers get the error back so they can report
// it, but a failed base load never stops a run.
package env
