// Package runner executes a single request file end to end.
//
// A run loads the optional base file, loads the request file, merges the
// two with the request file winning, builds a complete request, sends it
// and prints the response through the verbosity-gated logger.
//
// Only a failed base file is tolerated; it is reported as a notice and the
// run continues with the request file alone. Every other failure stops the
// run and is returned to the caller.
package runner
