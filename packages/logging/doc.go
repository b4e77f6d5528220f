// Package logging provides the verbosity-gated logger used by reqfile.
//
// A Logger is created once at startup, initialised with a Verbosity, and
// passed to every component that writes output. Calls made before Init are
// dropped, and only the first Init takes effect.
package logging
