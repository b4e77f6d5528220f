// Package output renders requests and responses for the terminal.
//
// The status line is coloured by bucket: success, redirect, client error
// or server error. Everything after it (timing, header lines, body) is
// printed verbatim unless JSON pretty printing is switched on.
package output
