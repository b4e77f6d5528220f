// Package http assembles complete requests from merged descriptors and
// sends them.
//
// It wraps the standard library's http package with:
//   - A fixed verb set parsed case-insensitively
//   - Request assembly that names the first missing field
//   - Latency measured through the full body read
//   - Raw "name: value" response header lines
package http
