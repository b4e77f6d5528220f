// Package parser reads request files into partial request descriptors.
//
// A request file is TOML (or YAML, chosen by the .yaml/.yml extension) with
// the top-level keys method, host, path and body plus a headers table. Every
// key is optional in a single file; descriptors from several files are
// layered with Merge before a complete request is built from them.
package parser
