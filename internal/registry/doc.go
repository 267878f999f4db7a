// Package registry provides the read-only catalogue of operation signatures.
//
// The Registry maps the string identifiers used when adding nodes (e.g.,
// "CX_gate") to the fixed input and output port types of that operation. It
// is assembled once at startup from the built-in gate table plus any
// operations declared in manifest files, validated, and then shared by
// reference with every graph that needs it.
//
// Nothing in this package mutates a Registry after New returns, so one
// instance can back any number of independent graphs.
package registry
