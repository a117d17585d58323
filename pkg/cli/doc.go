// Package cli implements the structmatch command-line interface.
//
// Commands:
//
//	eval   Match input data against a pattern document
//	check  Validate and compile a pattern document
//	keys   List the selection keys a pattern document can bind
//
// Pattern documents are the JSON/YAML format of pkg/patternfile; input
// data is JSON. Results are printed as JSON on stdout; diagnostics go to
// stderr through the configured logger.
package cli
