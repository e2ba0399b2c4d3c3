// Package spcio implements the text and binary file formats at the edge of
// the system: graph edge lists, query/update batch files, and the index's
// binary serialization (spec §6). None of it is part of the algorithmic
// core; it exists so the cmd/ binaries have something concrete to read and
// write.
//
// The teacher graph library is purely in-memory and has no file-format code
// of its own, so the text formats here are grounded on
// junjiewwang-perf-analysis's internal/parser/collapsed parser (bufio.Scanner
// line readers, sentinel errors wrapped via fmt.Errorf("%w: ...")); the
// binary index layout has no counterpart in the original implementation's
// u_io.cc (which only serialized the graph) and follows spec §6 directly.
package spcio

import "errors"

// ErrMalformed wraps any parse failure in a text input file.
var ErrMalformed = errors.New("spcio: malformed input")

// ErrBadShape is returned by ReadIndex when the header's shape byte is
// neither shapeMerged nor shapeSplit.
var ErrBadShape = errors.New("spcio: unrecognized index file shape")

const (
	shapeMerged byte = 0
	shapeSplit  byte = 1
)
