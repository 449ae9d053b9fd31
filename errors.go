package huffzip

import (
	"errors"
)

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("huffzip: source file does not exist")

	// ErrEmptyInput is returned when asked to compress zero bytes.  There
	// is no tree and no code table for an empty input.
	ErrEmptyInput = errors.New("huffzip: empty input")

	// ErrEmptyQueue is returned by PriorityQueue.Remove on an empty queue.
	ErrEmptyQueue = errors.New("huffzip: remove from empty priority queue")

	// ErrMalformedStream is returned when the payload bits cannot be
	// accounted for by the code table: the payload is truncated, the table
	// is not prefix-free, or no code matches the remaining bits.
	ErrMalformedStream = errors.New("huffzip: malformed stream")

	// ErrInvalidHeader is returned when a compressed file's header cannot
	// be parsed.
	ErrInvalidHeader = errors.New("huffzip: invalid header")
)
