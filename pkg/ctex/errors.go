package ctex

import "errors"

var (
	// Header errors
	ErrFileTooSmall    = errors.New("file too small, minimum 56 bytes required")
	ErrTruncatedHeader = errors.New("failed to read format information")
	ErrEmptyPayload    = errors.New("no image data found after header")

	// I/O errors
	ErrOpenFailed  = errors.New("cannot open container file")
	ErrWriteFailed = errors.New("failed to write image data")
)
