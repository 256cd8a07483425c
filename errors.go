package cograph

import "errors"

var (
	// ErrCorpusNotFound is returned when the corpus path does not exist.
	ErrCorpusNotFound = errors.New("cograph: corpus file not found")

	// ErrDecodeFailed is returned when the corpus is not valid text.
	ErrDecodeFailed = errors.New("cograph: corpus decoding failed")

	// ErrUnsupportedFormat is returned for extensions with no registered reader.
	ErrUnsupportedFormat = errors.New("cograph: unsupported corpus format")

	// ErrLoadFailed is returned when reading the corpus fails for other reasons.
	ErrLoadFailed = errors.New("cograph: corpus loading failed")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("cograph: invalid configuration")

	// ErrRenderFailed is returned when layout or image output fails.
	ErrRenderFailed = errors.New("cograph: rendering failed")
)
