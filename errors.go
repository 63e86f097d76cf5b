package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors: surfaced eagerly, before any processing.
	ErrInvalidBaseURL     = errors.New("invalid base URL")
	ErrInvalidHighlighter = errors.New("invalid highlighter")

	// Rendering errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrParseStage     = errors.New("parse stage failed")
	ErrConvertStage   = errors.New("convert stage failed")
)
