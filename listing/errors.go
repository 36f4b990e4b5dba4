package listing

import "fmt"

// ErrorOpts holds the data for a ParseError. All fields are optional,
// although Message is recommended.
type ErrorOpts struct {
	Message string
	Cause   error
	File    string
	Line    int    // 1-based line number in the listing text
	Text    string // the offending listing line, trimmed
}

// NewParseError returns a new ParseError populated with the given data.
func NewParseError(opts ErrorOpts) *ParseError {
	return &ParseError{
		message: opts.Message,
		cause:   opts.Cause,
		file:    opts.File,
		line:    opts.Line,
		text:    opts.Text,
	}
}

// ParseError describes one problem found in a javap listing. Parsing
// continues past an error; every error for a listing is aggregated and
// returned together so one bad line does not hide the rest of the file.
type ParseError struct {
	// The error message
	message string
	// The wrapped error
	cause error
	// File the listing was read from
	file string
	// Line number in the listing text where the error occurred
	line int
	// The offending listing line
	text string
}

func (e *ParseError) Error() string {
	msg := e.message
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.cause)
	}
	if e.file != "" {
		return fmt.Sprintf("%s:%d: %s", e.file, e.line, msg)
	}
	return fmt.Sprintf("line %d: %s", e.line, msg)
}

// Unwrap returns the wrapped error, if any.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// Message returns the problem description without location context.
func (e *ParseError) Message() string {
	return e.message
}

// File returns the listing filename, if one was set with WithFilename.
func (e *ParseError) File() string {
	return e.file
}

// Line returns the 1-based line number in the listing text.
func (e *ParseError) Line() int {
	return e.line
}

// Text returns the offending listing line.
func (e *ParseError) Text() string {
	return e.text
}
