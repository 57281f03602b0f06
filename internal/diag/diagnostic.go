package diag

// Diagnostic is a single style finding on one line of one input.
type Diagnostic struct {
	Source   string // display name of the input, exactly as given on the command line
	Line     uint32 // 1-based, resets per input
	Severity Severity
	Code     Code
	Message  string
	Excerpt  string // the offending line without its terminator, kept for pretty output
}
