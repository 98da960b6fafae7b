package scanner

import "fmt"

// ScanError wraps the error message returned by the scanner with additional
// information on where the error occured.
type ScanError struct {
	line    int
	column  int
	message string
}

func newScanError(line, column int, message string) error {
	return &ScanError{line, column, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d:%d] Error: %s",
		err.line,
		err.column,
		err.message,
	)
}
