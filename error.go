package strictread

import "fmt"

// Actual descriptions at or past this length are rendered as "(omit)" to
// keep failure reports printable when the input is garbage.
const omitThreshold = 1000

// VerificationError reports the first point where the input stopped
// following the expected format. Line is the 1-indexed line of the source
// the failing read ended on.
type VerificationError struct {
	Line     int
	Expected string
	Actual   string
}

func (err VerificationError) Error() string {
	return fmt.Sprintf("Verification failed at line %d.\n\texpected: %s\n\tactual: %s",
		err.Line, err.Expected, err.renderActual())
}

func (err VerificationError) renderActual() string {
	if len(err.Actual) >= omitThreshold {
		return "(omit)"
	}
	return err.Actual
}

func newVerificationError(line int, expected string, actual string) *VerificationError {
	return &VerificationError{
		Line:     line,
		Expected: expected,
		Actual:   actual,
	}
}
