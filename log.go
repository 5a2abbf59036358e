package strictread

import (
	log "github.com/sirupsen/logrus"
)

func traceFailure(err *VerificationError) {
	trace("Verification failed", log.Fields{
		"line":     err.Line,
		"expected": err.Expected,
		"actual":   err.Actual,
	})
}

func trace(message string, fields log.Fields) {
	log.WithFields(fields).Trace(message)
}
