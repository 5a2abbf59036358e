// Package strictread verifies that a byte stream follows an exact expected
// format. It is meant for machine-generated input where any stray byte is a
// defect, so every read either returns a fully valid value or fails with the
// line it happened on.
package strictread

import (
	"fmt"
	"io"
	"os"
)

const defaultBuffSize = 1024

// Verifier checks a byte stream against an exact expected format, one value
// at a time. Format violations come back as *VerificationError, errors from
// the stream itself are returned unchanged. A Verifier is single use and not
// safe for concurrent use.
type Verifier struct {
	src *source
}

// NewVerifier returns a Verifier reading from in. It panics when in is nil.
func NewVerifier(in io.Reader) *Verifier {
	if in == nil {
		panic(fmt.Errorf("Nil input stream"))
	}
	verifier := new(Verifier)
	verifier.src = newBufferedSource(in, defaultBuffSize)
	return verifier
}

// NewStdinVerifier returns a Verifier reading the process standard input.
func NewStdinVerifier() *Verifier {
	return NewVerifier(os.Stdin)
}

// ExpectEOF fails unless the stream is exhausted. A pending byte is reported
// in readable form and pushed back.
func (verifier *Verifier) ExpectEOF() error {
	has, err := verifier.src.hasNext()
	if err != nil {
		return err
	}
	if has {
		ch, err := verifier.src.readByte()
		if err != nil {
			return err
		}
		verifier.src.pushBack(byte(ch))
		return verifier.fail("EOF", readableString(ch))
	}
	return nil
}

// ExpectNewLine consumes exactly one line feed.
func (verifier *Verifier) ExpectNewLine() error {
	return verifier.expectByte(isNewLine, "EOL")
}

// ExpectSpace consumes exactly one space character.
func (verifier *Verifier) ExpectSpace() error {
	return verifier.expectByte(isSpace, "Space")
}

// ReadLowerCaseCharacter reads one byte in the a-z range.
func (verifier *Verifier) ReadLowerCaseCharacter() (byte, error) {
	return verifier.readCharacter(isLowerCaseAlphabet, "Lower-case character")
}

// ReadUpperCaseCharacter reads one byte in the A-Z range.
func (verifier *Verifier) ReadUpperCaseCharacter() (byte, error) {
	return verifier.readCharacter(isUpperCaseAlphabet, "Upper-case character")
}

func (verifier *Verifier) expectByte(accept func(ch int) bool, expected string) error {
	_, err := verifier.readCharacter(accept, expected)
	return err
}

// readCharacter reads one byte and checks it against accept. A mismatched
// byte is pushed back before failing. End of stream fails as "EOF".
func (verifier *Verifier) readCharacter(accept func(ch int) bool, expected string) (byte, error) {
	ch, err := verifier.src.readByte()
	if err != nil {
		return 0, err
	}
	if ch == eof {
		return 0, verifier.fail(expected, "EOF")
	}
	if !accept(ch) {
		verifier.src.pushBack(byte(ch))
		return 0, verifier.fail(expected, readableString(ch))
	}
	return byte(ch), nil
}

func (verifier *Verifier) fail(expected string, actual string) error {
	err := newVerificationError(verifier.src.currentLine(), expected, actual)
	traceFailure(err)
	return err
}

// Line returns the current 1-indexed line of the source.
func (verifier *Verifier) Line() int {
	return verifier.src.currentLine()
}

func (verifier *Verifier) BytesRead() int {
	return verifier.src.bytesIn()
}

func (verifier *Verifier) ReadCalls() int {
	return verifier.src.numOfReads()
}
