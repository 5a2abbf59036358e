package strictread

import (
	"fmt"
	"regexp"
)

// ReadToken reads a maximal run of printable ASCII bytes. The byte that
// ends the run is pushed back. An empty run is a failure.
func (verifier *Verifier) ReadToken() (string, error) {
	ch, err := verifier.src.readByte()
	if err != nil {
		return "", err
	}
	token := make([]byte, 0)
	for isPrintableAscii(ch) {
		token = append(token, byte(ch))
		ch, err = verifier.src.readByte()
		if err != nil {
			return "", err
		}
	}
	if ch != eof {
		verifier.src.pushBack(byte(ch))
	}
	if len(token) == 0 {
		return "", verifier.fail("Token", readableString(ch))
	}
	return string(token), nil
}

// ReadTokenWithLength reads a token of exactly expectedLength bytes. The
// failure report carries both lengths, not the token content.
func (verifier *Verifier) ReadTokenWithLength(expectedLength int) (string, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return "", err
	}
	return verifier.checkLength(token, expectedLength, "Token with the length %d")
}

// ReadTokenMatching reads a token and requires the whole token to match
// pattern. The failure report names the pattern as the caller compiled it.
func (verifier *Verifier) ReadTokenMatching(pattern *regexp.Regexp) (string, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return "", err
	}
	return verifier.checkPattern(token, pattern)
}

// ReadTokens reads size tokens separated by single delimiter bytes. A token
// element never contains the delimiter byte, its run stops there as well as
// at any non printable byte.
func (verifier *Verifier) ReadTokens(size int, delimiter byte) ([]string, error) {
	tokens := make([]string, size)
	for i := range tokens {
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		tokens[i] = token
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

// ReadTokensMatching reads size tokens separated by single delimiter bytes,
// each fully matching pattern.
func (verifier *Verifier) ReadTokensMatching(size int, pattern *regexp.Regexp, delimiter byte) ([]string, error) {
	tokens := make([]string, size)
	for i := range tokens {
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		if token, err = verifier.checkPattern(token, pattern); err != nil {
			return nil, err
		}
		tokens[i] = token
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

// ReadLowerCaseToken reads a token made only of a-z characters.
func (verifier *Verifier) ReadLowerCaseToken() (string, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return "", err
	}
	return verifier.checkCase(token, isLowerCaseAlphabet, "lower-case token")
}

func (verifier *Verifier) ReadLowerCaseTokenWithLength(expectedLength int) (string, error) {
	token, err := verifier.ReadLowerCaseToken()
	if err != nil {
		return "", err
	}
	return verifier.checkLength(token, expectedLength, "token with the length %d")
}

func (verifier *Verifier) ReadLowerCaseTokens(size int, delimiter byte) ([]string, error) {
	tokens := make([]string, size)
	for i := range tokens {
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		if token, err = verifier.checkCase(token, isLowerCaseAlphabet, "lower-case token"); err != nil {
			return nil, err
		}
		tokens[i] = token
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

// ReadUpperCaseToken reads a token made only of A-Z characters.
func (verifier *Verifier) ReadUpperCaseToken() (string, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return "", err
	}
	return verifier.checkCase(token, isUpperCaseAlphabet, "upper-case token")
}

func (verifier *Verifier) ReadUpperCaseTokenWithLength(expectedLength int) (string, error) {
	token, err := verifier.ReadUpperCaseToken()
	if err != nil {
		return "", err
	}
	return verifier.checkLength(token, expectedLength, "token with the length %d")
}

func (verifier *Verifier) ReadUpperCaseTokens(size int, delimiter byte) ([]string, error) {
	tokens := make([]string, size)
	for i := range tokens {
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		if token, err = verifier.checkCase(token, isUpperCaseAlphabet, "upper-case token"); err != nil {
			return nil, err
		}
		tokens[i] = token
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

// readDelimitedToken reads one element of a delimiter separated list. The
// run stops at the delimiter byte too, so elements can sit between printable
// delimiters like commas. The stopping byte is pushed back as usual.
func (verifier *Verifier) readDelimitedToken(delimiter byte) (string, error) {
	ch, err := verifier.src.readByte()
	if err != nil {
		return "", err
	}
	token := make([]byte, 0)
	for isPrintableAscii(ch) && ch != int(delimiter) {
		token = append(token, byte(ch))
		ch, err = verifier.src.readByte()
		if err != nil {
			return "", err
		}
	}
	if ch != eof {
		verifier.src.pushBack(byte(ch))
	}
	if len(token) == 0 {
		return "", verifier.fail("Token", readableString(ch))
	}
	return string(token), nil
}

// expectDelimiter consumes the byte between two vector elements. A wrong
// byte stays consumed and both sides of the report are rendered in
// readable form.
func (verifier *Verifier) expectDelimiter(delimiter byte) error {
	ch, err := verifier.src.readByte()
	if err != nil {
		return err
	}
	if ch != int(delimiter) {
		return verifier.fail(readableString(int(delimiter)), readableString(ch))
	}
	return nil
}

func (verifier *Verifier) checkLength(token string, expectedLength int, format string) (string, error) {
	if len(token) != expectedLength {
		return "", verifier.fail(
			fmt.Sprintf(format, expectedLength),
			fmt.Sprintf(format, len(token)))
	}
	return token, nil
}

func (verifier *Verifier) checkPattern(token string, pattern *regexp.Regexp) (string, error) {
	if !anchored(pattern).MatchString(token) {
		return "", verifier.fail(fmt.Sprintf("token that matches with %s.", pattern), token)
	}
	return token, nil
}

func (verifier *Verifier) checkCase(token string, accept func(ch int) bool, expected string) (string, error) {
	if !allBytesMatch(token, accept) {
		return "", verifier.fail(expected, token)
	}
	return token, nil
}

func allBytesMatch(token string, accept func(ch int) bool) bool {
	for i := 0; i < len(token); i++ {
		if !accept(int(token[i])) {
			return false
		}
	}
	return true
}

// anchored turns a match-anywhere pattern into a whole-string pattern.
func anchored(pattern *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pattern.String() + `)\z`)
}
