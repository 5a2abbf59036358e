package strictread

import (
	"fmt"
	"strconv"
)

// ReadDouble reads a token holding a decimal in canonical form, an optional
// minus sign, an integer part without leading zeros, a decimal point and a
// fraction that does not end in zero. Values like "1.50", "00.1" or "5" are
// rejected even though ParseFloat would take them.
func (verifier *Verifier) ReadDouble() (float64, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.parseDouble(token)
}

// ReadDoubleInRange reads a canonical double and requires min <= value <= max.
func (verifier *Verifier) ReadDoubleInRange(min float64, max float64) (float64, error) {
	if min > max {
		panic(fmt.Errorf("Empty range."))
	}
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.rangedDouble(token, min, max)
}

// ReadDoubleStrict reads a canonical double whose fraction has between
// minDigits and maxDigits digits and whose value lies in [min, max]. Both
// defects are reported the same way since a reader of the report cannot
// tell them apart anyway.
func (verifier *Verifier) ReadDoubleStrict(min float64, max float64, minDigits int, maxDigits int) (float64, error) {
	if min > max || minDigits > maxDigits {
		panic(fmt.Errorf("Empty range."))
	}
	if minDigits < 1 {
		panic(fmt.Errorf("Invalid digit count %v", minDigits))
	}
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.strictDouble(token, min, max, minDigits, maxDigits)
}

// ReadDoubles reads size ranged doubles separated by single delimiter bytes.
func (verifier *Verifier) ReadDoubles(size int, min float64, max float64, delimiter byte) ([]float64, error) {
	doubles := make([]float64, size)
	for i := range doubles {
		if min > max {
			panic(fmt.Errorf("Empty range."))
		}
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		value, err := verifier.rangedDouble(token, min, max)
		if err != nil {
			return nil, err
		}
		doubles[i] = value
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return doubles, nil
}

// ReadDoublesStrict reads size strict doubles separated by single
// delimiter bytes.
func (verifier *Verifier) ReadDoublesStrict(size int, min float64, max float64, minDigits int, maxDigits int, delimiter byte) ([]float64, error) {
	doubles := make([]float64, size)
	for i := range doubles {
		if min > max || minDigits > maxDigits {
			panic(fmt.Errorf("Empty range."))
		}
		if minDigits < 1 {
			panic(fmt.Errorf("Invalid digit count %v", minDigits))
		}
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		value, err := verifier.strictDouble(token, min, max, minDigits, maxDigits)
		if err != nil {
			return nil, err
		}
		doubles[i] = value
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return doubles, nil
}

func (verifier *Verifier) parseDouble(token string) (float64, error) {
	if _, ok := scanDecimal(token); !ok {
		return 0, verifier.fail("double", token)
	}
	return decimalValue(token), nil
}

func (verifier *Verifier) rangedDouble(token string, min float64, max float64) (float64, error) {
	value, err := verifier.parseDouble(token)
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		return 0, verifier.fail(
			fmt.Sprintf("double in [%f, %f]", min, max),
			strconv.FormatFloat(value, 'f', -1, 64))
	}
	return value, nil
}

func (verifier *Verifier) strictDouble(token string, min float64, max float64, minDigits int, maxDigits int) (float64, error) {
	digits, ok := scanDecimal(token)
	if !ok || digits < minDigits || digits > maxDigits {
		return 0, verifier.strictDoubleFailure(token, min, max, minDigits, maxDigits)
	}
	value := decimalValue(token)
	if value < min || value > max {
		return 0, verifier.strictDoubleFailure(token, min, max, minDigits, maxDigits)
	}
	return value, nil
}

func (verifier *Verifier) strictDoubleFailure(token string, min float64, max float64, minDigits int, maxDigits int) error {
	expected := fmt.Sprintf(
		"a double value that has [%d, %d] digits after the decimal point and is in [%f, %f]",
		minDigits, maxDigits, min, max)
	return verifier.fail(expected, token)
}

// scanDecimal checks the canonical decimal grammar and counts the digits
// after the decimal point. The integer part is either a single zero or
// starts with a nonzero digit, the fraction is nonempty and its last digit
// is nonzero.
func scanDecimal(token string) (int, bool) {
	pos := 0
	if pos < len(token) && token[pos] == minusSign {
		pos += 1
	}
	start := pos
	for pos < len(token) && isAsciiDigit(int(token[pos])) {
		pos += 1
	}
	if pos == start {
		return 0, false
	}
	if token[start] == zeroChar && pos-start > 1 {
		return 0, false
	}
	if pos >= len(token) || token[pos] != decimalPoint {
		return 0, false
	}
	pos += 1
	fracStart := pos
	for pos < len(token) && isAsciiDigit(int(token[pos])) {
		pos += 1
	}
	if pos == fracStart || pos != len(token) {
		return 0, false
	}
	if token[pos-1] == zeroChar {
		return 0, false
	}
	return pos - fracStart, true
}

// decimalValue trusts the token to be in canonical form already. Values
// beyond the float64 range saturate to an infinity, which the range check
// then rejects.
func decimalValue(token string) float64 {
	value, _ := strconv.ParseFloat(token, 64)
	return value
}
