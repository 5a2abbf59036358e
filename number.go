package strictread

import (
	"fmt"
	"strconv"
)

// ReadLong reads a token and parses it as a signed 64-bit decimal integer.
// The failure report carries the raw token.
func (verifier *Verifier) ReadLong() (int64, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.parseLong(token)
}

// ReadLongInRange reads a long and requires min <= value <= max. An empty
// range is a programming mistake, not an input defect.
func (verifier *Verifier) ReadLongInRange(min int64, max int64) (int64, error) {
	if min > max {
		panic(fmt.Errorf("Empty range."))
	}
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.rangedLong(token, min, max)
}

// ReadLongs reads size ranged longs separated by single delimiter bytes.
func (verifier *Verifier) ReadLongs(size int, min int64, max int64, delimiter byte) ([]int64, error) {
	longs := make([]int64, size)
	for i := range longs {
		if min > max {
			panic(fmt.Errorf("Empty range."))
		}
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		value, err := verifier.rangedLong(token, min, max)
		if err != nil {
			return nil, err
		}
		longs[i] = value
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return longs, nil
}

// ReadInt reads a token and parses it as a signed 32-bit decimal integer.
func (verifier *Verifier) ReadInt() (int, error) {
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.parseInt(token)
}

func (verifier *Verifier) ReadIntInRange(min int, max int) (int, error) {
	if min > max {
		panic(fmt.Errorf("Empty range."))
	}
	token, err := verifier.ReadToken()
	if err != nil {
		return 0, err
	}
	return verifier.rangedInt(token, min, max)
}

func (verifier *Verifier) ReadInts(size int, min int, max int, delimiter byte) ([]int, error) {
	ints := make([]int, size)
	for i := range ints {
		if min > max {
			panic(fmt.Errorf("Empty range."))
		}
		token, err := verifier.readDelimitedToken(delimiter)
		if err != nil {
			return nil, err
		}
		value, err := verifier.rangedInt(token, min, max)
		if err != nil {
			return nil, err
		}
		ints[i] = value
		if i < size-1 {
			if err := verifier.expectDelimiter(delimiter); err != nil {
				return nil, err
			}
		}
	}
	return ints, nil
}

func (verifier *Verifier) parseLong(token string) (int64, error) {
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, verifier.fail("long", token)
	}
	return value, nil
}

func (verifier *Verifier) rangedLong(token string, min int64, max int64) (int64, error) {
	value, err := verifier.parseLong(token)
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		return 0, verifier.fail(
			fmt.Sprintf("long in [%d, %d]", min, max),
			strconv.FormatInt(value, 10))
	}
	return value, nil
}

func (verifier *Verifier) parseInt(token string) (int, error) {
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, verifier.fail("int", token)
	}
	return int(value), nil
}

func (verifier *Verifier) rangedInt(token string, min int, max int) (int, error) {
	value, err := verifier.parseInt(token)
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		return 0, verifier.fail(
			fmt.Sprintf("int in [%d, %d]", min, max),
			strconv.Itoa(value))
	}
	return value, nil
}
