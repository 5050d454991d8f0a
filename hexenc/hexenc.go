// Package hexenc implements the canonical hexadecimal text form for
// arbitrary-precision non-negative integers: lowercase digits, no 0x prefix,
// no leading zeros, with the value zero written as "0".
package hexenc

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrParse is returned by FromHex for input that is not a plain sequence of
// hexadecimal digits.
var ErrParse = errors.New("hexenc: invalid hexadecimal input")

// ToHex returns the minimal lowercase hexadecimal representation of v,
// without sign, prefix, or padding. v must be non-negative.
func ToHex(v *big.Int) string {
	if v.Sign() < 0 {
		panic("hexenc: negative value")
	}
	return v.Text(16)
}

// FromHex parses s as a sequence of hexadecimal digits and returns the
// represented integer. Uppercase digits are accepted. The empty string and
// any character outside [0-9a-fA-F] are rejected with an error wrapping
// ErrParse.
func FromHex(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrParse)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' {
			continue
		}
		return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, c, i)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}
