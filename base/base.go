package base

import (
	"strconv"
	"strings"
)

// Base is a closed tag for the supported numeric bases.
type Base string

const (
	Binary  Base = "b"
	Octal   Base = "o"
	Decimal Base = "d"
	Hex     Base = "x"
)

// digits maps each base to its legal character set. Hexadecimal accepts
// uppercase digits only; lowercase input is rejected.
var digits = map[Base]string{
	Binary:  "01",
	Octal:   "01234567",
	Decimal: "0123456789",
	Hex:     "0123456789ABCDEF",
}

var names = map[Base]string{
	Binary:  "Binary",
	Octal:   "Octal",
	Decimal: "Decimal",
	Hex:     "Hexadecimal",
}

var radixes = map[Base]int{
	Binary:  2,
	Octal:   8,
	Decimal: 10,
	Hex:     16,
}

// Name returns the spelled-out base name, e.g. "Binary".
func (b Base) Name() string {
	return names[b]
}

// Radix returns the numeric radix of the base, or 0 for an unknown tag.
func (b Base) Radix() int {
	return radixes[b]
}

func (b Base) String() string {
	return string(b)
}

// ParseBase resolves a single-character base flag, case-insensitively.
func ParseBase(flag string) (Base, error) {
	switch b := Base(strings.ToLower(flag)); b {
	case Binary, Octal, Decimal, Hex:
		return b, nil
	}
	return "", &InvalidBaseError{Flag: flag}
}

// Valid reports whether every character of token is legal for the base.
// The empty token is never valid.
func Valid(token string, b Base) bool {
	set, ok := digits[b]
	if !ok || token == "" {
		return false
	}
	for _, r := range token {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

// Parse validates token against the base's character set and interprets
// it in that base's radix.
func Parse(token string, b Base) (int64, error) {
	if _, ok := digits[b]; !ok {
		return 0, &InvalidBaseError{Flag: string(b)}
	}
	if !Valid(token, b) {
		return 0, &InvalidNumberError{Base: b}
	}
	v, err := strconv.ParseInt(token, b.Radix(), 64)
	if err != nil {
		// The digits check above guarantees a known radix and legal
		// characters, so the only remaining failure is int64 overflow.
		return 0, &InvalidNumberError{Base: b}
	}
	return v, nil
}

// Format renders v in the target base: lowercase digits for binary and
// octal, uppercase A-F for hexadecimal, no prefixes or leading zeros.
func Format(v int64, target Base) (string, error) {
	switch target {
	case Binary:
		return strconv.FormatInt(v, 2), nil
	case Octal:
		return strconv.FormatInt(v, 8), nil
	case Decimal:
		return strconv.FormatInt(v, 10), nil
	case Hex:
		return strings.ToUpper(strconv.FormatInt(v, 16)), nil
	}
	return "", &UnsupportedTargetError{Target: target}
}
