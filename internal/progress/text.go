package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numbers edited as free text are kept as text until the record is written.

func formatCount(v int32) string { return strconv.FormatInt(int64(v), 10) }

func formatDecimal(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// parseCount reads a 32-bit count. Empty text is zero. Negative values are
// accepted because the game can store them; only typed input is kept
// non-negative, by SanitizeUnsigned.
func parseCount(field, text string) (int32, error) {
	if text == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &UnrepresentableError{Field: field, Value: text, Err: ErrNotNumber}
	}
	return int32(n), nil
}

// parseDecimal reads a finite 32-bit float. Empty text is zero.
func parseDecimal(field, text string) (float32, error) {
	if text == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(text, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &UnrepresentableError{Field: field, Value: text, Err: ErrNotNumber}
	}
	return float32(f), nil
}

// ValidateCount reports whether text can be stored in a count field such as money.
// Any value that fits an int32 can be stored.
func ValidateCount(text string) error {
	if _, err := parseCount("", text); err != nil {
		return fmt.Errorf("%q: %w", text, ErrNotNumber)
	}
	return nil
}

// ValidateDecimal reports whether text can be stored in a wave or time field.
func ValidateDecimal(text string) error {
	if _, err := parseDecimal("", text); err != nil {
		return fmt.Errorf("%q: %w", text, ErrNotNumber)
	}
	return nil
}

// SanitizeUnsigned keeps only the digits of text. The result is empty when the
// digits do not fit a non-negative int32.
func SanitizeUnsigned(text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if ValidateCount(digits) != nil {
		return ""
	}
	return digits
}

// SanitizeDecimal keeps the digits of text and its first decimal point. The
// result is empty when it still does not parse.
func SanitizeDecimal(text string) string {
	var b strings.Builder
	point := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !point:
			point = true
			b.WriteRune(r)
		}
	}
	out := b.String()
	if ValidateDecimal(out) != nil {
		return ""
	}
	return out
}
