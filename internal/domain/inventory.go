package domain

import (
	"errors"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"pantry/internal/model"
)

const (
	OpUpsert = "upsert"
	OpRemove = "remove"
)

var (
	ErrInvalidOp = errors.New("invalid inventory operation")
	ErrEmptyName = errors.New("item name is required")
)

func IsValidOp(value string) bool {
	switch value {
	case OpUpsert, OpRemove:
		return true
	default:
		return false
	}
}

// ParseQuantity coerces form text into a quantity. Surrounding whitespace and
// a single sign are accepted, then the leading run of digits is used and the
// rest ignored, so "12abc" is 12 and "5.9" is 5. A 0x or 0X prefix switches
// to hexadecimal digits, so "0x10" is 16. Text without leading digits is NaN.
// Out-of-range values saturate.
func ParseQuantity(text string) model.Quantity {
	s := strings.TrimSpace(text)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := int64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return model.NaN()
	}

	var n int64
	for i := 0; i < end; i++ {
		d := digitValue(s[i])
		if neg {
			if n < (math.MinInt64+d)/base {
				return model.Count(math.MinInt64)
			}
			n = n*base - d
			continue
		}
		if n > (math.MaxInt64-d)/base {
			return model.Count(math.MaxInt64)
		}
		n = n*base + d
	}
	return model.Count(n)
}

// digitValue returns the value of a hex digit, or 99 for anything else.
func digitValue(c byte) int64 {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0')
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10
	default:
		return 99
	}
}

// Search keeps the items whose name contains term, ignoring case. An empty
// term keeps everything.
func Search(items []model.Item, term string) []model.Item {
	needle := strings.ToLower(term)
	result := make([]model.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			result = append(result, item)
		}
	}
	return result
}

// DisplayName upper-cases the first letter of name and leaves the rest as is.
func DisplayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
