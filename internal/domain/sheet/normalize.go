package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int coerces a raw cell into an integer. Blank or non-numeric input yields 0.
// Text is read up to the first non-digit, so "12abc" is 12 and "3.7" is 3.
func Int(v any) int {
	switch value := v.(type) {
	case nil:
		return 0
	case int:
		return value
	case int8:
		return int(value)
	case int16:
		return int(value)
	case int32:
		return int(value)
	case int64:
		return int(value)
	case uint:
		return int(value)
	case uint8:
		return int(value)
	case uint16:
		return int(value)
	case uint32:
		return int(value)
	case uint64:
		return int(value)
	case float32:
		return floatToInt(float64(value))
	case float64:
		return floatToInt(value)
	case string:
		return leadingInt(value)
	case []byte:
		return leadingInt(string(value))
	case fmt.Stringer:
		return leadingInt(value.String())
	default:
		return 0
	}
}

// Text returns the trimmed string form of a raw cell.
func Text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

// IsBlank reports whether a raw cell carries no value.
func IsBlank(v any) bool {
	return Text(v) == ""
}

func floatToInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}

func leadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	out, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return out
}
