package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts decoded scalar values (YAML, JSON, form values) to int.
// Strings are trimmed before parsing. Floats must be whole numbers.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case float32:
		if v != float32(int(v)) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	case nil:
		return 0, fmt.Errorf("missing integer value")
	default:
		return 0, fmt.Errorf("unsupported integer value of type %T", v)
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		i, _ := ToInt(v)
		return i == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// SplitTyped splits "<int>:<text>" into its parts. When s has no integer prefix
// ok is false and text is s unchanged.
func SplitTyped(s string) (typ int, text string, ok bool) {
	prefix, rest, found := strings.Cut(s, ":")
	if !found {
		return 0, s, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, s, false
	}
	return n, rest, true
}
