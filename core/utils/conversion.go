package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes", "on").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		return parseBoolString(v)
	case []byte:
		return parseBoolString(string(v))
	default:
		return false
	}
}

// ToBoolDefault is ToBool for optional values: an empty string yields def.
func ToBoolDefault(val string, def bool) bool {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return ToBool(val)
}

func parseBoolString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ToInt64 converts a decimal string or integer to int64.
func ToInt64(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q: %w", v, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported integer type %T", val)
	}
}
