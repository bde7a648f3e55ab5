// Package sanitize normalizes underscore placeholders in untrusted JSON.
//
// The frontend sends "_" (or "__", "___", ...) to mean "leave this field
// blank" in form inputs. Clean rewrites those sentinels to true empty
// strings before typed decoding, so strict validation sees an absent value
// instead of rejecting "_" as e.g. an invalid unit tag.
package sanitize

// Clean recursively walks a decoded JSON value (the string / float64 /
// bool / nil / []any / map[string]any shapes produced by encoding/json)
// and replaces every non-empty string consisting only of underscore
// characters with the empty string. All other scalars pass through
// unchanged. Lists and maps are rebuilt with every child cleaned.
//
// Clean is pure: it never mutates its input and performs no I/O.
func Clean(v any) any {
	switch val := v.(type) {
	case string:
		if allUnderscores(val) {
			return ""
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Clean(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Clean(elem)
		}
		return out
	default:
		return v
	}
}

// allUnderscores reports whether s is one or more underscores and nothing
// else. The empty string is not a placeholder and is left alone.
func allUnderscores(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' {
			return false
		}
	}
	return true
}
