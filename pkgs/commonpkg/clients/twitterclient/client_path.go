package twitterclient

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////

var placeholderPattern = regexp.MustCompile(`:(\w+)`)

////////////////////////////////////////////////////////////////////////////////

// resolvePath fills the :name placeholders of path from params. The returned
// params are a copy without the consumed keys; the input is left untouched.
func resolvePath(path string, params map[string]any) (string, map[string]any, error) {
	rest := make(map[string]any, len(params))
	for k, v := range params {
		rest[k] = v
	}

	var missing string
	resolved := placeholderPattern.ReplaceAllStringFunc(path, func(segment string) string {
		name := segment[1:]
		v, ok := rest[name]
		if !ok || v == nil {
			if missing == "" {
				missing = name
			}
			return segment
		}
		delete(rest, name)
		return url.PathEscape(formatValue(v))
	})
	if missing != "" {
		return "", nil, &MissingParamError{Param: missing, Path: path}
	}
	return resolved, rest, nil
}

// encodeParams converts loosely typed params into form/query values
func encodeParams(params map[string]any) url.Values {
	values := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		values.Set(k, formatValue(v))
	}
	return values
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, ",")
	case []int64:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ",")
	case []uint64:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.FormatUint(n, 10)
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = formatValue(n)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}
