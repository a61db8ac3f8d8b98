package legacy

import (
	"fmt"
	"strconv"
	"strings"
)

// DatString renders a decoded value back into its legacy token form:
// booleans as lowercase literals, floats at full precision, vectors
// as space-joined element tokens.
func DatString(v any) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case float64:
		return FormatFloat(value), nil
	case []any:
		toks := make([]string, 0, len(value))
		for _, e := range value {
			tok, err := DatString(e)
			if err != nil {
				return "", err
			}
			toks = append(toks, tok)
		}
		return strings.Join(toks, " "), nil
	case []int:
		toks := make([]string, 0, len(value))
		for _, e := range value {
			toks = append(toks, strconv.Itoa(e))
		}
		return strings.Join(toks, " "), nil
	case []float64:
		toks := make([]string, 0, len(value))
		for _, e := range value {
			toks = append(toks, FormatFloat(e))
		}
		return strings.Join(toks, " "), nil
	case []string:
		return strings.Join(value, " "), nil
	default:
		return "", fmt.Errorf("cannot render value %v of type %T as a dat token", v, v)
	}
}

// FormatFloat renders a float at full precision, so that re-parsing
// yields the identical value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
