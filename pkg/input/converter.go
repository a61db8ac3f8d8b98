package input

import "fmt"

// ConvertFunc transforms one matched value. The converter is passed
// back in so nested content can be converted recursively.
type ConvertFunc func(c *Converter, v any) (any, error)

type rule struct {
	match   func(any) bool
	convert ConvertFunc
}

// Converter normalizes foreign value types into the plain
// map/slice/scalar shapes the codecs understand. Rules are tried in
// registration order and the first matching rule wins, so register
// more specific predicates before general ones.
type Converter struct {
	rules []rule
}

func NewConverter() *Converter {
	return &Converter{}
}

// Register appends a (predicate, transform) rule.
func (c *Converter) Register(match func(any) bool, convert ConvertFunc) *Converter {
	c.rules = append(c.rules, rule{match: match, convert: convert})
	return c
}

// Convert normalizes a value. Values without a matching rule pass
// through if they are already plain; anything else is an error.
func (c *Converter) Convert(v any) (any, error) {
	if len(c.rules) == 0 {
		return v, nil
	}

	for _, r := range c.rules {
		if r.match(v) {
			return r.convert(c, v)
		}
	}

	switch value := v.(type) {
	case nil, int, int64, float64, bool, string:
		return v, nil
	case []any:
		out := make([]any, 0, len(value))
		for _, e := range value {
			converted, err := c.Convert(e)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, e := range value {
			converted, err := c.Convert(e)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value %v of type %T can not be converted", v, v)
	}
}
