package input

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// CompareHook lets callers compare values the generic walk does not
// understand. It reports whether it handled the pair; hooks are tried
// in registration order and the first one that handles a pair wins.
type CompareHook func(obj, ref any) (handled bool, err error)

// CompareOptions tunes the tolerance comparison.
type CompareOptions struct {
	// RTol and ATol are the relative and absolute tolerances for
	// numeric closeness: |obj-ref| <= ATol + RTol*|ref|.
	RTol float64
	ATol float64
	// AllowIntFloat permits tolerance comparison between int and
	// float values.
	AllowIntFloat bool
	// EqualNaN treats two NaN values as equal.
	EqualNaN bool
	Hooks    []CompareHook
}

// DefaultCompareOptions mirror the numpy.isclose defaults.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{RTol: 1.0e-5, ATol: 1.0e-8}
}

// Compare recursively compares two nested maps, slices or scalars and
// returns a descriptive error on the first mismatch. Numerics are
// compared within tolerance, map key sets must match exactly, slices
// must match in length and element order.
func Compare(obj, ref any, opts CompareOptions) error {
	for _, hook := range opts.Hooks {
		handled, err := hook(obj, ref)
		if handled || err != nil {
			return err
		}
	}

	objNum, objIsNum := toFloat(obj)
	refNum, refIsNum := toFloat(ref)
	if objIsNum && refIsNum {
		if !opts.AllowIntFloat && isInt(obj) != isInt(ref) {
			return fmt.Errorf("value is of type %T, but the reference is of type %T", obj, ref)
		}
		if !isClose(objNum, refNum, opts) {
			return fmt.Errorf("the numerics are not close: %v and %v", obj, ref)
		}
		return nil
	}

	if objValue, ok := obj.(map[string]any); ok {
		refValue, ok := ref.(map[string]any)
		if !ok {
			return fmt.Errorf("value is of type %T, but the reference is of type %T", obj, ref)
		}
		if missing := keyDifference(objValue, refValue); len(missing) > 0 {
			return fmt.Errorf("the following keys could not be found in both maps: %v", missing)
		}
		for key, v := range objValue {
			if err := Compare(v, refValue[key], opts); err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
		}
		return nil
	}

	// Slices of any element type compare element-wise, so typed slices
	// like []string or []float64 line up with []any from a YAML decode.
	objRV := reflect.ValueOf(obj)
	refRV := reflect.ValueOf(ref)
	if objRV.IsValid() && (objRV.Kind() == reflect.Slice || objRV.Kind() == reflect.Array) {
		if !refRV.IsValid() || (refRV.Kind() != reflect.Slice && refRV.Kind() != reflect.Array) {
			return fmt.Errorf("value is of type %T, but the reference is of type %T", obj, ref)
		}
		if objRV.Len() != refRV.Len() {
			return fmt.Errorf("the list lengths differ (got %d and %d)", objRV.Len(), refRV.Len())
		}
		for i := 0; i < objRV.Len(); i++ {
			if err := Compare(objRV.Index(i).Interface(), refRV.Index(i).Interface(), opts); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		return nil
	}

	if objRV.IsValid() && !objRV.Type().Comparable() {
		return fmt.Errorf("cannot compare values of type %T", obj)
	}
	if obj != ref {
		return fmt.Errorf("the values are not equal: %v and %v", obj, ref)
	}
	return nil
}

func isClose(a, b float64, opts CompareOptions) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return opts.EqualNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= opts.ATol+opts.RTol*math.Abs(b)
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case float64:
		return value, true
	case float32:
		return float64(value), true
	default:
		return 0, false
	}
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int64:
		return true
	default:
		return false
	}
}

func keyDifference(a, b map[string]any) []string {
	var missing []string
	for key := range a {
		if _, ok := b[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range b {
		if _, ok := a[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
