package value

import (
	"fmt"
	"sort"
	"time"
)

// FromAny converts the generic tree produced by the TOML decoder into a
// Value. The decoder yields string, int64, float64, bool, time.Time,
// []any, map[string]any, and []map[string]any (arrays of tables); any
// other type is a decoder contract violation and reported as an error.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil

	case int64:
		return Integer(v), nil

	case float64:
		return Float(v), nil

	case bool:
		return Boolean(v), nil

	case time.Time:
		return Datetime(v), nil

	case []any:
		arr := make(Array, 0, len(v))

		for i, elem := range v {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}

			arr = append(arr, converted)
		}

		return arr, nil

	case []map[string]any:
		// Array of tables comes out of the decoder as its own slice type.
		arr := make(Array, 0, len(v))

		for i, elem := range v {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}

			arr = append(arr, converted)
		}

		return arr, nil

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		table := make(Table, 0, len(keys))

		for _, k := range keys {
			converted, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}

			table = append(table, Entry{Key: k, Value: converted})
		}

		return table, nil

	default:
		return nil, fmt.Errorf("unsupported decoded type %T", raw)
	}
}
