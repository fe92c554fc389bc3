package controllers

import (
	"encoding/json"
	"math"
	"strconv"
)

// Clients of the historical API send numbers and booleans both as JSON
// scalars and as strings ("70", "true"). These types accept either form so
// binding stays deterministic at the boundary.

// looseFloat decodes a JSON number or a numeric string. Anything else
// becomes NaN, which downstream validation rejects.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*f = looseFloat(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*f = looseFloat(math.NaN())
			return nil
		}
		*f = looseFloat(parsed)
	default:
		*f = looseFloat(math.NaN())
	}
	return nil
}

// looseBool decodes a JSON bool or the string "true"; everything else is
// false.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = looseBool(v)
	case string:
		*b = looseBool(v == "true")
	default:
		*b = false
	}
	return nil
}

// parseQueryFloat maps a missing or malformed query parameter to NaN so the
// calculator's validation produces the 400, not the parser.
func parseQueryFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
