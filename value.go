package sandbox

import "github.com/ohler55/ojg/oj"

// Value is the JSON-compatible exchange representation between host and
// script: nil, bool, number, string, []any and map[string]any, nested
// arbitrarily.
type Value = any

// Encode converts a host value into its Value representation. Any value whose
// structure is representable as JSON encodes losslessly; anything else
// returns an EncodeError.
func Encode(v any) (Value, error) {
	if v == nil {
		return nil, nil
	}
	data, err := oj.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	ret, err := oj.Parse(data)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return ret, nil
}

// Decode converts a Value into the host value pointed to by out. A nil out
// discards the value, for functions with no meaningful return. Decoding fails
// with a DecodeError when the value's shape does not match the target type.
func Decode(v Value, out any) error {
	if out == nil {
		return nil
	}
	data, err := oj.Marshal(v)
	if err != nil {
		return &DecodeError{Err: err}
	}
	if err = oj.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
