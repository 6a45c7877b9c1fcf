package vector

import (
	"bytes"
	"encoding/base64"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/vectree/errs"
)

// EncodeToString returns the packed form of v in standard Base64, the text
// form used when a vector travels as a JSON string scalar.
func EncodeToString(v []float32) string {
	enc := NewEncoder(wireOrder)
	defer enc.Finish()

	enc.WriteSlice(v)

	return base64.StdEncoding.EncodeToString(enc.Bytes())
}

// DecodeString reverses EncodeToString. Invalid Base64 and bad payload
// lengths both fail with an error wrapping errs.ErrFormat.
func DecodeString(s string) ([]float32, error) {
	packed, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 vector: %w", errs.ErrFormat, err)
	}

	return Unpack(packed)
}

// Float32s is a float32 vector that marshals to JSON as a Base64 string of
// its packed form.
//
// Unmarshaling accepts that string form, a plain JSON array of numbers, or
// null (which yields a nil vector).
type Float32s []float32

// MarshalJSON implements json.Marshaler.
func (v Float32s) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	return gojson.Marshal(EncodeToString(v))
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Float32s) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*v = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := gojson.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode vector string: %w", err)
		}
		out, err := DecodeString(s)
		if err != nil {
			return err
		}
		*v = out

		return nil
	case len(data) > 0 && data[0] == '[':
		var out []float32
		if err := gojson.Unmarshal(data, &out); err != nil {
			return fmt.Errorf("decode vector array: %w", err)
		}
		if out == nil {
			out = []float32{}
		}
		*v = out

		return nil
	default:
		return errs.NewParseError("vector must be a base64 string or an array of numbers", string(firstByte(data)), -1, nil)
	}
}

func firstByte(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	return data[:1]
}
