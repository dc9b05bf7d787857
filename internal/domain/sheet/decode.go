package sheet

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeRows maps header-keyed records onto a fixed row type. Unknown columns
// are ignored and missing columns stay empty.
func DecodeRows[T any](records []map[string]string) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, record := range records {
		var row T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &row,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("build row decoder: %w", err)
		}
		if err := decoder.Decode(record); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i+1, err)
		}
		out = append(out, row)
	}

	return out, nil
}
