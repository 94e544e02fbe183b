package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T.
// MemoryBus delivers the published struct (or a pointer to it) unchanged; anything else,
// such as a map from a JSON-decoded event, is converted with a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return result, fmt.Errorf("decode %T payload: nil pointer", result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("decode %T payload: %w", result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode %T payload: %w", result, err)
	}
	return result, nil
}
