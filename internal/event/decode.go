package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of e as T. In-process events already carry
// the typed struct; events read back from a dead-letter file carry a map and
// are converted through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return out, fmt.Errorf("nil %T payload", v)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode payload: %w", err)
	}
	return out, nil
}
