package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events carry T (or *T)
// directly; anything else, such as a map read back from the dead-letter
// log, is converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	if input == nil {
		return result, fmt.Errorf("nil payload for %T", result)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
