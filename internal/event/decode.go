package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload to T.
// In-process publishers hand over the struct (or a pointer to it) directly;
// anything else, such as a map from a decoded message, goes through a JSON round-trip.
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
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFmt, result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFmt, result, err)
	}
	return result, nil
}
