package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Truthy decodes the "completed" flag, which older clients send as the
// string "Yes" rather than a boolean.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*t = false
	case bool:
		*t = Truthy(value)
	case float64:
		*t = value != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "yes", "true", "1":
			*t = true
		default:
			*t = false
		}
	default:
		return fmt.Errorf("completed: unsupported value %s", string(data))
	}
	return nil
}
