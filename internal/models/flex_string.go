package models

import (
	"encoding/json"
	"fmt"
)

// FlexString is an identifier the backend sends either as a JSON string or
// as a number. Numbers keep their literal text; null is empty.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", b)
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string { return string(s) }
