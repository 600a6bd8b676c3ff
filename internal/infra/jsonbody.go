package infra

import (
	"encoding/json"
	"math"

	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/bitly/go-simplejson"
)

func newAPIError(endpoint string, status int, raw []byte) *models.APIError {
	e := &models.APIError{Endpoint: endpoint, StatusCode: status}

	js, err := simplejson.NewJson(raw)
	if err != nil {
		return e
	}

	e.BodyParsed = true
	e.Detail = stringField(js, "detail")
	e.Message = stringField(js, "message")
	return e
}

// stringField is "" when the key is missing or not a string.
func stringField(js *simplejson.Json, key string) string {
	v, ok := js.CheckGet(key)
	if !ok {
		return ""
	}
	s, err := v.String()
	if err != nil {
		return ""
	}
	return s
}

// truthy follows JavaScript's boolean coercion for decoded JSON values.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
