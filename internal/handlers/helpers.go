package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps the size of a submission body.
const maxBodyBytes = 1 << 20

var errBodyRequired = errors.New("JSON object body required")

// decodeJSONObject decodes the request body into v.
// The body must be a JSON object; an empty body, malformed JSON, null, or
// any other JSON value is rejected with errBodyRequired.
func decodeJSONObject(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(data) > maxBodyBytes {
		return errBodyRequired
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return errBodyRequired
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errBodyRequired
	}
	return nil
}
