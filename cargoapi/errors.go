package cargoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ServerError is a non-2xx response from the cargo server. Its message is
// whatever the server put in the body, so callers can show it as-is.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// newServerError extracts a human message from a rejection body. The
// server is not consistent: sometimes a JSON object with a message or
// error field, sometimes plain text, sometimes nothing.
func newServerError(status int, body []byte) *ServerError {
	text := strings.TrimSpace(string(body))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			text = payload.Message
		} else if payload.Error != "" {
			text = payload.Error
		}
	}
	if text == "" {
		text = fmt.Sprintf("cargo server returned %d %s", status, http.StatusText(status))
	}
	return &ServerError{Status: status, Message: text}
}
