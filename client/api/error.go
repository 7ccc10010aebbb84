package api

import (
	"encoding/json"
	"fmt"
)

const unknownErrorDetail = "Erro desconhecido"

// Error is a non-2xx API response.
type Error struct {
	Method     string
	Endpoint   string
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error [%s %s]: %s", e.Method, e.Endpoint, e.Detail)
}

// detail extracts the FastAPI style {"detail": ...} message.
func detail(statusCode int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return unknownErrorDetail
	}
	if len(payload.Detail) == 0 || string(payload.Detail) == "null" {
		return fmt.Sprintf("HTTP %d", statusCode)
	}
	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		if text == "" {
			return fmt.Sprintf("HTTP %d", statusCode)
		}
		return text
	}
	return string(payload.Detail)
}
