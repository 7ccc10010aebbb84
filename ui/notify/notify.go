// Package notify classifies API responses into toast notifications.
package notify

import (
	"encoding/json"
	"fmt"
)

// Toast types.
const (
	Success = "success"
	Error   = "error"
	Warning = "warning"
	Info    = "info"
)

const defaultMessage = "Operação concluída"

// Style is the presentation of a toast type.
type Style struct {
	Icon       string
	Background string
	Color      string
}

var styles = map[string]Style{
	Success: {Icon: "bi-check-circle-fill", Background: "#d4edda", Color: "#155724"},
	Error:   {Icon: "bi-exclamation-circle-fill", Background: "#f8d7da", Color: "#721c24"},
	Warning: {Icon: "bi-exclamation-triangle-fill", Background: "#fff3cd", Color: "#856404"},
	Info:    {Icon: "bi-info-circle-fill", Background: "#d1ecf1", Color: "#0c5460"},
}

// StyleOf returns the style of kind, falling back to info.
func StyleOf(kind string) Style {
	if style, ok := styles[kind]; ok {
		return style
	}
	return styles[Info]
}

type Toast struct {
	Message string
	Type    string
	Style
}

// New builds a toast of kind.
func New(message, kind string) *Toast {
	if _, ok := styles[kind]; !ok {
		kind = Info
	}
	return &Toast{Message: message, Type: kind, Style: StyleOf(kind)}
}

// FromResponse classifies a response: a JSON string is decoded first, plain
// strings become info toasts. Objects use message, then detail, and their
// success flag decides between success, error and info.
func FromResponse(response any) *Toast {
	switch actual := response.(type) {
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(actual), &decoded); err != nil {
			return New(actual, Info)
		}
		if _, ok := decoded.(map[string]any); !ok {
			return New(actual, Info)
		}
		return FromResponse(decoded)
	case []byte:
		return FromResponse(string(actual))
	case map[string]any:
		message := defaultMessage
		if text, ok := actual["message"].(string); ok && text != "" {
			message = text
		} else if text, ok := actual["detail"].(string); ok && text != "" {
			message = text
		}
		kind := Info
		if success, ok := actual["success"].(bool); ok {
			kind = Error
			if success {
				kind = Success
			}
		}
		return New(message, kind)
	case nil:
		return New(defaultMessage, Info)
	}
	return New(fmt.Sprint(response), Info)
}
