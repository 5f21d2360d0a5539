// Package skill holds the output contract shared by the JSON skills:
// every invocation prints exactly one JSON value to stdout. Errors are
// an object with a single "error" key, mutations answer with a
// "message" key, and record queries print the records pretty-printed.
package skill

import "encoding/json"

// Error renders an error payload.
func Error(msg string) string {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}

// ErrorFrom renders an error payload from an error's message text.
func ErrorFrom(err error) string {
	return Error(err.Error())
}

// Message renders a success payload.
func Message(msg string) string {
	b, _ := json.Marshal(map[string]string{"message": msg})
	return string(b)
}

// Records renders a result document pretty-printed, matching the store
// files' own format.
func Records(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorFrom(err)
	}
	return string(b)
}
