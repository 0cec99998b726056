// Package iojson reads and writes JSON for command line output: indented
// documents, one-object-per-line streams, and structured errors.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an Error. When data cannot be
// marshaled a hand-built object carrying the marshal failure is returned
// instead, so the caller always gets valid JSON.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.Marshal(Error{Message: msg, Data: data})
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes msg as a single-line Error to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteLine writes v as one compact JSON line.
func WriteLine(w io.Writer, v any) error {
	bits, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteWith writes v as indented JSON to w. Marshal failures are reported to
// ew as an Error.
func WriteWith(w io.Writer, ew io.Writer, v any) error {
	bits, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.WriteWith", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
