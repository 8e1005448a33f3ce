// Package output implements the JSON envelope used by every command's
// --json mode, so machine consumers get a single stable shape.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Error codes for machine-readable output.
const (
	ErrNotFound   = "not_found"
	ErrValidation = "validation"
	ErrDatabase   = "database_error"
	ErrQuery      = "query_error"
	ErrFile       = "file_error"
)

// ErrSilent signals that the error has already been reported on stdout
// as a JSON envelope; Execute must not print it again.
var ErrSilent = errors.New("error already reported")

// Response is the envelope for all JSON output.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo carries a machine-readable error code plus a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes a response to stdout.
func JSON(resp Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// Success prints a successful response carrying a single object.
func Success(data interface{}, message string) error {
	return JSON(Response{Success: true, Data: data, Message: message})
}

// SuccessMultiple prints a successful response carrying a list.
func SuccessMultiple(data interface{}) error {
	return JSON(Response{Success: true, Data: data})
}

// SuccessMessage prints a message-only success response.
func SuccessMessage(message string) error {
	return JSON(Response{Success: true, Message: message})
}

// Error prints an error envelope and returns ErrSilent so the command
// exits non-zero without duplicating the message.
func Error(code, message string) error {
	if err := JSON(Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}); err != nil {
		return err
	}
	return ErrSilent
}
