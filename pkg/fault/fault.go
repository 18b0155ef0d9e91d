package fault

import (
	"encoding/json"

	"github.com/bft-labs/domainkit/pkg/value"
)

// Error is an immutable domain error value. Equality considers the code
// alone; the message is display metadata.
type Error struct {
	code    string
	message string
}

var (
	_ error        = Error{}
	_ value.Object = Error{}
)

// New returns an error value with the given code and message.
func New(code, message string) Error {
	return Error{code: code, message: message}
}

// Code returns the machine-readable code.
func (e Error) Code() string { return e.code }

// Message returns the human-readable message.
func (e Error) Message() string { return e.message }

// Error renders the canonical "{code}: {message}" form.
func (e Error) Error() string { return e.code + ": " + e.message }

// Is reports code equality, so errors.Is treats two faults with one code
// as the same condition regardless of message.
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other.code == e.code
}

// LogicalType marks every Error as one logical domain type.
func (Error) LogicalType() value.Type { return "fault.Error" }

// EqualityComponents returns the code; equality ignores the message.
func (e Error) EqualityComponents() []any { return []any{e.code} }

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON encodes the fault as {"code":C,"message":M}.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{Code: e.code, Message: e.message})
}

// UnmarshalJSON decodes a code and message pair.
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw errorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.code = raw.Code
	e.message = raw.Message
	return nil
}
