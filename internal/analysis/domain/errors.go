package domain

import (
	"errors"
	"fmt"
)

// FallbackErrorMessage is shown whenever the service gives no usable reason.
const FallbackErrorMessage = "An unexpected error occurred."

var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrUnknownMode    = errors.New("unknown service mode")
)

type ValidationCode string

const (
	CodeNoFilesSelected      ValidationCode = "no_files_selected"
	CodeMissingPersonaFields ValidationCode = "missing_persona_fields"
)

// ValidationError is raised locally, before any network activity.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoFilesSelected = &ValidationError{
		Code:    CodeNoFilesSelected,
		Message: "Please select at least one PDF file.",
	}
	ErrMissingPersonaFields = &ValidationError{
		Code:    CodeMissingPersonaFields,
		Message: "Persona and Job Task are required for this service.",
	}
)

type DispatchErrorKind string

const (
	// KindTransport covers network faults and unparsable responses.
	KindTransport DispatchErrorKind = "transport"
	// KindService is a non-2xx response.
	KindService DispatchErrorKind = "service"
)

// DispatchError is a normalised dispatch failure. Message is always the text
// to display.
type DispatchError struct {
	Kind    DispatchErrorKind
	Message string
	Status  int
	Cause   error
}

func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

func TransportError(cause error) *DispatchError {
	return &DispatchError{Kind: KindTransport, Message: FallbackErrorMessage, Cause: cause}
}

// ServiceError keeps message when the service supplied one, otherwise falls
// back to FallbackErrorMessage.
func ServiceError(status int, message string) *DispatchError {
	if message == "" {
		message = FallbackErrorMessage
	}
	return &DispatchError{Kind: KindService, Message: message, Status: status}
}

// DisplayMessage extracts the user-facing text from a dispatch error.
func DisplayMessage(err error) string {
	var de *DispatchError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return FallbackErrorMessage
}
