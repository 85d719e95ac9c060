package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceMode selects which backend pipeline processes the uploaded documents.
type ServiceMode string

const (
	ModeStructure ServiceMode = "structure"
	ModePersona   ServiceMode = "persona"
)

// ParseServiceMode accepts the wire label of a mode, case-insensitively.
func ParseServiceMode(s string) (ServiceMode, error) {
	switch ServiceMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStructure:
		return ModeStructure, nil
	case ModePersona:
		return ModePersona, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m ServiceMode) String() string { return string(m) }

// PersonaParams are only required in persona mode, but are kept across mode
// switches.
type PersonaParams struct {
	Persona string `json:"persona"`
	JobTask string `json:"jobTask"`
}

// Complete reports whether both fields are non-empty.
func (p PersonaParams) Complete() bool {
	return p.Persona != "" && p.JobTask != ""
}

// Payload is the assembled request for one submission.
type Payload struct {
	Files   []FileHandle
	Service ServiceMode
	// Persona is nil unless Service is ModePersona.
	Persona *PersonaParams
}

// FileNames lists the payload files in order.
func (p Payload) FileNames() []string {
	names := make([]string, len(p.Files))
	for i, f := range p.Files {
		names[i] = f.Name()
	}
	return names
}

// AnalysisResult is the opaque JSON document returned by the service.
type AnalysisResult = json.RawMessage

// RequestStatus is the lifecycle position of the current submission.
type RequestStatus string

const (
	StatusIdle     RequestStatus = "idle"
	StatusRejected RequestStatus = "rejected"
	StatusInFlight RequestStatus = "in_flight"
	StatusSuccess  RequestStatus = "success"
	StatusFailure  RequestStatus = "failure"
)

// RequestState is a tagged union over RequestStatus; only the field matching
// Status is populated.
type RequestState struct {
	Status     RequestStatus
	Validation *ValidationError
	Result     AnalysisResult
	Message    string
}

func Idle() RequestState     { return RequestState{Status: StatusIdle} }
func InFlight() RequestState { return RequestState{Status: StatusInFlight} }

func Rejected(err *ValidationError) RequestState {
	return RequestState{Status: StatusRejected, Validation: err}
}

func Succeeded(result AnalysisResult) RequestState {
	return RequestState{Status: StatusSuccess, Result: result}
}

func Failed(message string) RequestState {
	return RequestState{Status: StatusFailure, Message: message}
}
