package service

import "github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"

// FormState is the full record of the form inputs and the request lifecycle.
// It is only changed through Reduce.
type FormState struct {
	Files   []domain.FileHandle
	Mode    domain.ServiceMode
	Persona domain.PersonaParams
	Request domain.RequestState
}

// NewFormState returns the initial state: no files, structure mode, idle.
func NewFormState() FormState {
	return FormState{
		Mode:    domain.ModeStructure,
		Request: domain.Idle(),
	}
}

// Event is a single input to Reduce.
type Event interface {
	isEvent()
}

type (
	FilesSelected  struct{ Files []domain.FileHandle }
	ModeChanged    struct{ Mode domain.ServiceMode }
	PersonaEdited  struct{ Persona string }
	JobTaskEdited  struct{ JobTask string }
	SubmitStarted  struct{}
	SubmitRejected struct{ Err *domain.ValidationError }
	DispatchBegan  struct{}
	DispatchDone   struct{ Result domain.AnalysisResult }
	DispatchFailed struct{ Message string }
)

func (FilesSelected) isEvent()  {}
func (ModeChanged) isEvent()    {}
func (PersonaEdited) isEvent()  {}
func (JobTaskEdited) isEvent()  {}
func (SubmitStarted) isEvent()  {}
func (SubmitRejected) isEvent() {}
func (DispatchBegan) isEvent()  {}
func (DispatchDone) isEvent()   {}
func (DispatchFailed) isEvent() {}

// Reduce applies e to s and returns the next state. s is not modified.
func Reduce(s FormState, e Event) FormState {
	switch ev := e.(type) {
	case FilesSelected:
		s.Files = append([]domain.FileHandle(nil), ev.Files...)
	case ModeChanged:
		s.Mode = ev.Mode
	case PersonaEdited:
		s.Persona.Persona = ev.Persona
	case JobTaskEdited:
		s.Persona.JobTask = ev.JobTask
	case SubmitStarted:
		s.Request = domain.Idle()
	case SubmitRejected:
		s.Request = domain.Rejected(ev.Err)
	case DispatchBegan:
		s.Request = domain.InFlight()
	case DispatchDone:
		s.Request = domain.Succeeded(ev.Result)
	case DispatchFailed:
		s.Request = domain.Failed(ev.Message)
	}
	return s
}

// InFlight reports whether a dispatch is pending.
func (s FormState) InFlight() bool {
	return s.Request.Status == domain.StatusInFlight
}
