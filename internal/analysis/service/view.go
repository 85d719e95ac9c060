package service

import (
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/render"
)

// View is what the presentation layer shows for a FormState.
type View struct {
	Files             []string `json:"files"`
	FileLabel         string   `json:"file_label"`
	Mode              string   `json:"mode"`
	ShowPersonaFields bool     `json:"show_persona_fields"`
	Persona           string   `json:"persona"`
	JobTask           string   `json:"job_task"`
	SubmitEnabled     bool     `json:"submit_enabled"`
	Loading           bool     `json:"loading"`
	Status            string   `json:"status"`
	Output            string   `json:"output,omitempty"`
	Error             string   `json:"error,omitempty"`
}

// NewView derives the presentation of s.
func NewView(s FormState) View {
	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = f.Name()
	}

	v := View{
		Files:             names,
		FileLabel:         render.FileLabel(len(s.Files)),
		Mode:              s.Mode.String(),
		ShowPersonaFields: s.Mode == domain.ModePersona,
		Persona:           s.Persona.Persona,
		JobTask:           s.Persona.JobTask,
		SubmitEnabled:     !s.InFlight(),
		Loading:           s.InFlight(),
		Status:            string(s.Request.Status),
	}

	r := render.Render(s.Request)
	switch r.Kind {
	case render.KindOutput:
		v.Output = r.Text
	case render.KindError:
		v.Error = r.Text
	}
	return v
}

// View returns the presentation of the current state.
func (c *Controller) View() View {
	return NewView(c.State())
}
