package service

import "github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"

// Build validates s and assembles the request payload. It performs no I/O
// and does not modify s.
func Build(s FormState) (domain.Payload, *domain.ValidationError) {
	if len(s.Files) == 0 {
		return domain.Payload{}, domain.ErrNoFilesSelected
	}

	payload := domain.Payload{
		Files:   append([]domain.FileHandle(nil), s.Files...),
		Service: s.Mode,
	}

	if s.Mode == domain.ModePersona {
		if !s.Persona.Complete() {
			return domain.Payload{}, domain.ErrMissingPersonaFields
		}
		p := s.Persona
		payload.Persona = &p
	}

	return payload, nil
}
