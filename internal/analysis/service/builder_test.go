package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

func pdf(name string) domain.FileHandle {
	return domain.MemoryFile{Filename: name, Data: []byte("%PDF-1.7 " + name)}
}

func TestBuild_NoFilesSelected(t *testing.T) {
	for _, mode := range []domain.ServiceMode{domain.ModeStructure, domain.ModePersona} {
		s := NewFormState()
		s = Reduce(s, ModeChanged{Mode: mode})
		s = Reduce(s, PersonaEdited{Persona: "Analyst"})
		s = Reduce(s, JobTaskEdited{JobTask: "Summarise"})

		_, err := Build(s)
		require.NotNil(t, err, "mode %s", mode)
		assert.ErrorIs(t, err, domain.ErrNoFilesSelected)
	}
}

func TestBuild_MissingPersonaFields(t *testing.T) {
	cases := []struct {
		name    string
		persona string
		jobTask string
	}{
		{"both empty", "", ""},
		{"persona empty", "", "Find revenue data"},
		{"job task empty", "Financial Analyst", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewFormState()
			s = Reduce(s, FilesSelected{Files: []domain.FileHandle{pdf("c.pdf")}})
			s = Reduce(s, ModeChanged{Mode: domain.ModePersona})
			s = Reduce(s, PersonaEdited{Persona: tc.persona})
			s = Reduce(s, JobTaskEdited{JobTask: tc.jobTask})

			_, err := Build(s)
			require.NotNil(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingPersonaFields)
		})
	}
}

func TestBuild_StructureIgnoresPersonaFields(t *testing.T) {
	s := NewFormState()
	s = Reduce(s, FilesSelected{Files: []domain.FileHandle{pdf("a.pdf")}})
	s = Reduce(s, PersonaEdited{Persona: "Financial Analyst"})

	payload, err := Build(s)
	require.Nil(t, err)
	assert.Equal(t, domain.ModeStructure, payload.Service)
	assert.Nil(t, payload.Persona)
}

func TestBuild_StructureKeepsFileOrder(t *testing.T) {
	s := NewFormState()
	s = Reduce(s, FilesSelected{Files: []domain.FileHandle{pdf("a.pdf"), pdf("b.pdf")}})
	s = Reduce(s, ModeChanged{Mode: domain.ModeStructure})

	payload, err := Build(s)
	require.Nil(t, err)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, payload.FileNames())
	assert.Equal(t, domain.ModeStructure, payload.Service)
	assert.Nil(t, payload.Persona)
}

func TestBuild_PersonaCarriesFields(t *testing.T) {
	s := NewFormState()
	s = Reduce(s, ModeChanged{Mode: domain.ModePersona})
	s = Reduce(s, PersonaEdited{Persona: "Financial Analyst"})
	s = Reduce(s, JobTaskEdited{JobTask: "Find revenue data"})
	s = Reduce(s, FilesSelected{Files: []domain.FileHandle{pdf("c.pdf")}})

	payload, err := Build(s)
	require.Nil(t, err)
	assert.Equal(t, []string{"c.pdf"}, payload.FileNames())
	assert.Equal(t, domain.ModePersona, payload.Service)
	require.NotNil(t, payload.Persona)
	assert.Equal(t, "Financial Analyst", payload.Persona.Persona)
	assert.Equal(t, "Find revenue data", payload.Persona.JobTask)
}

func TestBuild_IsPureAndDeterministic(t *testing.T) {
	s := NewFormState()
	s = Reduce(s, FilesSelected{Files: []domain.FileHandle{pdf("a.pdf"), pdf("b.pdf")}})
	before := s

	p1, err1 := Build(s)
	p2, err2 := Build(s)
	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, before, s)

	// The payload does not alias the form's file slice.
	p1.Files[0] = pdf("z.pdf")
	assert.Equal(t, "a.pdf", s.Files[0].Name())
}
