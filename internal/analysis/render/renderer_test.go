package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

func TestRender_SuccessIsPrettyPrintedVerbatim(t *testing.T) {
	raw := []byte(`{"foo":"bar"}`)

	var want bytes.Buffer
	require.NoError(t, json.Indent(&want, raw, "", "  "))

	r := Render(domain.Succeeded(raw))
	assert.Equal(t, KindOutput, r.Kind)
	assert.Equal(t, want.String(), r.Text)
	assert.Equal(t, "{\n  \"foo\": \"bar\"\n}", r.Text)
}

func TestRender_SuccessKeepsKeyOrderAndValues(t *testing.T) {
	raw := []byte(`{"title":"Report","outline":[{"level":"H1","text":"Intro","page":1}]}`)
	r := Render(domain.Succeeded(raw))

	var compact bytes.Buffer
	require.NoError(t, json.Compact(&compact, []byte(r.Text)))
	assert.Equal(t, string(raw), compact.String())
}

func TestRender_Failure(t *testing.T) {
	r := Render(domain.Failed("bad file"))
	assert.Equal(t, KindError, r.Kind)
	assert.Equal(t, "bad file", r.Text)

	r = Render(domain.Failed("line one\nline two"))
	assert.Equal(t, "line one line two", r.Text)

	r = Render(domain.Failed("line one\r\nline two\r"))
	assert.Equal(t, "line one line two ", r.Text)
}

func TestRender_FailureKeepsInnerWhitespace(t *testing.T) {
	msg := "Field  'persona'\t is required"
	assert.Equal(t, msg, Render(domain.Failed(msg)).Text)

	padded := "  leading and trailing  "
	assert.Equal(t, padded, Render(domain.Failed(padded)).Text)
}

func TestRender_Rejected(t *testing.T) {
	r := Render(domain.Rejected(domain.ErrNoFilesSelected))
	assert.Equal(t, KindError, r.Kind)
	assert.Equal(t, domain.ErrNoFilesSelected.Message, r.Text)

	r = Render(domain.Rejected(domain.ErrMissingPersonaFields))
	assert.Equal(t, domain.ErrMissingPersonaFields.Message, r.Text)
}

func TestRender_IdleAndInFlight(t *testing.T) {
	assert.Equal(t, Rendering{Kind: KindNone}, Render(domain.Idle()))
	assert.Equal(t, Rendering{Kind: KindPending}, Render(domain.InFlight()))
}

func TestPrettyJSON_InvalidInputUnchanged(t *testing.T) {
	assert.Equal(t, "not json", PrettyJSON([]byte("not json")))
}

func TestFileLabel(t *testing.T) {
	assert.Equal(t, "No files selected", FileLabel(0))
	assert.Equal(t, "1 file selected", FileLabel(1))
	assert.Equal(t, "3 files selected", FileLabel(3))
}

func TestWriteTerminal(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, WriteTerminal(&buf, domain.Failed("bad file")))
	assert.Equal(t, "Error: bad file\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTerminal(&buf, domain.Succeeded([]byte(`{"a":1}`))))
	assert.Equal(t, "Analysis complete\n{\n  \"a\": 1\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTerminal(&buf, domain.Rejected(domain.ErrNoFilesSelected)))
	assert.Equal(t, "Cannot submit: "+domain.ErrNoFilesSelected.Message+"\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTerminal(&buf, domain.Idle()))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteTerminal_ReportsWriteError(t *testing.T) {
	color.NoColor = true
	assert.Error(t, WriteTerminal(failingWriter{}, domain.Failed("bad file")))
	assert.Error(t, WriteTerminal(failingWriter{}, domain.Succeeded([]byte(`{}`))))
}
