package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

type Kind string

const (
	KindNone    Kind = "none"
	KindPending Kind = "pending"
	KindOutput  Kind = "output"
	KindError   Kind = "error"
)

// Rendering is the presentable form of a RequestState.
type Rendering struct {
	Kind Kind
	Text string
}

// Render presents the state. Success output is the pretty-printed result
// with no interpretation; failures and rejections become one line of text
// taken verbatim from the error.
func Render(state domain.RequestState) Rendering {
	switch state.Status {
	case domain.StatusSuccess:
		return Rendering{Kind: KindOutput, Text: PrettyJSON(state.Result)}
	case domain.StatusFailure:
		return Rendering{Kind: KindError, Text: singleLine(state.Message)}
	case domain.StatusRejected:
		msg := domain.FallbackErrorMessage
		if state.Validation != nil {
			msg = state.Validation.Message
		}
		return Rendering{Kind: KindError, Text: singleLine(msg)}
	case domain.StatusInFlight:
		return Rendering{Kind: KindPending}
	}
	return Rendering{Kind: KindNone}
}

// PrettyJSON indents raw with two spaces. Input that is not valid JSON is
// returned unchanged.
func PrettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// FileLabel is the selection summary shown next to the file picker.
func FileLabel(n int) string {
	switch n {
	case 0:
		return "No files selected"
	case 1:
		return "1 file selected"
	}
	return fmt.Sprintf("%d files selected", n)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// singleLine replaces line breaks with a space. Other whitespace is kept.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

var (
	successColor  = color.New(color.FgGreen, color.Bold)
	failureColor  = color.New(color.FgRed, color.Bold)
	rejectedColor = color.New(color.FgYellow, color.Bold)
)

// WriteTerminal prints the rendering of state to w with a coloured heading.
func WriteTerminal(w io.Writer, state domain.RequestState) error {
	r := Render(state)
	var err error
	switch state.Status {
	case domain.StatusSuccess:
		_, err = successColor.Fprintln(w, "Analysis complete")
	case domain.StatusFailure:
		_, err = failureColor.Fprint(w, "Error: ")
	case domain.StatusRejected:
		_, err = rejectedColor.Fprint(w, "Cannot submit: ")
	case domain.StatusInFlight:
		_, err = fmt.Fprintln(w, "Analyzing...")
		return err
	default:
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, r.Text)
	return err
}
