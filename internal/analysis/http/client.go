package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

// Multipart field names understood by the analysis service.
const (
	FieldFiles   = "files"
	FieldService = "service"
	FieldPersona = "persona"
	FieldJobTask = "jobTask"
)

// AnalysisClient sends analysis requests to the document-analysis service.
type AnalysisClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewAnalysisClient creates a client posting to endpoint. A zero timeout
// leaves requests unbounded.
func NewAnalysisClient(endpoint string, timeout time.Duration) *AnalysisClient {
	return &AnalysisClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the URL requests are posted to.
func (c *AnalysisClient) Endpoint() string {
	return c.endpoint
}

// Send posts payload as one multipart request and normalises the outcome.
// Any 2xx response with a JSON body is returned untouched; every failure is
// a *domain.DispatchError.
func (c *AnalysisClient) Send(ctx context.Context, payload domain.Payload) (domain.AnalysisResult, error) {
	logger := logging.FromContext(ctx)
	reqID := logging.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	start := time.Now()

	body, contentType, err := EncodePayload(payload)
	if err != nil {
		logger.LogError("analysis.encode", err)
		return nil, domain.TransportError(fmt.Errorf("encode payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.LogError("analysis.build_request", err)
		return nil, domain.TransportError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	logger.LogInfof("analysis.request", "url=%s service=%s files=%d bytes=%d",
		c.endpoint, payload.Service, len(payload.Files), len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError("analysis.send", err)
		return nil, domain.TransportError(fmt.Errorf("analysis request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.LogError("analysis.read", err)
		return nil, domain.TransportError(fmt.Errorf("read response: %w", err))
	}

	logger.LogInfof("analysis.response", "status=%d bytes=%d elapsed_ms=%d",
		resp.StatusCode, len(raw), time.Since(start).Milliseconds())

	return normaliseResponse(resp.StatusCode, raw)
}

func normaliseResponse(status int, raw []byte) (domain.AnalysisResult, error) {
	if status/100 != 2 {
		return nil, domain.ServiceError(status, errorField(raw))
	}
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, domain.TransportError(fmt.Errorf("unparsable response body (%d bytes)", len(raw)))
	}
	return domain.AnalysisResult(trimmed), nil
}

// errorField returns the string value of a top-level "error" field, or ""
// when the body is not such an object.
func errorField(raw []byte) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Error) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(body.Error, &msg); err != nil {
		return ""
	}
	return msg
}

// EncodePayload writes payload as a multipart form: one "files" part per
// file in order, then "service" and, in persona mode, "persona" and
// "jobTask".
func EncodePayload(payload domain.Payload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range payload.Files {
		if err := writeFilePart(w, f); err != nil {
			return nil, "", err
		}
	}

	if err := w.WriteField(FieldService, payload.Service.String()); err != nil {
		return nil, "", err
	}
	if payload.Persona != nil {
		if err := w.WriteField(FieldPersona, payload.Persona.Persona); err != nil {
			return nil, "", err
		}
		if err := w.WriteField(FieldJobTask, payload.Persona.JobTask); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, f domain.FileHandle) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.Name(), err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFiles, quoteEscaper.Replace(f.Name())))
	h.Set("Content-Type", mimetype.Detect(data).String())

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}
