package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/service"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

// Handler exposes one analysis controller to a browser front-end.
type Handler struct {
	controller     *service.Controller
	maxUploadBytes int64
}

// New creates a Handler. maxUploadMB caps the size of a file-selection
// request body; larger uploads are refused with 413.
func New(controller *service.Controller, maxUploadMB int) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 64
	}
	return &Handler{
		controller:     controller,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// GetForm returns the current view.
func (h *Handler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.View())
}

// SelectFiles replaces the selection with the "files" parts of the form.
// A form without file parts clears the selection.
func (h *Handler) SelectFiles(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		h.uploadTooLarge(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.uploadTooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	var files []domain.FileHandle
	if form := c.Request.MultipartForm; form != nil {
		for _, fh := range form.File[FieldFiles] {
			f, err := domain.FromFileHeader(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + fh.Filename})
				return
			}
			files = append(files, f)
		}
	}

	h.controller.SetFiles(files)
	logging.FromContext(c.Request.Context()).LogInfof("select_files", "selected %d files", len(files))
	c.JSON(http.StatusOK, h.controller.View())
}

func (h *Handler) uploadTooLarge(c *gin.Context) {
	logging.FromContext(c.Request.Context()).LogWarnf("select_files", "upload refused: content_length=%d", c.Request.ContentLength)
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{
		"error": fmt.Sprintf("upload exceeds %d MB", h.maxUploadBytes>>20),
	})
}

// SetMode switches between structure and persona mode.
func (h *Handler) SetMode(c *gin.Context) {
	var body setModeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	mode, err := domain.ParseServiceMode(body.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.controller.SetMode(mode)
	c.JSON(http.StatusOK, h.controller.View())
}

// UpdatePersona edits the persona fields that are present in the body.
func (h *Handler) UpdatePersona(c *gin.Context) {
	var body updatePersonaRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if body.Persona != nil {
		h.controller.SetPersona(*body.Persona)
	}
	if body.JobTask != nil {
		h.controller.SetJobTask(*body.JobTask)
	}
	c.JSON(http.StatusOK, h.controller.View())
}

// Submit starts a submission. The dispatch outlives the HTTP request unless
// wait=true is given, in which case the handler responds with the outcome.
func (h *Handler) Submit(c *gin.Context) {
	ctx := logging.WithRequestID(context.Background(), logging.RequestID(c.Request.Context()))
	wait := c.Query("wait") == "true"
	if wait {
		ctx = c.Request.Context()
	}

	st, done, err := h.controller.SubmitAsync(ctx)
	if errors.Is(err, domain.ErrSubmitInFlight) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "form": h.controller.View()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if st.Status == domain.StatusRejected {
		c.JSON(http.StatusUnprocessableEntity, h.controller.View())
		return
	}

	if wait {
		final := <-done
		c.JSON(http.StatusOK, service.NewView(withRequest(h.controller.State(), final)))
		return
	}
	c.JSON(http.StatusAccepted, h.controller.View())
}

// Metrics reports submission counters.
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.Metrics())
}

// withRequest pins the request outcome of s to st, so a wait=true response
// reports the outcome of its own submission.
func withRequest(s service.FormState, st domain.RequestState) service.FormState {
	s.Request = st
	return s
}
