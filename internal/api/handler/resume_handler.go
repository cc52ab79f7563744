package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/api/metrics"
	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// maxUploadBytes bounds the size of one uploaded resume document.
const maxUploadBytes = 10 << 20

// ResumeHandler accepts resume uploads and returns the extracted text.
type ResumeHandler struct {
	ingestionService ports.IngestionService
}

func NewResumeHandler(ingestionService ports.IngestionService) *ResumeHandler {
	return &ResumeHandler{ingestionService: ingestionService}
}

// Extract converts an uploaded document into plain text.
//
// @Summary      Extract text from a resume document
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume document (PDF, image, or plain text)"
// @Success      200   {object}  extractResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      415   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /resume/extract [post]
func (h *ResumeHandler) Extract(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		metrics.IngestionErrorsTotal.WithLabelValues("other").Inc()
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	if len(data) > maxUploadBytes {
		metrics.IngestionErrorsTotal.WithLabelValues("other").Inc()
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the 10MB limit")
	}

	mediaType := fileHeader.Header.Get("Content-Type")
	text, err := h.ingestionService.Extract(c.Request().Context(), mediaType, data)
	if err != nil {
		metrics.IngestionErrorsTotal.WithLabelValues(ingestionErrorReason(err)).Inc()
		return err
	}

	if kind, kindErr := domain.DetectKind(mediaType); kindErr == nil {
		metrics.IngestionsTotal.WithLabelValues(string(kind)).Inc()
	}
	return c.JSON(http.StatusOK, extractResponse{Text: text})
}

func ingestionErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, domain.ErrPDFParse):
		return "pdf_parse"
	case errors.Is(err, domain.ErrOCR):
		return "ocr"
	default:
		return "other"
	}
}
