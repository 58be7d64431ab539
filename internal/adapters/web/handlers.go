package web

import (
	"context"
	"errors"
	"io"
	"time"

	"chatscope/internal/domain"
	"chatscope/internal/usecases"
	"chatscope/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// analyzeTimeout bounds one parse-and-analyze run.
const analyzeTimeout = 30 * time.Second

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	upload      *usecases.UploadFileUseCase
	list        *usecases.ListFilesUseCase
	getFile     *usecases.GetFileUseCase
	deleteFile  *usecases.DeleteFileUseCase
	getAnalysis *usecases.GetAnalysisUseCase
	analyze     *usecases.AnalyzeTranscriptUseCase
	rateLimiter *RateLimiter
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	upload *usecases.UploadFileUseCase,
	list *usecases.ListFilesUseCase,
	getFile *usecases.GetFileUseCase,
	deleteFile *usecases.DeleteFileUseCase,
	getAnalysis *usecases.GetAnalysisUseCase,
	analyze *usecases.AnalyzeTranscriptUseCase,
	rateLimiter *RateLimiter,
) *Handlers {
	return &Handlers{
		upload:      upload,
		list:        list,
		getFile:     getFile,
		deleteFile:  deleteFile,
		getAnalysis: getAnalysis,
		analyze:     analyze,
		rateLimiter: rateLimiter,
	}
}

// Health reports service liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// UploadFile accepts a multipart transcript upload under the "file" field.
func (h *Handlers) UploadFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return h.jsonError(c, domain.ErrInvalidFileType)
	}

	f, err := header.Open()
	if err != nil {
		return h.jsonError(c, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return h.jsonError(c, err)
	}

	file, err := h.upload.Execute(c.UserContext(), header.Filename, content)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "upload rejected",
			"filename", header.Filename, "error", err.Error())
		return h.jsonError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}

// ListFiles returns summaries of all stored files, newest first.
func (h *Handlers) ListFiles(c *fiber.Ctx) error {
	summaries, err := h.list.Execute(c.UserContext())
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(summaries)
}

// GetFile returns one stored file with its analysis state.
func (h *Handlers) GetFile(c *fiber.Ctx) error {
	file, err := h.getFile.Execute(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(file)
}

// DeleteFile removes a stored file.
func (h *Handlers) DeleteFile(c *fiber.Ctx) error {
	if err := h.deleteFile.Execute(c.UserContext(), c.Params("id")); err != nil {
		return h.jsonError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAnalysis analyzes a stored file. The platform comes from the query
// string and defaults to whatsapp.
func (h *Handlers) GetAnalysis(c *fiber.Ctx) error {
	ip := c.IP()
	if !h.rateLimiter.Allow(ip) {
		return h.jsonError(c, domain.ErrRateLimited)
	}
	h.rateLimiter.Record(ip)

	ctx, cancel := context.WithTimeout(c.UserContext(), analyzeTimeout)
	defer cancel()

	platform := c.Query("platform", string(domain.PlatformWhatsApp))
	result, err := h.getAnalysis.Execute(ctx, c.Params("id"), platform)
	if err != nil {
		log.GlobalErrorCtx(ctx, "analysis failed",
			"file_id", c.Params("id"), "platform", platform, "error", err.Error())
		return h.jsonError(c, err)
	}

	return c.JSON(result)
}

// analyzeRequest is the body of a direct analysis call.
type analyzeRequest struct {
	Content  string `json:"content"`
	Platform string `json:"platform"`
}

// Analyze runs the pipeline over transcript text supplied in the request
// body, without storing anything.
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	ip := c.IP()
	if !h.rateLimiter.Allow(ip) {
		return h.jsonError(c, domain.ErrRateLimited)
	}
	h.rateLimiter.Record(ip)

	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body must be JSON with content and platform fields",
		})
	}
	if req.Platform == "" {
		req.Platform = string(domain.PlatformWhatsApp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), analyzeTimeout)
	defer cancel()

	result, err := h.analyze.Execute(ctx, req.Content, req.Platform)
	if err != nil {
		log.GlobalErrorCtx(ctx, "direct analysis failed",
			"platform", req.Platform, "error", err.Error())
		return h.jsonError(c, err)
	}

	return c.JSON(result)
}

// jsonError writes the mapped status code and a neutral message.
func (h *Handlers) jsonError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": friendlyError(err),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidFileType):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrEmptyTranscript):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

// friendlyError returns a neutral, non-blaming error message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return "That file couldn't be found. It might have been deleted."
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		return "Unknown platform. Supported values are whatsapp, telegram and facebook."
	case errors.Is(err, domain.ErrInvalidFileType):
		return "Only plain-text (.txt) chat exports are accepted."
	case errors.Is(err, domain.ErrFileTooLarge):
		return "That file is too large to analyze."
	case errors.Is(err, domain.ErrEmptyTranscript):
		return "No messages could be read from this transcript. Check the platform setting."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	default:
		return "Unable to process this request right now. Please try again in a moment."
	}
}
