package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/leonardotrapani/voicelab/internal/report"
)

type translateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"target_lang"`
}

type summarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

type reportRequest struct {
	Transcript     string `json:"transcript"`
	TranslatedText string `json:"translated_text"`
	Summary        string `json:"summary"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "voicelab server is running!",
		"success": true,
	})
}

func (s *Server) handleTranscribe(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "No audio file provided")
	}
	if file.Filename == "" {
		return respondError(c, fiber.StatusBadRequest, "No file selected")
	}

	lang := c.FormValue("language", s.manager.GetConfig().Transcription.DefaultLanguage)

	audio, err := readUpload(file)
	if err != nil {
		s.log.Errorf("transcribe: reading upload: %v", err)
		return respondError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error reading audio: %v", err))
	}

	transcript, err := s.pipeline.TranscribeUpload(c.Context(), audio, file.Filename, lang)
	if err != nil {
		s.log.Errorf("transcribe: %v", err)
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"transcript":    transcript,
		"language_used": lang,
		"success":       true,
	})
}

func (s *Server) handleTranslate(c *fiber.Ctx) error {
	var req translateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := s.validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "No text provided")
	}
	if req.TargetLang == "" {
		req.TargetLang = "en"
	}

	translated := s.pipeline.TranslateText(c.Context(), req.Text, req.TargetLang)

	return c.JSON(fiber.Map{
		"translated_text": translated,
		"target_lang":     req.TargetLang,
		"success":         true,
	})
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	var req summarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := s.validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "No text provided")
	}

	summary := s.pipeline.SummarizeText(c.Context(), req.Text)

	return c.JSON(fiber.Map{
		"summary": summary,
		"success": true,
	})
}

func (s *Server) handleProcessAll(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "No audio file provided")
	}
	if file.Filename == "" {
		return respondError(c, fiber.StatusBadRequest, "No file selected")
	}

	sourceLang := c.FormValue("source_lang", s.manager.GetConfig().Transcription.DefaultLanguage)
	targetLang := c.FormValue("target_lang", "en")

	audio, err := readUpload(file)
	if err != nil {
		s.log.Errorf("process_all: reading upload: %v", err)
		return respondError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error reading audio: %v", err))
	}

	result, err := s.pipeline.ProcessAll(c.Context(), audio, file.Filename, sourceLang, targetLang)
	if err != nil {
		s.log.Errorf("process_all: %v", err)
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"transcript":      result.Transcript,
		"translated_text": result.TranslatedText,
		"summary":         result.Summary,
		"source_lang":     result.SourceLang,
		"target_lang":     result.TargetLang,
		"success":         true,
	})
}

func (s *Server) handleDownloadReport(c *fiber.Ctx) error {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if req.SourceLang == "" {
		req.SourceLang = "en"
	}
	if req.TargetLang == "" {
		req.TargetLang = "en"
	}

	now := time.Now()
	content := report.Render(report.Report{
		Transcript:     req.Transcript,
		TranslatedText: req.TranslatedText,
		Summary:        req.Summary,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
	}, now)

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename(now)))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(content)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
