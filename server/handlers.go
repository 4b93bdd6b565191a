package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deduu/Youtube-audio-transcription/align"
	"github.com/deduu/Youtube-audio-transcription/diarization"
	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/llm"
	"github.com/deduu/Youtube-audio-transcription/media"
	"github.com/deduu/Youtube-audio-transcription/pipeline"
	"github.com/deduu/Youtube-audio-transcription/transcription"
	"github.com/deduu/Youtube-audio-transcription/version"
)

// Deps are the collaborators the API routes dispatch to.
type Deps struct {
	Pipeline    *pipeline.Pipeline
	LLM         llm.Provider
	Diarizer    diarization.Provider
	Transcriber transcription.Provider
	// Defaults seed per-request pipeline options (model, output dir).
	Defaults pipeline.Options
}

// TranscribeRequest is the POST /api/v1/transcribe body.
type TranscribeRequest struct {
	Source      string `json:"source" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Model       string `json:"model"`
	Language    string `json:"language"`
	NumSpeakers int    `json:"num_speakers" binding:"omitempty,min=1"`
}

// TranscribeResponse carries the aligned utterances and the rendered
// transcript document.
type TranscribeResponse struct {
	JobID      string            `json:"job_id"`
	Source     string            `json:"source"`
	Utterances []align.Utterance `json:"utterances"`
	Transcript string            `json:"transcript"`
	ElapsedMS  int64             `json:"elapsed_ms"`
}

// AskRequest is the POST /api/v1/ask body.
type AskRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Question   string `json:"question" binding:"required"`
}

// AskResponse carries the model's answer.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *Server) registerRoutes(deps Deps) {
	s.engine.GET("/health", handleHealth(deps))

	v1 := s.engine.Group("/api/v1")
	v1.POST("/transcribe", handleTranscribe(deps))
	v1.POST("/ask", handleAsk(deps))
	v1.GET("/questions", handleQuestions())
}

func handleTranscribe(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TranscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, apperrors.Validation(err.Error()))
			return
		}

		tr, err := media.ParseRange(req.StartTime, req.EndTime)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		if req.Model != "" && !transcription.IsValidModel(req.Model) {
			RespondWithError(c, apperrors.InvalidInput("model", "unknown model size"))
			return
		}

		opts := deps.Defaults
		opts.Range = tr
		if req.Model != "" {
			opts.Model = req.Model
		}
		if req.Language != "" {
			opts.Language = req.Language
		}
		opts.NumSpeakers = req.NumSpeakers

		res, err := deps.Pipeline.ProcessSource(c.Request.Context(), req.Source, opts)
		if err != nil {
			RespondWithError(c, err)
			return
		}

		RespondOK(c, TranscribeResponse{
			JobID:      res.JobID,
			Source:     res.Source,
			Utterances: res.Utterances,
			Transcript: res.Transcript,
			ElapsedMS:  res.Elapsed.Milliseconds(),
		})
	}
}

func handleAsk(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.LLM == nil {
			RespondWithError(c, apperrors.ServiceUnavailable("llm"))
			return
		}

		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, apperrors.Validation(err.Error()))
			return
		}

		answer, err := llm.AnswerQuestion(c.Request.Context(), deps.LLM, req.Transcript, req.Question)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		RespondOK(c, AskResponse{Question: req.Question, Answer: answer})
	}
}

func handleQuestions() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondOK(c, llm.PredefinedQuestions)
	}
}

func handleHealth(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		services := map[string]bool{}
		healthy := true

		if deps.Transcriber != nil {
			up := deps.Transcriber.IsAvailable(ctx)
			services[deps.Transcriber.Name()] = up
			healthy = healthy && up
		}
		if deps.Diarizer != nil {
			up := deps.Diarizer.IsAvailable(ctx)
			services[deps.Diarizer.Name()] = up
			healthy = healthy && up
		}
		if deps.LLM != nil {
			// The LLM is optional; report but do not fail health on it.
			services[deps.LLM.Name()] = deps.LLM.IsAvailable(ctx)
		}

		status := http.StatusOK
		state := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(status, gin.H{
			"status":   state,
			"version":  version.Get().String(),
			"services": services,
		})
	}
}
