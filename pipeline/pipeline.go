package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/deduu/Youtube-audio-transcription/align"
	"github.com/deduu/Youtube-audio-transcription/diarization"
	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/format"
	"github.com/deduu/Youtube-audio-transcription/logger"
	"github.com/deduu/Youtube-audio-transcription/media"
	"github.com/deduu/Youtube-audio-transcription/transcription"
)

// Options control a single job run.
type Options struct {
	// Range bounds the portion of audio to process. A zero Range means
	// the whole stream.
	Range media.TimeRange
	// Model selects the transcription model size. Empty means the
	// provider's configured default.
	Model string
	// Language hints the spoken language. Empty means auto-detect.
	Language string
	// NumSpeakers pins the diarizer to an exact speaker count when > 0.
	NumSpeakers int
	// OutputDir receives the rendered transcript file. Empty disables
	// writing; the transcript is still returned in the Result.
	OutputDir string
	// WorkDir holds downloaded and trimmed intermediate audio. Empty
	// means the system temp directory.
	WorkDir string
	// KeepIntermediate disables cleanup of intermediate audio files.
	KeepIntermediate bool
}

// Result is the outcome of one processed source.
type Result struct {
	JobID      string
	Source     string
	Utterances []align.Utterance
	Transcript string
	OutputPath string
	Elapsed    time.Duration
	// Err is set instead of the fields above when the source failed
	// inside a batch run.
	Err error
}

// Pipeline wires the diarization and transcription providers into jobs.
type Pipeline struct {
	diarizer    diarization.Provider
	transcriber transcription.Provider
	workers     int
	log         *logger.Logger
}

// New creates a Pipeline. workers bounds batch parallelism and is
// clamped to at least 1.
func New(d diarization.Provider, t transcription.Provider, workers int, log *logger.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		diarizer:    d,
		transcriber: t,
		workers:     workers,
		log:         log.WithComponent("pipeline"),
	}
}

// ProcessSource runs the full job for one source: acquire audio, run
// diarization and transcription concurrently, align, render, and write
// the transcript when an output directory is configured.
func (p *Pipeline) ProcessSource(ctx context.Context, source string, opts Options) (*Result, error) {
	if strings.TrimSpace(source) == "" {
		return nil, apperrors.MissingField("source")
	}

	jobID := uuid.NewString()
	start := time.Now()
	log := p.log.WithFields(map[string]interface{}{
		logger.FieldJobID:  jobID,
		logger.FieldSource: source,
	})
	log.Info("job started")

	audioPath, cleanup, err := p.acquire(ctx, jobID, source, opts)
	if err != nil {
		log.WithError(err).Error("audio acquisition failed")
		return nil, err
	}
	defer cleanup()

	var (
		diaRes *diarization.Result
		txRes  *transcription.Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		diaRes, err = p.diarizer.Diarize(gctx, diarization.Request{
			AudioPath:   audioPath,
			NumSpeakers: opts.NumSpeakers,
		})
		return err
	})
	g.Go(func() error {
		var err error
		txRes, err = p.transcriber.Transcribe(gctx, transcription.Request{
			AudioPath: audioPath,
			Model:     opts.Model,
			Language:  opts.Language,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("job failed")
		return nil, err
	}

	utterances, err := align.Align(diaRes.Turns, txRes.Segments)
	if err != nil {
		log.WithError(err).Error("alignment failed")
		return nil, err
	}

	res := &Result{
		JobID:      jobID,
		Source:     source,
		Utterances: utterances,
		Transcript: format.Transcript(utterances),
		Elapsed:    time.Since(start),
	}

	if opts.OutputDir != "" {
		path, err := p.writeTranscript(jobID, source, opts.OutputDir, res.Transcript)
		if err != nil {
			log.WithError(err).Error("transcript write failed")
			return nil, err
		}
		res.OutputPath = path
	}

	log.Info("job completed", map[string]interface{}{
		"utterances":   len(utterances),
		"num_speakers": diaRes.NumSpeakers,
		"elapsed":      res.Elapsed.String(),
	})
	return res, nil
}

// acquire resolves the source to a local mono 16 kHz WAV path, handling
// remote downloads and range trimming. The returned cleanup removes the
// intermediate files it created.
func (p *Pipeline) acquire(ctx context.Context, jobID, source string, opts Options) (string, func(), error) {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}

	var intermediates []string
	cleanup := func() {
		if opts.KeepIntermediate {
			return
		}
		for _, path := range intermediates {
			_ = os.Remove(path)
		}
	}

	audioPath := source
	if media.IsRemote(source) {
		audioPath = filepath.Join(workDir, jobID+".wav")
		if err := media.Download(ctx, source, audioPath); err != nil {
			cleanup()
			return "", func() {}, err
		}
		intermediates = append(intermediates, audioPath)
	}

	if opts.Range.Start > 0 || opts.Range.End > 0 {
		trimmed := filepath.Join(workDir, jobID+"_trimmed.wav")
		if err := media.Trim(ctx, audioPath, trimmed, opts.Range); err != nil {
			cleanup()
			return "", func() {}, err
		}
		intermediates = append(intermediates, trimmed)
		audioPath = trimmed
	}

	return audioPath, cleanup, nil
}

func (p *Pipeline) writeTranscript(jobID, source, outputDir, transcript string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", apperrors.Internal("Failed to create the output directory.").WithCause(err)
	}

	name := jobID
	if !media.IsRemote(source) {
		base := filepath.Base(source)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	path := filepath.Join(outputDir, name+"_transcript.txt")

	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		return "", apperrors.Internal("Failed to write the transcript file.").WithCause(err)
	}
	return path, nil
}
