package main

import (
	"github.com/spf13/cobra"

	"github.com/deduu/Youtube-audio-transcription/config"
	"github.com/deduu/Youtube-audio-transcription/diarization"
	"github.com/deduu/Youtube-audio-transcription/diarization/pyannote"
	"github.com/deduu/Youtube-audio-transcription/llm"
	"github.com/deduu/Youtube-audio-transcription/llm/ollama"
	"github.com/deduu/Youtube-audio-transcription/logger"
	"github.com/deduu/Youtube-audio-transcription/transcription"
	"github.com/deduu/Youtube-audio-transcription/transcription/whisper"
)

var (
	configFile string
	verbose    bool
	quiet      bool
)

// app holds the wired collaborators shared by all subcommands.
type app struct {
	cfg         *config.Config
	log         *logger.Logger
	diarizer    diarization.Provider
	transcriber transcription.Provider
	llm         llm.Provider
}

var rootCmd = &cobra.Command{
	Use:   "yat",
	Short: "Speaker-attributed transcription for audio files and YouTube videos",
	Long: `yat runs audio through Whisper transcription and pyannote speaker
diarization, aligns the two into a speaker-attributed transcript, and can
answer questions about the result with a local LLM.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}

// loadApp loads configuration and wires the providers through their
// registries.
func loadApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if quiet {
		cfg.Logging.Level = "error"
	}
	log := logger.New(&cfg.Logging, "yat")

	diarizers := diarization.NewRegistry()
	diarizers.RegisterFactory(pyannote.ProviderName, pyannote.Factory())
	diarizer, err := diarizers.Create(pyannote.ProviderName, map[string]any{
		"base_url": cfg.Pyannote.BaseURL,
		"timeout":  cfg.Pyannote.Timeout,
	})
	if err != nil {
		return nil, err
	}

	transcribers := transcription.NewRegistry()
	transcribers.RegisterFactory(whisper.ProviderName, whisper.Factory())
	transcriber, err := transcribers.Create(whisper.ProviderName, map[string]any{
		"base_url": cfg.Whisper.BaseURL,
		"model":    cfg.Whisper.Model,
		"language": cfg.Whisper.Language,
		"timeout":  cfg.Whisper.Timeout,
	})
	if err != nil {
		return nil, err
	}

	llms := llm.NewRegistry()
	llms.RegisterFactory(ollama.ProviderName, ollama.Factory())
	llmProvider, err := llms.Create(ollama.ProviderName, map[string]any{
		"base_url":    cfg.Ollama.BaseURL,
		"model":       cfg.Ollama.Model,
		"temperature": cfg.Ollama.Temperature,
		"timeout":     cfg.Ollama.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		log:         log,
		diarizer:    diarizer,
		transcriber: transcriber,
		llm:         llmProvider,
	}, nil
}
