package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deduu/Youtube-audio-transcription/pipeline"
	"github.com/deduu/Youtube-audio-transcription/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transcription pipeline over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	p := pipeline.New(a.diarizer, a.transcriber, a.cfg.Pipeline.Workers, a.log)

	deps := server.Deps{
		Pipeline:    p,
		LLM:         a.llm,
		Diarizer:    a.diarizer,
		Transcriber: a.transcriber,
		Defaults: pipeline.Options{
			Model:            a.cfg.Whisper.Model,
			Language:         a.cfg.Whisper.Language,
			OutputDir:        a.cfg.Pipeline.OutputDir,
			WorkDir:          a.cfg.Pipeline.WorkDir,
			KeepIntermediate: a.cfg.Pipeline.KeepIntermediate,
		},
	}
	srv := server.New(a.cfg.Server, deps, a.log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	return srv.Stop(context.Background())
}
