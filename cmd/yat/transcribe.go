package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deduu/Youtube-audio-transcription/media"
	"github.com/deduu/Youtube-audio-transcription/pipeline"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file|dir|url>...",
	Short: "Transcribe audio with speaker attribution",
	Long: `Transcribe one or more sources into speaker-attributed transcripts.
Sources may be local audio files, directories of audio files, or YouTube
URLs. With a single source the transcript is printed; with several, one
pipe-delimited "source|text" record per source is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranscribe,
}

var (
	startTime   string
	endTime     string
	model       string
	language    string
	numSpeakers int
	outputDir   string
	keepAudio   bool
)

func init() {
	transcribeCmd.Flags().StringVar(&startTime, "start", "", "start time (HH:MM:SS or MM:SS)")
	transcribeCmd.Flags().StringVar(&endTime, "end", "", "end time (HH:MM:SS or MM:SS)")
	transcribeCmd.Flags().StringVarP(&model, "model", "m", "", "whisper model size: tiny, base, small, medium, large")
	transcribeCmd.Flags().StringVarP(&language, "language", "l", "", "spoken language hint (default: auto-detect)")
	transcribeCmd.Flags().IntVar(&numSpeakers, "num-speakers", 0, "exact number of speakers, when known")
	transcribeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for transcript files (overrides config)")
	transcribeCmd.Flags().BoolVar(&keepAudio, "keep-audio", false, "keep downloaded and trimmed intermediate audio")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	tr, err := media.ParseRange(startTime, endTime)
	if err != nil {
		return err
	}

	sources, err := pipeline.ExpandSources(args)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Range:            tr,
		Model:            a.cfg.Whisper.Model,
		Language:         a.cfg.Whisper.Language,
		NumSpeakers:      numSpeakers,
		OutputDir:        a.cfg.Pipeline.OutputDir,
		WorkDir:          a.cfg.Pipeline.WorkDir,
		KeepIntermediate: keepAudio || a.cfg.Pipeline.KeepIntermediate,
	}
	if model != "" {
		opts.Model = model
	}
	if language != "" {
		opts.Language = language
	}
	if outputDir != "" {
		opts.OutputDir = outputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(a.diarizer, a.transcriber, a.cfg.Pipeline.Workers, a.log)

	if len(sources) == 1 {
		res, err := p.ProcessSource(ctx, sources[0], opts)
		if err != nil {
			return err
		}
		fmt.Println(res.Transcript)
		if res.OutputPath != "" && !quiet {
			fmt.Fprintln(os.Stderr, "Transcript written to", res.OutputPath)
		}
		return nil
	}

	batch, err := p.ProcessBatch(ctx, sources, opts)
	if err != nil {
		return err
	}
	for _, record := range batch.Records {
		fmt.Println(record)
	}

	var failed int
	for _, res := range batch.Results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", res.Source, res.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(batch.Results))
	}
	return nil
}
