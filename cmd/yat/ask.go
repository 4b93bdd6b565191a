package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deduu/Youtube-audio-transcription/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask <transcript-file>",
	Short: "Ask a question about a transcript",
	Long: `Ask a question about a previously generated transcript using the
configured local LLM. Use --list to see the predefined questions, or
--question for a free-form one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

var (
	question      string
	listQuestions bool
)

func init() {
	askCmd.Flags().StringVarP(&question, "question", "Q", "", "question to ask about the transcript")
	askCmd.Flags().BoolVar(&listQuestions, "list", false, "list the predefined questions and exit")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if listQuestions {
		for i, q := range llm.PredefinedQuestions {
			fmt.Printf("%d. %s\n", i+1, q)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("a transcript file is required")
	}
	if question == "" {
		return fmt.Errorf("a question is required (use --question)")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	answer, err := llm.AnswerQuestion(ctx, a.llm, string(data), question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
