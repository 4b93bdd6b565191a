package llm

import (
	"context"
	"fmt"
	"strings"
)

// PredefinedQuestions are the canned analysis prompts offered by the CLI.
var PredefinedQuestions = []string{
	"Summarize the discussion",
	"Extract key insights",
	"Any critical next steps?",
}

// DefaultTemperature is used for transcript analysis unless overridden.
const DefaultTemperature = 0.75

const analysisSystemPrompt = "You are a helpful assistant. You carefully follow the user's instructions and use any provided context. " +
	"If the context does not contain enough information to fully answer, state so politely. " +
	"Be concise and clear in your response."

// AnswerQuestion asks the provider a question about a speaker-labeled
// transcript, using the transcript as grounding context.
func AnswerQuestion(ctx context.Context, p Provider, transcript, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question must not be empty")
	}

	userPrompt := fmt.Sprintf(
		"Context or conversation details:\n%s\n\nUser Instruction / Question:\n%s\n\n"+
			"Please follow the user's instructions as best as you can, using the above context if relevant. "+
			"If the question cannot be answered from the context, respond accordingly.",
		transcript, question,
	)

	resp, err := p.Complete(ctx, CompletionRequest{
		SystemPrompt: analysisSystemPrompt,
		Messages:     []Message{{Role: "user", Content: userPrompt}},
		Temperature:  DefaultTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("transcript analysis: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}
