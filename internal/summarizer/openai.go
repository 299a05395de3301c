package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"textsmith/internal/textutil"
)

const (
	baseMaxOutputTokens  int64 = 512
	limitMaxOutputTokens int64 = 2048

	conciseInstructions = `Summarize the text into a few short sentences.

Rules:
- Keep only the core ideas and critical facts (dates, numbers, names).
- No lists, no headings — plain prose.
- Neutral tone, same language as the input.`

	detailedInstructions = `Summarize the text, preserving its structure of ideas.

Rules:
- Keep the main points and the supporting context that explains them.
- No lists, no headings — plain prose.
- Neutral tone, same language as the input.`
)

// OpenAI calls OpenAI's Responses API to produce summaries. The word cap is
// enforced locally so the Result honors Options.MaxLength even when the
// model overruns it.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI builds a new API-backed summarizer.
func NewOpenAI(apiKey string) (*OpenAI, error) {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Summarize implements Summarizer.
func (s *OpenAI) Summarize(ctx context.Context, text string, opts Options) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, errors.New("input is empty")
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeConcise
	}

	instructions := conciseInstructions
	if mode == ModeDetailed {
		instructions = detailedInstructions
	}
	if opts.MaxLength > 0 {
		instructions += fmt.Sprintf("\n- Hard limit: %d words.", opts.MaxLength)
	}

	maxOutputTokens := baseMaxOutputTokens
	for {
		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           openai.ChatModelGPT5Mini2025_08_07,
			ServiceTier:     responses.ResponseNewParamsServiceTierFlex,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Reasoning: responses.ReasoningParam{
				Effort: openai.ReasoningEffortLow,
			},
			Instructions: openai.String(instructions),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(trimmed),
			},
		})
		if err != nil {
			return Result{}, fmt.Errorf("do request: %w", err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens *= 2
				if maxOutputTokens > limitMaxOutputTokens {
					maxOutputTokens = limitMaxOutputTokens
				}
				continue
			}
			return Result{}, fmt.Errorf(
				"response is incomplete (reason = %s, maxOutputTokens = %d)",
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			)
		}

		summary := strings.TrimSpace(resp.OutputText())
		if summary == "" {
			return Result{}, fmt.Errorf("output text is missing (status = %s)", resp.Status)
		}

		if opts.MaxLength > 0 {
			summary = textutil.Truncate(summary, opts.MaxLength, true)
		}

		return Result{
			Summary:        summary,
			OriginalLength: textutil.CountWords(text),
			SummaryLength:  textutil.CountWords(summary),
		}, nil
	}
}
