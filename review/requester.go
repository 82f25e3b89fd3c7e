package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hearthside/yearbook/internal/util"
	"github.com/hearthside/yearbook/logging"
	"github.com/hearthside/yearbook/memory"
	"github.com/hearthside/yearbook/model"
)

// Playlist is a conceptual soundtrack suggestion for the year.
type Playlist struct {
	Title       string `json:"title" description:"Conceptual title for the year's soundtrack"`
	Description string `json:"description" description:"What the soundtrack sounds like and why it fits the year"`
}

// Result is the AI-generated year in review. It is derived, never persisted;
// every generation produces a fresh one.
type Result struct {
	Summary           string   `json:"summary" description:"A narrative of the family's journey in 2025"`
	Keywords          []string `json:"keywords" description:"3-5 core themes of the year"`
	SuggestedPlaylist Playlist `json:"suggestedPlaylist"`
}

const reviewInstructions = "You are a professional family storyteller. You analyze a family's " +
	"collected memories from the year 2025 and create a heartwarming, cinematic and fun " +
	"\"Year in Review\" report."

const describeInstruction = "Describe this family memory in one heartwarming sentence for a photobook."

// resultSchema is the structured-output contract sent with every review
// request; all three top-level fields are required.
var resultSchema = util.Schema(Result{})

// BuildPrompt renders the review prompt: one "[<category>] <author>:
// <content>" line per record in store order, wrapped in the fixed framing.
func BuildPrompt(records []memory.Record) string {
	var b strings.Builder
	b.WriteString("Analyze the following family memories from the year 2025 and create the \"Year in Review\" report.\n\nMemories:\n")
	for _, r := range records {
		fmt.Fprintf(&b, "[%s] %s: %s\n", r.Category, r.Author, r.Content)
	}
	b.WriteString("\nThe response must be a JSON object with:\n")
	b.WriteString("1. A 'summary' (a narrative of the family's journey in 2025).\n")
	b.WriteString("2. A 'keywords' array (3-5 core themes of the year).\n")
	b.WriteString("3. A 'suggestedPlaylist' (a conceptual title and description for their year's soundtrack).\n")
	return b.String()
}

// Options configure a Requester.
type Options struct {
	Logger logging.Logger
}

// Requester issues the review and image-description calls against a model.
// It holds no state between calls and never mutates the memory collection.
type Requester struct {
	model  model.Model
	logger logging.Logger
}

// NewRequester creates a Requester backed by the given model.
func NewRequester(m model.Model, optFns ...func(o *Options)) *Requester {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Requester{model: m, logger: opts.Logger}
}

// Generate sends the full memory collection to the model exactly once and
// returns the parsed Result. Callers enforce the minimum-record
// precondition; Generate does not re-validate it. The two failure kinds are
// *ServiceError (the call itself failed) and *ResponseFormatError (the
// response is not the expected JSON).
func (r *Requester) Generate(ctx context.Context, records []memory.Record) (*Result, error) {
	req := model.Request{
		Instructions:   reviewInstructions,
		Prompt:         BuildPrompt(records),
		ResponseSchema: resultSchema,
		SchemaName:     "year_in_review",
	}

	start := time.Now()
	resp, err := r.model.Complete(ctx, req)
	if err != nil {
		r.logger.Error("review model call failed", "model", r.model.Info().Name, "duration", time.Since(start), "error", err)
		return nil, &ServiceError{Err: err}
	}
	r.logger.Debug("review model call completed", "model", r.model.Info().Name, "duration", time.Since(start), "memories", len(records))

	return parseResult(resp.Text)
}

// parseResult decodes and shape-checks the raw response body.
func parseResult(raw string) (*Result, error) {
	var shape map[string]any
	if err := json.Unmarshal([]byte(raw), &shape); err != nil {
		return nil, &ResponseFormatError{Reason: "response is not valid JSON", Err: err}
	}
	if err := util.ValidateShape(shape, resultSchema); err != nil {
		return nil, &ResponseFormatError{Reason: err.Error()}
	}
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ResponseFormatError{Reason: "response does not decode into a review result", Err: err}
	}
	return &result, nil
}

// DescribeImage asks the model for a one-sentence description of a single
// uploaded photo. Same single-shot contract and failure kinds as Generate;
// not composed with the review pipeline.
func (r *Requester) DescribeImage(ctx context.Context, img model.Image) (string, error) {
	resp, err := r.model.Complete(ctx, model.Request{
		Prompt: describeInstruction,
		Image:  &img,
	})
	if err != nil {
		r.logger.Error("image description call failed", "model", r.model.Info().Name, "error", err)
		return "", &ServiceError{Err: err}
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &ResponseFormatError{Reason: "empty description returned"}
	}
	return text, nil
}
