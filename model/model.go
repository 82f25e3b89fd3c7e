package model

import (
	"context"
	"fmt"
	"sync"
)

// Image is an inlined image input: base64 payload (without the data-URL
// prefix) plus its MIME type.
type Image struct {
	Data     string `json:"data"`
	MimeType string `json:"mime_type"`
}

// Request captures one generation call. When ResponseSchema is set the
// provider is asked for a JSON response constrained to that schema;
// SchemaName labels the schema for providers that require a name.
type Request struct {
	Instructions   string         `json:"instructions,omitempty"` // system framing
	Prompt         string         `json:"prompt"`                 // user text
	Image          *Image         `json:"image,omitempty"`
	ResponseSchema map[string]any `json:"response_schema,omitempty"`
	SchemaName     string         `json:"schema_name,omitempty"`
}

// Usage captures token usage statistics for a response.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the complete (non-streaming) model output.
type Response struct {
	Text  string `json:"text"`
	Usage *Usage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name             string `json:"name"`
	Provider         string `json:"provider"` // "openai", "anthropic", "mock", ...
	StructuredOutput bool   `json:"structured_output"`
}

// Model is the minimal interface the review pipeline needs: exactly one
// blocking call per invocation, cancellable through the context.
type Model interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It replays canned responses and records every request it receives.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	fallback  string
	err       error
	requests  []Request
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:             name,
			Provider:         provider,
			StructuredOutput: true,
		},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// RespondWith sets the completion returned for any prompt without a
// registered canned response.
func (m *MockModel) RespondWith(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = response
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Requests returns a copy of the requests received so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	text, ok := m.responses[req.Prompt]
	if !ok {
		text = m.fallback
	}
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", req.Prompt)
	}
	return &Response{Text: text}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
