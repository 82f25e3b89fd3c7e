// Package yearbook provides a high-level façade over the memory store and
// the review requester, enabling a presentation layer (CLI, TUI, tests) to
// drive the whole pipeline through one object. Applications interact with
// this package by:
//  1. Creating an App via New() (optionally overriding the slot, model and logger)
//  2. Recording memories with Add
//  3. Generating the year in review with GenerateReview once enough memories exist
//
// All defaults are safe for local development and testing: an in-memory
// slot, a mock model and a no-op logger. Real deployments supply a FileSlot
// and a provider-backed model.
package yearbook

import (
	"context"
	"encoding/base64"
	"errors"
	"sync/atomic"

	"github.com/hearthside/yearbook/logging"
	"github.com/hearthside/yearbook/memory"
	"github.com/hearthside/yearbook/model"
	"github.com/hearthside/yearbook/review"
)

// DefaultMinMemories is the minimum number of recorded memories required
// before a review can be generated; below it the narrative has too little
// material.
const DefaultMinMemories = 3

var (
	// ErrNotEnoughMemories is returned by GenerateReview while the store
	// holds fewer than the configured minimum of records.
	ErrNotEnoughMemories = errors.New("not enough memories recorded for a review")

	// ErrReviewInFlight is returned by GenerateReview while a previous
	// review request is still outstanding. At most one review request may
	// be in flight at a time.
	ErrReviewInFlight = errors.New("a review request is already in flight")
)

// Options configure the App.
type Options struct {
	// Slot is the persistent location backing the memory store.
	Slot memory.Slot

	// Model is the text-generation backend used for reviews and photo
	// descriptions.
	Model model.Model

	// Logger receives structured diagnostics (defaults to NoOp).
	Logger logging.Logger

	// MinMemories is the review admission threshold (defaults to
	// DefaultMinMemories).
	MinMemories int
}

// App aggregates the memory store and the review requester.
type App struct {
	opts      Options
	store     *memory.Store
	requester *review.Requester
	logger    logging.Logger

	reviewInFlight atomic.Bool
}

// New creates an App with optional overrides and hydrates the store from the
// slot. Any unset service is initialized with a local default.
func New(optFns ...func(o *Options)) *App {
	opts := Options{
		Slot:        memory.NewMemorySlot(),
		Model:       model.NewMockModel("mock", "mock"),
		Logger:      logging.NoOpLogger{},
		MinMemories: DefaultMinMemories,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MinMemories < 1 {
		opts.MinMemories = DefaultMinMemories
	}

	store := memory.NewStore(opts.Slot, func(o *memory.StoreOptions) {
		o.Logger = opts.Logger
	})
	store.Load()

	requester := review.NewRequester(opts.Model, func(o *review.Options) {
		o.Logger = opts.Logger
	})

	return &App{
		opts:      opts,
		store:     store,
		requester: requester,
		logger:    opts.Logger,
	}
}

// Add validates the draft (non-empty content and author, known category) and
// appends it to the store, persisting the full collection synchronously. The
// completed record, with its fresh id and timestamp, is returned.
func (a *App) Add(d memory.Draft) (memory.Record, error) {
	if err := d.Validate(); err != nil {
		return memory.Record{}, err
	}
	return a.store.Append(d)
}

// Memories returns the recorded memories in insertion order.
func (a *App) Memories() []memory.Record { return a.store.Records() }

// Count returns the number of recorded memories.
func (a *App) Count() int { return a.store.Len() }

// MinMemories returns the review admission threshold.
func (a *App) MinMemories() int { return a.opts.MinMemories }

// GenerateReview sends the full memory collection to the model and returns
// the year in review. It refuses to run below the memory minimum
// (ErrNotEnoughMemories) or while another review is outstanding
// (ErrReviewInFlight). Requester failures are logged and returned unchanged;
// the store is never mutated by a review.
func (a *App) GenerateReview(ctx context.Context) (*review.Result, error) {
	if a.store.Len() < a.opts.MinMemories {
		return nil, ErrNotEnoughMemories
	}
	if !a.reviewInFlight.CompareAndSwap(false, true) {
		return nil, ErrReviewInFlight
	}
	defer a.reviewInFlight.Store(false)

	result, err := a.requester.Generate(ctx, a.store.Records())
	if err != nil {
		a.logger.Error("year in review generation failed", "error", err)
		return nil, err
	}
	a.logger.Info("year in review generated", "memories", a.store.Len(), "keywords", len(result.Keywords))
	return result, nil
}

// DescribeImage returns a one-sentence description of the given image bytes.
func (a *App) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	img := model.Image{
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
	return a.requester.DescribeImage(ctx, img)
}

// Reset empties the store and removes the persistent slot. Irreversible;
// the caller is responsible for confirming the action with the user first.
func (a *App) Reset() error { return a.store.Clear() }
