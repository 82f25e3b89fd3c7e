package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_CannedAndFallbackResponses(t *testing.T) {
	mock := NewMockModel("test", "mock")
	mock.AddResponse("specific prompt", "specific answer")
	mock.RespondWith("general answer")

	resp, err := mock.Complete(context.Background(), Request{Prompt: "specific prompt"})
	require.NoError(t, err)
	assert.Equal(t, "specific answer", resp.Text)

	resp, err = mock.Complete(context.Background(), Request{Prompt: "anything else"})
	require.NoError(t, err)
	assert.Equal(t, "general answer", resp.Text)
}

func TestMockModel_DefaultResponse(t *testing.T) {
	mock := NewMockModel("test", "mock")
	resp, err := mock.Complete(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello", resp.Text)
}

func TestMockModel_FailWith(t *testing.T) {
	mock := NewMockModel("test", "mock")
	cause := errors.New("boom")
	mock.FailWith(cause)

	_, err := mock.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, cause)
	// Failed calls are still recorded.
	assert.Len(t, mock.Requests(), 1)
}

func TestMockModel_RecordsRequests(t *testing.T) {
	mock := NewMockModel("test", "mock")
	img := &Image{Data: "AAAA", MimeType: "image/jpeg"}

	_, err := mock.Complete(context.Background(), Request{Prompt: "p1"})
	require.NoError(t, err)
	_, err = mock.Complete(context.Background(), Request{Prompt: "p2", Image: img})
	require.NoError(t, err)

	requests := mock.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "p1", requests[0].Prompt)
	assert.Equal(t, img, requests[1].Image)
}

func TestMockModel_HonorsCancelledContext(t *testing.T) {
	mock := NewMockModel("test", "mock")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Complete(ctx, Request{Prompt: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockModel_Info(t *testing.T) {
	mock := NewMockModel("test-model", "mock")
	info := mock.Info()
	assert.Equal(t, "test-model", info.Name)
	assert.Equal(t, "mock", info.Provider)
}
