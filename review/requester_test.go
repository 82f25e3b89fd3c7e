package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthside/yearbook/internal/testutil"
	"github.com/hearthside/yearbook/memory"
	"github.com/hearthside/yearbook/model"
)

func TestBuildPrompt_ContainsMemoryLines(t *testing.T) {
	records := []memory.Record{
		{Category: memory.CategoryMeal, Author: "Dad", Content: "Tacos"},
		{Category: memory.CategoryWin, Author: "Maya", Content: "Kickflip landed"},
	}

	prompt := BuildPrompt(records)
	assert.Contains(t, prompt, "[Best Meal] Dad: Tacos")
	assert.Contains(t, prompt, "[Biggest Win] Maya: Kickflip landed")

	// Store order is prompt order.
	assert.Less(t,
		strings.Index(prompt, "[Best Meal]"),
		strings.Index(prompt, "[Biggest Win]"),
	)
}

func TestGenerate_ParsesWellFormedResponse(t *testing.T) {
	mock := model.NewMockModel("mock", "mock")
	mock.RespondWith(testutil.ReviewJSON)
	requester := NewRequester(mock)

	result, err := requester.Generate(context.Background(), sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, "A year of small adventures that added up to a big one.", result.Summary)
	assert.Equal(t, []string{"adventure", "togetherness", "growth"}, result.Keywords)
	assert.Equal(t, "Kitchen Table Anthems", result.SuggestedPlaylist.Title)
	assert.NotEmpty(t, result.SuggestedPlaylist.Description)
}

func TestGenerate_RequestsStructuredOutputOnce(t *testing.T) {
	mock := model.NewMockModel("mock", "mock")
	mock.RespondWith(testutil.ReviewJSON)
	requester := NewRequester(mock)

	_, err := requester.Generate(context.Background(), sampleRecords())
	require.NoError(t, err)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	req := requests[0]
	assert.NotNil(t, req.ResponseSchema)
	assert.Equal(t, "year_in_review", req.SchemaName)
	assert.NotEmpty(t, req.Instructions)
	assert.Nil(t, req.Image)

	required, ok := req.ResponseSchema["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"summary", "keywords", "suggestedPlaylist"}, required)
}

func TestGenerate_ServiceFailure(t *testing.T) {
	mock := model.NewMockModel("mock", "mock")
	cause := errors.New("connection refused")
	mock.FailWith(cause)
	requester := NewRequester(mock)

	_, err := requester.Generate(context.Background(), sampleRecords())
	require.Error(t, err)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.ErrorIs(t, err, cause)
}

func TestGenerate_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "here is your review!"},
		{"missing keywords and playlist", `{"summary": "ok"}`},
		{"missing playlist", `{"summary": "ok", "keywords": ["a", "b", "c"]}`},
		{"playlist missing title", `{"summary": "ok", "keywords": ["a"], "suggestedPlaylist": {"description": "d"}}`},
		{"keywords wrong type", `{"summary": "ok", "keywords": "a,b,c", "suggestedPlaylist": {"title": "t", "description": "d"}}`},
		{"json array", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := model.NewMockModel("mock", "mock")
			mock.RespondWith(tt.body)
			requester := NewRequester(mock)

			_, err := requester.Generate(context.Background(), sampleRecords())
			require.Error(t, err)

			var formatErr *ResponseFormatError
			assert.ErrorAs(t, err, &formatErr)
			var serviceErr *ServiceError
			assert.False(t, errors.As(err, &serviceErr))
		})
	}
}

func TestDescribeImage(t *testing.T) {
	mock := model.NewMockModel("mock", "mock")
	mock.RespondWith("A golden afternoon on the porch, everyone laughing at once.\n")
	requester := NewRequester(mock)

	img := model.Image{Data: "aGVsbG8=", MimeType: "image/jpeg"}
	sentence, err := requester.DescribeImage(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "A golden afternoon on the porch, everyone laughing at once.", sentence)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].Image)
	assert.Equal(t, "image/jpeg", requests[0].Image.MimeType)
	assert.Nil(t, requests[0].ResponseSchema)
}

func TestDescribeImage_Failures(t *testing.T) {
	t.Run("service failure", func(t *testing.T) {
		mock := model.NewMockModel("mock", "mock")
		mock.FailWith(errors.New("quota"))
		requester := NewRequester(mock)

		_, err := requester.DescribeImage(context.Background(), model.Image{Data: "x", MimeType: "image/jpeg"})
		var serviceErr *ServiceError
		require.ErrorAs(t, err, &serviceErr)
	})

	t.Run("empty response", func(t *testing.T) {
		mock := model.NewMockModel("mock", "mock")
		mock.RespondWith("   \n")
		requester := NewRequester(mock)

		_, err := requester.DescribeImage(context.Background(), model.Image{Data: "x", MimeType: "image/jpeg"})
		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
	})
}

func sampleRecords() []memory.Record {
	return []memory.Record{
		{ID: "1", Category: memory.CategoryMeal, Author: "Dad", Content: "Tacos", Timestamp: 1},
		{ID: "2", Category: memory.CategoryWin, Author: "Maya", Content: "Kickflip", Timestamp: 2},
		{ID: "3", Category: memory.CategoryGoal, Author: "Mom", Content: "Go camping", Timestamp: 3},
	}
}
