package memory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_ClosedSet(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 8)

	seen := make(map[Category]bool)
	for _, c := range categories {
		assert.True(t, c.Valid(), "category %q should be valid", c)
		assert.False(t, seen[c], "category %q listed twice", c)
		seen[c] = true
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Best Meal")
	require.NoError(t, err)
	assert.Equal(t, CategoryMeal, c)

	_, err = ParseCategory("Best Vacation")
	assert.Error(t, err)

	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestCategory_UnmarshalJSON_RejectsUnknownLabel(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`"The Soundtrack"`), &c))
	assert.Equal(t, CategorySoundtrack, c)

	err := json.Unmarshal([]byte(`"Made Up"`), &c)
	assert.Error(t, err)
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	rec := Record{
		ID:        "abc-123",
		Category:  CategoryPhotobook,
		Content:   "Beach day",
		Author:    "Mom",
		Timestamp: 1735689600000,
		ImageURL:  "data:image/jpeg;base64,/9j/4AAQ",
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	// Wire field names are part of the slot contract.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "category", "content", "author", "timestamp", "imageUrl"} {
		assert.Contains(t, raw, key)
	}

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rec, decoded)
}

func TestRecord_ImageURLOmittedWhenAbsent(t *testing.T) {
	data, err := json.Marshal(Record{ID: "x", Category: CategoryGoal, Content: "c", Author: "a", Timestamp: 1})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "imageUrl")
}

func TestDraft_Validate(t *testing.T) {
	valid := Draft{Category: CategoryMeal, Content: "Tacos", Author: "Dad"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"empty content", Draft{Category: CategoryMeal, Author: "Dad"}, "content"},
		{"empty author", Draft{Category: CategoryMeal, Content: "Tacos"}, "author"},
		{"invalid category", Draft{Category: "Nope", Content: "Tacos", Author: "Dad"}, "category"},
		{"empty draft", Draft{}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
