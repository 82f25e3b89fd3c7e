package testutil

import (
	"fmt"

	"github.com/hearthside/yearbook/memory"
)

// Draft builds a valid draft for the given category.
func Draft(category memory.Category, author, content string) memory.Draft {
	return memory.Draft{Category: category, Author: author, Content: content}
}

// Drafts builds n distinct valid drafts cycling through the category set.
func Drafts(n int) []memory.Draft {
	categories := memory.Categories()
	out := make([]memory.Draft, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, memory.Draft{
			Category: categories[i%len(categories)],
			Author:   fmt.Sprintf("Author %d", i+1),
			Content:  fmt.Sprintf("Moment number %d", i+1),
		})
	}
	return out
}

// ReviewJSON is a well-formed review response body.
const ReviewJSON = `{
	"summary": "A year of small adventures that added up to a big one.",
	"keywords": ["adventure", "togetherness", "growth"],
	"suggestedPlaylist": {
		"title": "Kitchen Table Anthems",
		"description": "Warm acoustic songs for a year spent mostly together."
	}
}`
