package testutil

import (
	"time"

	"curato/internal/content"
)

// WithSampleLibrary adds one record of every content type: a category,
// a module and a video inside it, and a standalone article. Timestamps
// are staggered so recency ordering is deterministic.
func (b *Builder) WithSampleLibrary() *Builder {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	category := content.NewRecord(content.TypeCategory, "Go Basics", nil)

	return b.
		WithRecord(content.TypeCategory, "Go Basics",
			ID(category.ID), Description("Introductory material"),
			Field(content.FieldPosition, "1"),
			CreatedAt(lastWeek), UpdatedAt(lastWeek)).
		WithRecord(content.TypeModule, "Concurrency",
			Category(category.ID.String()), Description("Goroutines and channels"),
			Field(content.FieldPosition, "2"),
			CreatedAt(lastWeek), UpdatedAt(yesterday)).
		WithRecord(content.TypeVideo, "Channels in Practice",
			Category(category.ID.String()),
			Field(content.FieldVideoURL, "https://example.com/channels"),
			Field(content.FieldDuration, "12:30"),
			CreatedAt(yesterday), UpdatedAt(yesterday)).
		WithRecord(content.TypeArticle, "Select Statement Patterns",
			Field(content.FieldAuthor, "Dana Voss"),
			Field(content.FieldBody, "# Select\n\nUse select to wait on multiple channels."),
			CreatedAt(now), UpdatedAt(now))
}
