package domain

import "time"

// Category is an admin-managed label used to group programs.
type Category struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Program is the top-level learning unit patients enroll in. Only published
// programs are visible to patients.
type Program struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	CategoryIDs []string  `json:"category_ids" bson:"category_ids"`
	Published   bool      `json:"published" bson:"published"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Module is an ordered section within a program.
type Module struct {
	ID        string    `json:"id" bson:"_id"`
	ProgramID string    `json:"program_id" bson:"program_id"`
	Title     string    `json:"title" bson:"title"`
	Position  int       `json:"position" bson:"position"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContentKind classifies a content item.
type ContentKind string

const (
	ContentArticle  ContentKind = "article"
	ContentVideo    ContentKind = "video"
	ContentExercise ContentKind = "exercise"
)

// ContentItem is a single piece of learning material inside a module.
// BodyHTML is always derived from BodyMarkdown at write time (rendered and
// sanitized); it is never accepted from the client.
type ContentItem struct {
	ID           string      `json:"id" bson:"_id"`
	ModuleID     string      `json:"module_id" bson:"module_id"`
	Title        string      `json:"title" bson:"title"`
	Kind         ContentKind `json:"kind" bson:"kind"`
	BodyMarkdown string      `json:"body_markdown" bson:"body_markdown"`
	BodyHTML     string      `json:"body_html" bson:"body_html"`
	MediaURL     string      `json:"media_url,omitempty" bson:"media_url,omitempty"`
	Position     int         `json:"position" bson:"position"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}
