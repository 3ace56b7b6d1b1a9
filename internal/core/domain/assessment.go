package domain

import "time"

// Assessment is a questionnaire attached to a module.
type Assessment struct {
	ID           string    `json:"id" bson:"_id"`
	ModuleID     string    `json:"module_id" bson:"module_id"`
	Title        string    `json:"title" bson:"title"`
	Instructions string    `json:"instructions" bson:"instructions"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// QuestionKind classifies how a question is answered.
type QuestionKind string

const (
	QuestionScale          QuestionKind = "scale"
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionFreeText       QuestionKind = "free_text"
)

// Question belongs to an assessment. Scale questions answer on [ScaleMin,
// ScaleMax]; multiple-choice questions carry at least two choices.
type Question struct {
	ID           string       `json:"id" bson:"_id"`
	AssessmentID string       `json:"assessment_id" bson:"assessment_id"`
	Prompt       string       `json:"prompt" bson:"prompt"`
	Kind         QuestionKind `json:"kind" bson:"kind"`
	Choices      []string     `json:"choices,omitempty" bson:"choices,omitempty"`
	ScaleMin     int          `json:"scale_min,omitempty" bson:"scale_min,omitempty"`
	ScaleMax     int          `json:"scale_max,omitempty" bson:"scale_max,omitempty"`
	Position     int          `json:"position" bson:"position"`
}
