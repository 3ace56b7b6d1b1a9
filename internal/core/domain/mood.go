package domain

import "time"

// MoodType is the fixed 7-value set of moods a patient can log.
type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodCalm     MoodType = "calm"
	MoodNeutral  MoodType = "neutral"
	MoodSad      MoodType = "sad"
	MoodAnxious  MoodType = "anxious"
	MoodAngry    MoodType = "angry"
	MoodStressed MoodType = "stressed"
)

// MoodTypes lists every valid mood type, in display order.
var MoodTypes = []MoodType{
	MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAnxious, MoodAngry, MoodStressed,
}

// ValidMoodType reports whether s is one of the seven mood types.
func ValidMoodType(s string) bool {
	for _, m := range MoodTypes {
		if MoodType(s) == m {
			return true
		}
	}
	return false
}

const (
	MoodScoreMin = 1
	MoodScoreMax = 10
)

// MoodEntry is a single patient mood log. EntryTimestamp is set server-side
// at call time; clients cannot backdate entries.
type MoodEntry struct {
	ID             string    `json:"id" bson:"_id"`
	PatientID      string    `json:"patient_id" bson:"patient_id"`
	MoodType       MoodType  `json:"mood_type" bson:"mood_type"`
	MoodScore      int       `json:"mood_score" bson:"mood_score"`
	Note           string    `json:"note,omitempty" bson:"note,omitempty"`
	EntryTimestamp time.Time `json:"entry_timestamp" bson:"entry_timestamp"`
}
