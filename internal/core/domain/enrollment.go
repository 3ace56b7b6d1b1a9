package domain

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// Enrollment links a patient to a program. At most one enrollment exists per
// (patient, program) pair.
type Enrollment struct {
	ID         string           `json:"id" bson:"_id"`
	PatientID  string           `json:"patient_id" bson:"patient_id"`
	ProgramID  string           `json:"program_id" bson:"program_id"`
	Status     EnrollmentStatus `json:"status" bson:"status"`
	EnrolledAt time.Time        `json:"enrolled_at" bson:"enrolled_at"`
}
