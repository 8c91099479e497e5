package models

import "time"

// MentorshipRequest is a student-initiated ticket an alumni can accept,
// binding a mentor.
type MentorshipRequest struct {
	ID          int64            `json:"id" db:"id"`
	Title       string           `json:"title" db:"title"`
	Description string           `json:"description" db:"description"`
	Status      MentorshipStatus `json:"status" db:"status"`
	StudentID   int64            `json:"studentId" db:"student_id"`
	MentorID    *int64           `json:"mentorId,omitempty" db:"mentor_id"` // bound on accept
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`

	// Related entities
	Student *UserSummary `json:"student,omitempty"`
}
