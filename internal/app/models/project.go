package models

import "time"

// Project defines the collaboration project model based on the 'projects' table
type Project struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Skills      []string      `json:"skills" db:"skills"`
	Status      ProjectStatus `json:"status" db:"status"`
	CreatedByID int64         `json:"createdById" db:"created_by_id"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`

	// Related entities
	CreatedBy *UserSummary    `json:"createdBy,omitempty"`
	Members   []ProjectMember `json:"members"`
}

// ProjectMember associates a user to a project with a role.
// Unique per (user, project); the creator is inserted as leader.
type ProjectMember struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ProjectID int64     `json:"projectId" db:"project_id"`
	Role      string    `json:"role" db:"role"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *UserSummary `json:"user,omitempty"`
}
