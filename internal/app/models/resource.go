package models

import "time"

// Resource defines the shared study resource model based on the 'resources' table
type Resource struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Subject      string    `json:"subject" db:"subject"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	FileType     string    `json:"fileType" db:"file_type"`
	Downloads    int       `json:"downloads" db:"downloads"`
	UploadedByID int64     `json:"uploadedById" db:"uploaded_by_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	UploadedBy *UserSummary `json:"uploadedBy,omitempty"`
}
