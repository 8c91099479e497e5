package dto

// ProjectFilter carries list filters for projects
type ProjectFilter struct {
	Status *string
	Skills []string // match-any
	Search *string
	Page   int
	Limit  int
}

// CreateProjectRequest is the payload for POST /projects
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,min=3"`
	Description string   `json:"description" binding:"required,min=10"`
	Skills      []string `json:"skills" binding:"required"`
}

// UpdateProjectRequest is the payload for PUT /projects/:id. All fields optional.
type UpdateProjectRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3"`
	Description *string  `json:"description" binding:"omitempty,min=10"`
	Skills      []string `json:"skills"`
	Status      *string  `json:"status"`
}
