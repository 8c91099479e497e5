package dto

// CreateMentorshipRequest is the payload for POST /mentorship/requests
type CreateMentorshipRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=10"`
}

// UpdateMentorshipStatusRequest is the payload for PUT /mentorship/requests/:id
type UpdateMentorshipStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACCEPTED COMPLETED DECLINED"`
}
