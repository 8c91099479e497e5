package dto

import (
	"github.com/campusconnect/backend/internal/app/models"
)

// DiscussionFilter carries list filters for discussions
type DiscussionFilter struct {
	Department *string
	Search     *string
	Page       int
	Limit      int
}

// CreateDiscussionRequest is the payload for POST /discussions
type CreateDiscussionRequest struct {
	Title      string `json:"title" binding:"required,min=3"`
	Content    string `json:"content" binding:"required,min=10"`
	Department string `json:"department" binding:"required"`
}

// CreateCommentRequest is the payload for POST /discussions/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// DiscussionListItem is a discussion with its latest comments and a count.
// The embedded Comments hold only the 3 most recent; commentCount is the
// full count.
type DiscussionListItem struct {
	models.Discussion
	CommentCount int `json:"commentCount"`
}

// UpvoteResponse reports the new upvote total
type UpvoteResponse struct {
	Upvotes int `json:"upvotes"`
}
