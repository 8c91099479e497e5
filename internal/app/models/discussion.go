package models

import "time"

// Discussion defines the discussion thread model
type Discussion struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Department string    `json:"department" db:"department"`
	Upvotes    int       `json:"upvotes" db:"upvotes"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author   *UserSummary `json:"author,omitempty"`
	Comments []Comment    `json:"comments,omitempty"`
}

// Comment defines a comment within a discussion thread
type Comment struct {
	ID           int64     `json:"id" db:"id"`
	Content      string    `json:"content" db:"content"`
	AuthorID     int64     `json:"authorId" db:"author_id"`
	DiscussionID int64     `json:"discussionId" db:"discussion_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *UserSummary `json:"author,omitempty"`
}
