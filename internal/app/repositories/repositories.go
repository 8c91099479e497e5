package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection
type Repositories struct {
	User       *UserRepository
	Event      *EventRepository
	Resource   *ResourceRepository
	Project    *ProjectRepository
	Mentorship *MentorshipRepository
	Discussion *DiscussionRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Event:      NewEventRepository(db),
		Resource:   NewResourceRepository(db),
		Project:    NewProjectRepository(db),
		Mentorship: NewMentorshipRepository(db),
		Discussion: NewDiscussionRepository(db),
	}
}
