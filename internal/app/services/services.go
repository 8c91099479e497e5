package services

import (
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/repositories"
	"github.com/campusconnect/backend/internal/pkg/auth"
	"github.com/campusconnect/backend/internal/pkg/email"
	"github.com/campusconnect/backend/internal/pkg/filestorage"
)

// Services bundles every service for dependency injection
type Services struct {
	Auth       AuthService
	Event      EventService
	Resource   ResourceService
	Project    ProjectService
	Mentorship MentorshipService
	Discussion DiscussionService
}

// NewServices wires all services over the shared repositories and clients
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailSender email.Service,
	fileStorage filestorage.Uploader,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, jwtService, emailSender, logger),
		Event:      NewEventService(repos.Event, fileStorage, logger),
		Resource:   NewResourceService(repos.Resource, fileStorage, logger),
		Project:    NewProjectService(repos.Project, logger),
		Mentorship: NewMentorshipService(repos.Mentorship, logger),
		Discussion: NewDiscussionService(repos.Discussion, logger),
	}
}
