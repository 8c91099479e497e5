package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/services"
	"github.com/campusconnect/backend/internal/middleware"
)

// Controllers bundles every controller for route registration
type Controllers struct {
	Auth       *AuthController
	Event      *EventController
	Resource   *ResourceController
	Project    *ProjectController
	Mentorship *MentorshipController
	Discussion *DiscussionController
}

// NewControllers wires all controllers over the shared services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(svcs.Auth),
		Event:      NewEventController(svcs.Event),
		Resource:   NewResourceController(svcs.Resource),
		Project:    NewProjectController(svcs.Project),
		Mentorship: NewMentorshipController(svcs.Mentorship),
		Discussion: NewDiscussionController(svcs.Discussion),
	}
}

// currentUser reads the authenticated identity placed by the auth middleware
func currentUser(ctx *gin.Context) (int64, models.UserRole) {
	userID, _ := ctx.Get(middleware.ContextUserIDKey)
	role, _ := ctx.Get(middleware.ContextRoleKey)

	id, _ := userID.(int64)
	roleStr, _ := role.(string)
	return id, models.UserRole(roleStr)
}

// parseIDParam reads a positive integer path parameter. A malformed value
// gets a 400 written and ok=false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// optionalQuery returns a pointer to the query value, nil when absent
func optionalQuery(ctx *gin.Context, name string) *string {
	if value := ctx.Query(name); value != "" {
		return &value
	}
	return nil
}
