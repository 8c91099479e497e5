package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/services"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// List handles GET /events
func (c *EventController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	filter := &dto.EventFilter{
		Category: optionalQuery(ctx, "category"),
		Search:   optionalQuery(ctx, "search"),
		Page:     page,
		Limit:    limit,
	}

	userID, _ := currentUser(ctx)
	resp, err := c.eventService.List(ctx.Request.Context(), filter, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /events. Accepts JSON or multipart form with an
// optional image part.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	// optional image; only present on multipart requests
	image, _ := ctx.FormFile("image")

	userID, _ := currentUser(ctx)
	event, err := c.eventService.Create(ctx.Request.Context(), &req, image, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// Update handles PUT /events/:id
func (c *EventController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, role := currentUser(ctx)
	event, err := c.eventService.Update(ctx.Request.Context(), id, &req, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id
func (c *EventController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, role := currentUser(ctx)
	if err := c.eventService.Delete(ctx.Request.Context(), id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}

// RSVP handles POST /events/:id/rsvp as a toggle
func (c *EventController) RSVP(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(ctx)
	resp, err := c.eventService.ToggleRSVP(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
