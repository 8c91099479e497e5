package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/services"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// MentorshipController handles mentorship request operations
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{mentorshipService: mentorshipService}
}

// List handles GET /mentorship/requests, scoped by the requester's role
func (c *MentorshipController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	userID, role := currentUser(ctx)
	resp, err := c.mentorshipService.List(ctx.Request.Context(), userID, role, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /mentorship/requests
func (c *MentorshipController) Create(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, role := currentUser(ctx)
	request, err := c.mentorshipService.Create(ctx.Request.Context(), &req, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, request)
}

// Accept handles PUT /mentorship/requests/:id/accept
func (c *MentorshipController) Accept(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, role := currentUser(ctx)
	request, err := c.mentorshipService.Accept(ctx.Request.Context(), id, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// UpdateStatus handles PUT /mentorship/requests/:id
func (c *MentorshipController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, role := currentUser(ctx)
	request, err := c.mentorshipService.UpdateStatus(ctx.Request.Context(), id, req.Status, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}
