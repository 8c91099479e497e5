package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/services"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// DiscussionController handles discussion and comment operations
type DiscussionController struct {
	discussionService services.DiscussionService
}

// NewDiscussionController creates a new DiscussionController
func NewDiscussionController(discussionService services.DiscussionService) *DiscussionController {
	return &DiscussionController{discussionService: discussionService}
}

// List handles GET /discussions
func (c *DiscussionController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	filter := &dto.DiscussionFilter{
		Department: optionalQuery(ctx, "department"),
		Search:     optionalQuery(ctx, "search"),
		Page:       page,
		Limit:      limit,
	}

	resp, err := c.discussionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOne handles GET /discussions/:id
func (c *DiscussionController) GetOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	discussion, err := c.discussionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, discussion)
}

// Create handles POST /discussions
func (c *DiscussionController) Create(ctx *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, _ := currentUser(ctx)
	discussion, err := c.discussionService.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, discussion)
}

// AddComment handles POST /discussions/:id/comments
func (c *DiscussionController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, _ := currentUser(ctx)
	comment, err := c.discussionService.AddComment(ctx.Request.Context(), id, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// Upvote handles POST /discussions/:id/upvote
func (c *DiscussionController) Upvote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.discussionService.Upvote(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /discussions/:id
func (c *DiscussionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, role := currentUser(ctx)
	if err := c.discussionService.Delete(ctx.Request.Context(), id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Discussion deleted successfully"})
}
