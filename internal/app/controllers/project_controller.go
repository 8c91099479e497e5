package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/services"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// ProjectController handles project related operations
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// List handles GET /projects
func (c *ProjectController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	filter := &dto.ProjectFilter{
		Status: optionalQuery(ctx, "status"),
		Skills: parseSkillsQuery(ctx),
		Search: optionalQuery(ctx, "search"),
		Page:   page,
		Limit:  limit,
	}

	resp, err := c.projectService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /projects
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, _ := currentUser(ctx)
	project, err := c.projectService.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// Join handles POST /projects/:id/join
func (c *ProjectController) Join(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := currentUser(ctx)
	project, err := c.projectService.Join(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Update handles PUT /projects/:id
func (c *ProjectController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID, role := currentUser(ctx)
	project, err := c.projectService.Update(ctx.Request.Context(), id, &req, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, role := currentUser(ctx)
	if err := c.projectService.Delete(ctx.Request.Context(), id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}

// parseSkillsQuery accepts repeated skills params or one comma-separated value
func parseSkillsQuery(ctx *gin.Context) []string {
	var skills []string
	for _, raw := range ctx.QueryArray("skills") {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				skills = append(skills, skill)
			}
		}
	}
	return skills
}
