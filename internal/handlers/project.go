package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhubhq/teamhub-api/internal/dto"
	apierrors "github.com/teamhubhq/teamhub-api/internal/errors"
	"github.com/teamhubhq/teamhub-api/internal/logging"
	"github.com/teamhubhq/teamhub-api/internal/middleware"
	"github.com/teamhubhq/teamhub-api/internal/services"
	"github.com/teamhubhq/teamhub-api/internal/utils"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create persists a project owned by the caller.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required,min=3"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	project, err := h.projectService.Create(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"data":    dto.ToProjectCreatedDTO(*project),
	})
}

// List returns all projects with pagination metadata.
func (h *ProjectHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.List(params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projects fetched successfully",
		"data":    dto.ToProjectListDTO(projects, params.Page, params.Limit, total),
	})
}

// Get returns a single project.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.Get(c.Param("projectId"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project fetched successfully",
		"data":    dto.ToProjectDTO(*project),
	})
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		Name        *string `json:"name" binding:"omitempty,min=3"`
		Description *string `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	project, err := h.projectService.Update(c.Param("projectId"), services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"data":    dto.ToProjectDTO(*project),
	})
}

// Delete removes a project and all of its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("projectId")); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		logging.Logger.WithError(err).Error("project operation failed")
		apierrors.InternalError(c, "")
	}
}
