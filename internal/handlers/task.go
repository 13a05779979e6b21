package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhubhq/teamhub-api/internal/dto"
	apierrors "github.com/teamhubhq/teamhub-api/internal/errors"
	"github.com/teamhubhq/teamhub-api/internal/logging"
	"github.com/teamhubhq/teamhub-api/internal/middleware"
	"github.com/teamhubhq/teamhub-api/internal/models"
	"github.com/teamhubhq/teamhub-api/internal/services"
	"github.com/teamhubhq/teamhub-api/internal/utils"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create creates a task under a project.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID := c.Param("projectId")
	if projectID == "" {
		apierrors.BadRequest(c, "Project id is required")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		CreatorID:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"data":    dto.ToTaskDTO(*task),
	})
}

// List returns the tasks owned by a project.
func (h *TaskHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.List(c.Param("projectId"), params)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tasks fetched successfully",
		"data":    dto.ToTaskDTOs(tasks),
		"meta": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Get returns a single task that must belong to the project in the path.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.Get(c.Param("projectId"), c.Param("taskId"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task fetched successfully",
		"data":    dto.ToTaskDTO(*task),
	})
}

// Update applies a partial update to a task. Project-creator only.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateTaskRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	input := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.taskService.Update(c.Param("projectId"), c.Param("taskId"), userID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"data":    dto.ToTaskDTO(*task),
	})
}

// Delete removes a task. Project-creator only.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.taskService.Delete(c.Param("projectId"), c.Param("taskId"), userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// Assign replaces the task's assignee set. Project-creator only.
func (h *TaskHandler) Assign(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AssignRequest struct {
		UserIDs []string `json:"userIds" binding:"required,min=1,dive,required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	task, err := h.taskService.Assign(c.Param("projectId"), c.Param("taskId"), userID, req.UserIDs)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users assigned successfully",
		"data":    dto.ToTaskDTO(*task),
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTaskNotInProject):
		apierrors.NotFound(c, "Task does not belong to this project")
	case errors.Is(err, services.ErrNotProjectCreator):
		apierrors.Forbidden(c, "Only the project creator can perform this action")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.Unauthorized(c, "User not found")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Status must be one of: todo, doing, in_review, approved, done")
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, "Title cannot be empty")
	case errors.Is(err, services.ErrNoAssignees):
		apierrors.BadRequest(c, "At least one user id is required")
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.BadRequest(c, "One or more user ids do not exist")
	default:
		logging.Logger.WithError(err).Error("task operation failed")
		apierrors.InternalError(c, "")
	}
}
