package dto

import (
	"time"

	"github.com/teamhubhq/teamhub-api/internal/models"
)

// ProjectRefDTO identifies the owning project in task responses
type ProjectRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Project     *ProjectRefDTO    `json:"project,omitempty"`
	CreatedBy   *UserSummaryDTO   `json:"createdBy,omitempty"`
	Assignees   []UserSummaryDTO  `json:"assignees,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include project if preloaded
	if task.Project.ID != "" {
		dto.Project = &ProjectRefDTO{
			ID:   task.Project.ID,
			Name: task.Project.Name,
		}
	}

	// Include creator if preloaded
	if task.CreatedBy.ID != "" {
		createdBy := ToUserSummaryDTO(task.CreatedBy)
		dto.CreatedBy = &createdBy
	}

	// Include assignees if preloaded
	if len(task.Assignees) > 0 {
		dto.Assignees = make([]UserSummaryDTO, len(task.Assignees))
		for i, assignee := range task.Assignees {
			dto.Assignees[i] = ToUserSummaryDTO(assignee.User)
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
