package dto

import (
	"time"

	"github.com/teamhubhq/teamhub-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedBy   *UserSummaryDTO `json:"createdBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProjectCreatedDTO is the creation response body. Description is
// intentionally omitted.
type ProjectCreatedDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedBy UserSummaryDTO `json:"createdBy"`
}

// ProjectListMeta describes a page of the project listing
type ProjectListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ProjectListDTO is the paginated project listing payload
type ProjectListDTO struct {
	Items []ProjectDTO    `json:"items"`
	Meta  ProjectListMeta `json:"meta"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	// Include creator if preloaded
	if project.CreatedBy.ID != "" {
		createdBy := ToUserSummaryDTO(project.CreatedBy)
		dto.CreatedBy = &createdBy
	}

	return dto
}

// ToProjectCreatedDTO converts a freshly created project to its response shape
func ToProjectCreatedDTO(project models.Project) ProjectCreatedDTO {
	return ProjectCreatedDTO{
		ID:        project.ID,
		Name:      project.Name,
		CreatedBy: ToUserSummaryDTO(project.CreatedBy),
	}
}

// ToProjectListDTO converts a slice of projects to the paginated listing payload
func ToProjectListDTO(projects []models.Project, page, limit int, total int64) ProjectListDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return ProjectListDTO{
		Items: items,
		Meta: ProjectListMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
