package repository

import (
	"github.com/teamhubhq/teamhub-api/internal/models"
	"github.com/teamhubhq/teamhub-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns every registered user
	List() ([]models.User, error)

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []string) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Project, error)

	// List retrieves projects with pagination
	List(params utils.PaginationParams) ([]models.Project, int64, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and cascades to its tasks
	Delete(id string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Task, error)

	// ListByProject retrieves tasks scoped to a project with pagination
	ListByProject(projectID string, params utils.PaginationParams) ([]models.Task, int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task and removes its assignee rows
	Delete(id string) error

	// ReplaceAssignees replaces the task's assignee set atomically
	ReplaceAssignees(taskID string, userIDs []string) error
}
