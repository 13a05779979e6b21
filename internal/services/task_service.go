package services

import (
	"errors"
	"fmt"

	"github.com/teamhubhq/teamhub-api/internal/models"
	"github.com/teamhubhq/teamhub-api/internal/repository"
	"github.com/teamhubhq/teamhub-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskNotInProject  = errors.New("task does not belong to this project")
	ErrNotProjectCreator = errors.New("only the project creator can perform this action")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrTitleEmpty        = errors.New("title cannot be empty")
	ErrNoAssignees       = errors.New("at least one user id is required")
	ErrAssigneeNotFound  = errors.New("one or more user ids do not exist")
)

// TaskService handles task business logic. Mutating and destructive
// operations require the actor to be the owning project's creator; reads only
// require an authenticated caller.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      models.TaskStatus
	CreatorID   string
}

// UpdateTaskInput represents a partial task update
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

// Create creates a task under a project, defaulting the status to todo
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if _, err := s.userRepo.FindByID(input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		ProjectID:   input.ProjectID,
		CreatedByID: input.CreatorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Project", "CreatedBy")
}

// List returns the tasks owned by a project, paginated
func (s *TaskService) List(projectID string, params utils.PaginationParams) ([]models.Task, int64, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrProjectNotFound
		}
		return nil, 0, fmt.Errorf("failed to find project: %w", err)
	}

	tasks, total, err := s.taskRepo.ListByProject(projectID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// Get returns a task that must belong to the given project. A task that
// exists under a different project fails with a distinguishable error.
func (s *TaskService) Get(projectID, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project", "CreatedBy", "Assignees", "Assignees.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.ProjectID != projectID {
		return nil, ErrTaskNotInProject
	}

	return task, nil
}

// Update applies a partial update to a task. Only the project's creator may
// mutate it, regardless of who created the task itself.
func (s *TaskService) Update(projectID, taskID, actorID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findOwnedTask(projectID, taskID, actorID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Project", "CreatedBy", "Assignees", "Assignees.User")
}

// Delete removes a task. Only the project's creator may delete it.
func (s *TaskService) Delete(projectID, taskID, actorID string) error {
	task, err := s.findOwnedTask(projectID, taskID, actorID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// Assign replaces the task's assignee set. Every user id must resolve to an
// existing user and only the project's creator may assign.
func (s *TaskService) Assign(projectID, taskID, actorID string, userIDs []string) (*models.Task, error) {
	userIDs = uniqueNonEmpty(userIDs)
	if len(userIDs) == 0 {
		return nil, ErrNoAssignees
	}

	task, err := s.findOwnedTask(projectID, taskID, actorID)
	if err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify users: %w", err)
	}
	if int(count) != len(userIDs) {
		return nil, ErrAssigneeNotFound
	}

	if err := s.taskRepo.ReplaceAssignees(task.ID, userIDs); err != nil {
		return nil, fmt.Errorf("failed to assign users: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Project", "CreatedBy", "Assignees", "Assignees.User")
}

// findOwnedTask loads a task, verifies it belongs to the project, and checks
// that the actor is the project's creator.
func (s *TaskService) findOwnedTask(projectID, taskID, actorID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.ProjectID != projectID {
		return nil, ErrTaskNotInProject
	}

	if task.Project.CreatedByID != actorID {
		return nil, ErrNotProjectCreator
	}

	return task, nil
}

func uniqueNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
