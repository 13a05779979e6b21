package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/teamhubhq/teamhub-api/internal/database"
	"github.com/teamhubhq/teamhub-api/internal/middleware"
	"github.com/teamhubhq/teamhub-api/internal/models"
	"github.com/teamhubhq/teamhub-api/internal/repository"
	"github.com/teamhubhq/teamhub-api/internal/services"
	"github.com/teamhubhq/teamhub-api/internal/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires an in-memory database behind the full route table, mirroring
// the server wiring in cmd/server.
type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *token.Manager
	authService *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.TaskAssignee{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokens := token.NewManager("test-secret")
	authService := services.NewAuthService(userRepo, tokens)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/users", middleware.RequireAuth(tokens), authHandler.ListUsers)
	}

	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:projectId", projectHandler.Get)
		projects.PUT("/:projectId", projectHandler.Update)
		projects.DELETE("/:projectId", projectHandler.Delete)

		tasks := projects.Group("/:projectId/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/:taskId", taskHandler.Get)
			tasks.PATCH("/:taskId", taskHandler.Update)
			tasks.DELETE("/:taskId", taskHandler.Delete)
			tasks.PATCH("/:taskId/assign", taskHandler.Assign)
		}
	}

	return &testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProject(t *testing.T, name, creatorID string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:        name,
		Description: "Test Description",
		CreatedByID: creatorID,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) createTask(t *testing.T, title, projectID, creatorID string) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:       title,
		Description: "Test Description",
		ProjectID:   projectID,
		CreatedByID: creatorID,
	}
	require.NoError(t, e.db.Create(task).Error)
	return task
}

// request performs an HTTP request against the test router, authenticated as
// the given user when one is provided.
func (e *testEnv) request(t *testing.T, method, url string, body any, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	if user != nil {
		accessToken, err := e.tokens.Issue(user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
