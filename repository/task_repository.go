package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskhive/models"
)

// TaskRepository is the persistence gateway for tasks. Ownership is
// resolved transitively through the parent workspace, so a task in
// another user's workspace behaves exactly like a missing one.
type TaskRepository interface {
	ListByWorkspace(userID string, workspaceID uint) ([]models.Task, error)
	Create(userID string, req models.CreateTaskRequest) (*models.Task, error)
	UpdateByID(userID string, id uint, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteByID(userID string, id uint) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListByWorkspace(userID string, workspaceID uint) ([]models.Task, error) {
	var workspace models.Workspace
	err := r.db.Where("id = ? AND user_id = ?", workspaceID, userID).First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch workspace %d: %w", workspaceID, err)
	}

	var tasks []models.Task
	if err := r.db.Where("workspace_id = ?", workspaceID).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks of workspace %d: %w", workspaceID, err)
	}
	return tasks, nil
}

func (r *taskRepository) Create(userID string, req models.CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	task := models.Task{
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.StatusPending,
		Priority:    models.PriorityMedium,
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}

	if !task.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, task.Status)
	}
	if !task.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, task.Priority)
	}
	if task.Progress < 0 || task.Progress > 100 {
		return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}

	var workspace models.Workspace
	err := r.db.Where("id = ? AND user_id = ?", req.WorkspaceID, userID).First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: workspace %d", ErrParentNotFound, req.WorkspaceID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch workspace %d: %w", req.WorkspaceID, err)
	}

	if err := r.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

func (r *taskRepository) UpdateByID(userID string, id uint, req models.UpdateTaskRequest) (*models.Task, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *req.Priority)
		}
		fields["priority"] = *req.Priority
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
		}
		fields["progress"] = *req.Progress
	}

	task, err := r.owned(r.db, userID, id)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return task, nil
	}
	if err := r.db.Model(task).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return task, nil
}

// DeleteByID removes the task and its subtasks in a single transaction.
func (r *taskRepository) DeleteByID(userID string, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		task, err := r.owned(tx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return fmt.Errorf("delete subtasks of task %d: %w", id, err)
		}
		if err := tx.Delete(task).Error; err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		return nil
	})
}

func (r *taskRepository) owned(tx *gorm.DB, userID string, id uint) (*models.Task, error) {
	var task models.Task
	err := tx.
		Joins("JOIN workspaces ON workspaces.id = tasks.workspace_id").
		Where("tasks.id = ? AND workspaces.user_id = ?", id, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch task %d: %w", id, err)
	}
	return &task, nil
}
