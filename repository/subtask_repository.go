package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskhive/models"
)

// SubtaskRepository is the persistence gateway for subtasks. Ownership
// runs subtask -> task -> workspace -> user.
type SubtaskRepository interface {
	ListByTask(userID string, taskID uint) ([]models.Subtask, error)
	Create(userID string, req models.CreateSubtaskRequest) (*models.Subtask, error)
	UpdateByID(userID string, id uint, req models.UpdateSubtaskRequest) (*models.Subtask, error)
	DeleteByID(userID string, id uint) error
}

type subtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) SubtaskRepository {
	return &subtaskRepository{db: db}
}

func (r *subtaskRepository) ListByTask(userID string, taskID uint) ([]models.Subtask, error) {
	if _, err := r.ownedTask(userID, taskID); err != nil {
		return nil, err
	}

	var subtasks []models.Subtask
	if err := r.db.Where("task_id = ?", taskID).Find(&subtasks).Error; err != nil {
		return nil, fmt.Errorf("list subtasks of task %d: %w", taskID, err)
	}
	return subtasks, nil
}

func (r *subtaskRepository) Create(userID string, req models.CreateSubtaskRequest) (*models.Subtask, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if _, err := r.ownedTask(userID, req.TaskID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrParentNotFound, req.TaskID)
		}
		return nil, err
	}

	subtask := models.Subtask{TaskID: req.TaskID, Title: req.Title}
	if err := r.db.Create(&subtask).Error; err != nil {
		return nil, fmt.Errorf("create subtask: %w", err)
	}
	return &subtask, nil
}

func (r *subtaskRepository) UpdateByID(userID string, id uint, req models.UpdateSubtaskRequest) (*models.Subtask, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		fields["title"] = *req.Title
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}

	subtask, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return subtask, nil
	}
	if err := r.db.Model(subtask).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update subtask %d: %w", id, err)
	}
	return subtask, nil
}

func (r *subtaskRepository) DeleteByID(userID string, id uint) error {
	subtask, err := r.owned(userID, id)
	if err != nil {
		return err
	}

	if err := r.db.Delete(subtask).Error; err != nil {
		return fmt.Errorf("delete subtask %d: %w", id, err)
	}
	return nil
}

func (r *subtaskRepository) owned(userID string, id uint) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.
		Joins("JOIN tasks ON tasks.id = subtasks.task_id").
		Joins("JOIN workspaces ON workspaces.id = tasks.workspace_id").
		Where("subtasks.id = ? AND workspaces.user_id = ?", id, userID).
		First(&subtask).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch subtask %d: %w", id, err)
	}
	return &subtask, nil
}

func (r *subtaskRepository) ownedTask(userID string, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Joins("JOIN workspaces ON workspaces.id = tasks.workspace_id").
		Where("tasks.id = ? AND workspaces.user_id = ?", taskID, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch task %d: %w", taskID, err)
	}
	return &task, nil
}
