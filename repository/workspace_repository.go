package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskhive/models"
)

// WorkspaceRepository is the persistence gateway for workspaces. Every
// operation is scoped to the owning user.
type WorkspaceRepository interface {
	ListByOwner(userID string) ([]models.Workspace, error)
	Create(userID, name string) (*models.Workspace, error)
	UpdateByID(userID string, id uint, name string) (*models.Workspace, error)
	DeleteByID(userID string, id uint) error
}

type workspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) ListByOwner(userID string) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := r.db.Where("user_id = ?", userID).Find(&workspaces).Error; err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}

func (r *workspaceRepository) Create(userID, name string) (*models.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	workspace := models.Workspace{UserID: userID, Name: name}
	if err := r.db.Create(&workspace).Error; err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &workspace, nil
}

func (r *workspaceRepository) UpdateByID(userID string, id uint, name string) (*models.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	workspace, err := r.owned(r.db, userID, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(workspace).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("update workspace %d: %w", id, err)
	}
	return workspace, nil
}

// DeleteByID removes the workspace together with its tasks and their
// subtasks in a single transaction, so no orphans survive a failure.
func (r *workspaceRepository) DeleteByID(userID string, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		workspace, err := r.owned(tx, userID, id)
		if err != nil {
			return err
		}

		taskIDs := tx.Model(&models.Task{}).Select("id").Where("workspace_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Subtask{}).Error; err != nil {
			return fmt.Errorf("delete subtasks of workspace %d: %w", id, err)
		}
		if err := tx.Where("workspace_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("delete tasks of workspace %d: %w", id, err)
		}
		if err := tx.Delete(workspace).Error; err != nil {
			return fmt.Errorf("delete workspace %d: %w", id, err)
		}
		return nil
	})
}

func (r *workspaceRepository) owned(tx *gorm.DB, userID string, id uint) (*models.Workspace, error) {
	var workspace models.Workspace
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch workspace %d: %w", id, err)
	}
	return &workspace, nil
}
