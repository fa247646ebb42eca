package models

import "time"

// CreateWorkspaceRequest creates a workspace for the caller.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateWorkspaceRequest renames a workspace.
type UpdateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTaskRequest creates a task inside a workspace. Status, priority
// and progress fall back to their column defaults when omitted.
type CreateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	WorkspaceID uint          `json:"workspaceId" binding:"required"`
	Description string        `json:"description"`
	DueDate     *time.Time    `json:"dueDate"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	Progress    *int          `json:"progress"`
}

// UpdateTaskRequest is a partial update; nil fields keep their prior value.
type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	DueDate     *time.Time    `json:"dueDate"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	Progress    *int          `json:"progress"`
}

// CreateSubtaskRequest creates a subtask inside a task.
type CreateSubtaskRequest struct {
	Title  string `json:"title" binding:"required"`
	TaskID uint   `json:"taskId" binding:"required"`
}

// UpdateSubtaskRequest is a partial update; nil fields keep their prior value.
type UpdateSubtaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
