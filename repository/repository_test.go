package repository

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhive/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Workspace{}, &models.Task{}, &models.Subtask{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustWorkspace(t *testing.T, repo WorkspaceRepository, userID, name string) *models.Workspace {
	t.Helper()
	ws, err := repo.Create(userID, name)
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	return ws
}

func mustTask(t *testing.T, repo TaskRepository, userID string, workspaceID uint, title string) *models.Task {
	t.Helper()
	task, err := repo.Create(userID, models.CreateTaskRequest{Title: title, WorkspaceID: workspaceID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestWorkspaceCreateAssignsIdentityAndTimestamp(t *testing.T) {
	repo := NewWorkspaceRepository(newTestDB(t))

	first := mustWorkspace(t, repo, "user-a", "Launch")
	second := mustWorkspace(t, repo, "user-a", "Backlog")

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("expected generated ids, got %d and %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both are %d", first.ID)
	}
	if first.CreatedAt.IsZero() || second.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned creation timestamps")
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("timestamps must be non-decreasing: %v then %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestWorkspaceCreateRequiresName(t *testing.T) {
	repo := NewWorkspaceRepository(newTestDB(t))

	if _, err := repo.Create("user-a", "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestWorkspaceListIsolatedPerOwner(t *testing.T) {
	repo := NewWorkspaceRepository(newTestDB(t))

	mustWorkspace(t, repo, "user-a", "A1")
	mustWorkspace(t, repo, "user-a", "A2")
	mustWorkspace(t, repo, "user-b", "B1")

	owned, err := repo.ListByOwner("user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(owned))
	}
	for _, ws := range owned {
		if ws.UserID != "user-a" {
			t.Fatalf("workspace %d leaked from owner %q", ws.ID, ws.UserID)
		}
	}
}

func TestWorkspaceUpdateForeignOwnerReportsNotFound(t *testing.T) {
	repo := NewWorkspaceRepository(newTestDB(t))

	ws := mustWorkspace(t, repo, "user-a", "Private")

	if _, err := repo.UpdateByID("user-b", ws.ID, "Stolen"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}

	kept, err := repo.UpdateByID("user-a", ws.ID, "Renamed")
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if kept.Name != "Renamed" {
		t.Fatalf("expected rename to apply, got %q", kept.Name)
	}
}

func TestWorkspaceDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")
	if _, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Draft outline", TaskID: task.ID}); err != nil {
		t.Fatalf("create subtask: %v", err)
	}

	if err := workspaces.DeleteByID("user-a", ws.ID); err != nil {
		t.Fatalf("delete workspace: %v", err)
	}

	var taskCount, subtaskCount int64
	db.Model(&models.Task{}).Count(&taskCount)
	db.Model(&models.Subtask{}).Count(&subtaskCount)
	if taskCount != 0 || subtaskCount != 0 {
		t.Fatalf("cascade left %d tasks and %d subtasks behind", taskCount, subtaskCount)
	}
}

func TestWorkspaceDeleteMissingReportsNotFound(t *testing.T) {
	repo := NewWorkspaceRepository(newTestDB(t))

	if err := repo.DeleteByID("user-a", 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskCreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")

	if task.Status != models.StatusPending {
		t.Fatalf("expected default status pending, got %q", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", task.Priority)
	}
	if task.Progress != 0 {
		t.Fatalf("expected default progress 0, got %d", task.Progress)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned creation timestamp")
	}
}

func TestTaskCreateMissingWorkspaceLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskRepository(db)

	_, err := tasks.Create("user-a", models.CreateTaskRequest{Title: "Orphan", WorkspaceID: 9999})
	if !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.Task{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, found %d", count)
	}
}

func TestTaskCreateForeignWorkspaceBehavesLikeMissing(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Private")

	_, err := tasks.Create("user-b", models.CreateTaskRequest{Title: "Intrusion", WorkspaceID: ws.ID})
	if !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound for foreign workspace, got %v", err)
	}
}

func TestTaskCreateRejectsUnknownEnumValues(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")

	badStatus := models.TaskStatus("archived")
	if _, err := tasks.Create("user-a", models.CreateTaskRequest{
		Title: "T", WorkspaceID: ws.ID, Status: &badStatus,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for status, got %v", err)
	}

	badPriority := models.TaskPriority("urgent")
	if _, err := tasks.Create("user-a", models.CreateTaskRequest{
		Title: "T", WorkspaceID: ws.ID, Priority: &badPriority,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for priority, got %v", err)
	}

	progress := 150
	if _, err := tasks.Create("user-a", models.CreateTaskRequest{
		Title: "T", WorkspaceID: ws.ID, Progress: &progress,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for progress, got %v", err)
	}
}

func TestTaskUpdateIsPartial(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")

	progress := 40
	status := models.StatusInProgress
	updated, err := tasks.UpdateByID("user-a", task.ID, models.UpdateTaskRequest{
		Progress: &progress,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Write spec" {
		t.Fatalf("title changed on partial update: %q", updated.Title)
	}
	if updated.Progress != 40 || updated.Status != models.StatusInProgress {
		t.Fatalf("supplied fields not applied: progress=%d status=%q", updated.Progress, updated.Status)
	}
	if updated.Priority != models.PriorityMedium {
		t.Fatalf("priority changed on partial update: %q", updated.Priority)
	}
}

func TestTaskUpdateValidatesSuppliedFields(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")

	empty := ""
	if _, err := tasks.UpdateByID("user-a", task.ID, models.UpdateTaskRequest{Title: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}

	progress := -1
	if _, err := tasks.UpdateByID("user-a", task.ID, models.UpdateTaskRequest{Progress: &progress}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative progress, got %v", err)
	}
}

func TestTaskMutationScopedToOwnerChain(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Private")
	task := mustTask(t, tasks, "user-a", ws.ID, "Secret")

	title := "Defaced"
	if _, err := tasks.UpdateByID("user-b", task.ID, models.UpdateTaskRequest{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign update, got %v", err)
	}
	if err := tasks.DeleteByID("user-b", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign delete, got %v", err)
	}
	if _, err := tasks.ListByWorkspace("user-b", ws.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign list, got %v", err)
	}
}

func TestTaskDeleteRemovesSubtasks(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")
	if _, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Outline", TaskID: task.ID}); err != nil {
		t.Fatalf("create subtask: %v", err)
	}

	if err := tasks.DeleteByID("user-a", task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}

	var count int64
	db.Model(&models.Subtask{}).Count(&count)
	if count != 0 {
		t.Fatalf("task delete left %d subtasks behind", count)
	}
}

func TestSubtaskCreateDefaultsToNotCompleted(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")

	subtask, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Draft outline", TaskID: task.ID})
	if err != nil {
		t.Fatalf("create subtask: %v", err)
	}
	if subtask.Completed {
		t.Fatal("new subtask must start incomplete")
	}
	if subtask.ID == 0 || subtask.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got id=%d", subtask.ID)
	}
}

func TestSubtaskCreateMissingTaskLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	subtasks := NewSubtaskRepository(db)

	if _, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Orphan", TaskID: 9999}); !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.Subtask{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, found %d", count)
	}
}

func TestSubtaskUpdateCompletionKeepsTitle(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Launch")
	task := mustTask(t, tasks, "user-a", ws.ID, "Write spec")
	subtask, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Draft outline", TaskID: task.ID})
	if err != nil {
		t.Fatalf("create subtask: %v", err)
	}

	done := true
	updated, err := subtasks.UpdateByID("user-a", subtask.ID, models.UpdateSubtaskRequest{Completed: &done})
	if err != nil {
		t.Fatalf("update subtask: %v", err)
	}

	if !updated.Completed {
		t.Fatal("completion flag not applied")
	}
	if updated.Title != "Draft outline" {
		t.Fatalf("title changed on partial update: %q", updated.Title)
	}
}

func TestSubtaskOperationsScopedToOwnerChain(t *testing.T) {
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	ws := mustWorkspace(t, workspaces, "user-a", "Private")
	task := mustTask(t, tasks, "user-a", ws.ID, "Secret")
	subtask, err := subtasks.Create("user-a", models.CreateSubtaskRequest{Title: "Hidden", TaskID: task.ID})
	if err != nil {
		t.Fatalf("create subtask: %v", err)
	}

	if _, err := subtasks.ListByTask("user-b", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign list, got %v", err)
	}
	done := true
	if _, err := subtasks.UpdateByID("user-b", subtask.ID, models.UpdateSubtaskRequest{Completed: &done}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign update, got %v", err)
	}
	if err := subtasks.DeleteByID("user-b", subtask.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign delete, got %v", err)
	}
}
