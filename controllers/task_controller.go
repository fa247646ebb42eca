package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/repository"
)

type TaskController struct {
	repo repository.TaskRepository
}

func NewTaskController(repo repository.TaskRepository) *TaskController {
	return &TaskController{repo: repo}
}

// List godoc
// @Summary      List tasks in a workspace
// @Tags         tasks
// @Produce      json
// @Param        workspaceId query int true "workspace id"
// @Success      200 {object} models.APIResponse{data=[]models.Task}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /tasks [get]
func (tc *TaskController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	workspaceID, err := strconv.ParseUint(c.Query("workspaceId"), 10, 32)
	if err != nil || workspaceID == 0 {
		c.JSON(http.StatusBadRequest, models.Fail("workspaceId is required"))
		return
	}

	tasks, err := tc.repo.ListByWorkspace(uid, uint(workspaceID))
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(tasks, ""))
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task body models.CreateTaskRequest true "task to create"
// @Success      201 {object} models.APIResponse{data=models.Task}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /tasks [post]
func (tc *TaskController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("title and workspaceId are required"))
		return
	}

	task, err := tc.repo.Create(uid, req)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.OK(task, "Task created"))
}

// Update godoc
// @Summary      Update a task
// @Description  Partial update: only the supplied fields change.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path int true "task id"
// @Param        task body models.UpdateTaskRequest true "fields to change"
// @Success      200 {object} models.APIResponse{data=models.Task}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (tc *TaskController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	task, err := tc.repo.UpdateByID(uid, id, req)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(task, "Task updated"))
}

// Delete godoc
// @Summary      Delete a task and its subtasks
// @Tags         tasks
// @Produce      json
// @Param        id path int true "task id"
// @Success      200 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (tc *TaskController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.repo.DeleteByID(uid, id); err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(nil, "Task deleted"))
}
