package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/repository"
)

type SubtaskController struct {
	repo repository.SubtaskRepository
}

func NewSubtaskController(repo repository.SubtaskRepository) *SubtaskController {
	return &SubtaskController{repo: repo}
}

// List godoc
// @Summary      List subtasks of a task
// @Tags         subtasks
// @Produce      json
// @Param        taskId query int true "task id"
// @Success      200 {object} models.APIResponse{data=[]models.Subtask}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /subtasks [get]
func (sc *SubtaskController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	taskID, err := strconv.ParseUint(c.Query("taskId"), 10, 32)
	if err != nil || taskID == 0 {
		c.JSON(http.StatusBadRequest, models.Fail("taskId is required"))
		return
	}

	subtasks, err := sc.repo.ListByTask(uid, uint(taskID))
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(subtasks, ""))
}

// Create godoc
// @Summary      Create a subtask
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Param        subtask body models.CreateSubtaskRequest true "subtask to create"
// @Success      201 {object} models.APIResponse{data=models.Subtask}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /subtasks [post]
func (sc *SubtaskController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req models.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("title and taskId are required"))
		return
	}

	subtask, err := sc.repo.Create(uid, req)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.OK(subtask, "Subtask created"))
}

// Update godoc
// @Summary      Update a subtask
// @Description  Partial update: only the supplied fields change.
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Param        id path int true "subtask id"
// @Param        subtask body models.UpdateSubtaskRequest true "fields to change"
// @Success      200 {object} models.APIResponse{data=models.Subtask}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /subtasks/{id} [put]
func (sc *SubtaskController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	subtask, err := sc.repo.UpdateByID(uid, id, req)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(subtask, "Subtask updated"))
}

// Delete godoc
// @Summary      Delete a subtask
// @Tags         subtasks
// @Produce      json
// @Param        id path int true "subtask id"
// @Success      200 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /subtasks/{id} [delete]
func (sc *SubtaskController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.repo.DeleteByID(uid, id); err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(nil, "Subtask deleted"))
}
