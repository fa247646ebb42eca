package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/repository"
)

type WorkspaceController struct {
	repo repository.WorkspaceRepository
}

func NewWorkspaceController(repo repository.WorkspaceRepository) *WorkspaceController {
	return &WorkspaceController{repo: repo}
}

// List godoc
// @Summary      List the caller's workspaces
// @Tags         workspaces
// @Produce      json
// @Success      200 {object} models.APIResponse{data=[]models.Workspace}
// @Failure      401 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /workspaces [get]
func (wc *WorkspaceController) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	workspaces, err := wc.repo.ListByOwner(uid)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(workspaces, ""))
}

// Create godoc
// @Summary      Create a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        workspace body models.CreateWorkspaceRequest true "workspace to create"
// @Success      201 {object} models.APIResponse{data=models.Workspace}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /workspaces [post]
func (wc *WorkspaceController) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("name is required"))
		return
	}

	workspace, err := wc.repo.Create(uid, req.Name)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.OK(workspace, "Workspace created"))
}

// Update godoc
// @Summary      Rename a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id path int true "workspace id"
// @Param        workspace body models.UpdateWorkspaceRequest true "new name"
// @Success      200 {object} models.APIResponse{data=models.Workspace}
// @Failure      400 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /workspaces/{id} [put]
func (wc *WorkspaceController) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("name is required"))
		return
	}

	workspace, err := wc.repo.UpdateByID(uid, id, req.Name)
	if err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(workspace, "Workspace updated"))
}

// Delete godoc
// @Summary      Delete a workspace and everything in it
// @Tags         workspaces
// @Produce      json
// @Param        id path int true "workspace id"
// @Success      200 {object} models.APIResponse
// @Failure      401 {object} models.APIResponse
// @Failure      404 {object} models.APIResponse
// @Security     BearerAuth
// @Router       /workspaces/{id} [delete]
func (wc *WorkspaceController) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := wc.repo.DeleteByID(uid, id); err != nil {
		writeRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(nil, "Workspace deleted"))
}
