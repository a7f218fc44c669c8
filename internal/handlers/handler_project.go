package handlers

import (
	"errors"
	"io"
	"net/http"

	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectRoutes registers all project-related routes.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
		projects.PATCH("/:projectID", h.updateProject)
		projects.POST("/:projectID/folders", h.addFolderToProject)
		projects.DELETE("/:projectID", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project named "New Project" or "New Project N". An initial folder is attached only if the user owns it.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest false "Optional initial folder"
// @Success 201 {object} dto.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	// The body is optional.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, req.InitialFolderID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.ToProjectResponse(project)))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.ProjectResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToProjectListResponse(projects)))
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.Envelope{data=dto.ProjectResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, c.Param("projectID"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToProjectResponse(project)))
}

// updateProject godoc
// @Summary Update a project
// @Description Updates the name and/or initialized flag. At least one field is required.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [patch]
func (h *projectHandler) updateProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, c.Param("projectID"), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToProjectResponse(project)))
}

// addFolderToProject godoc
// @Summary Attach a folder to a project
// @Description Appends a folder id owned by the user to the project. Attaching the same folder twice is a no-op.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param folder body dto.AddFolderToProjectRequest true "Folder to attach"
// @Success 200 {object} dto.Envelope{data=dto.ProjectResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Project or folder not found"
// @Security BearerAuth
// @Router /projects/{projectID}/folders [post]
func (h *projectHandler) addFolderToProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddFolderToProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.AddFolderToProject(c.Request.Context(), userID, c.Param("projectID"), req.FolderID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToProjectResponse(project)))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Deletes the project record. Attached folders are untouched.
// @Tags projects
// @Param projectID path string true "Project ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, c.Param("projectID")); err != nil {
		respondError(c, err, "")
		return
	}

	c.Status(http.StatusNoContent)
}
