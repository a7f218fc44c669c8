package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// folderHandler handles HTTP requests related to folders.
type folderHandler struct {
	folderService portssvc.FolderSvcFacade
}

// newFolderHandler creates a new folderHandler.
func newFolderHandler(fs portssvc.FolderSvcFacade) *folderHandler {
	return &folderHandler{
		folderService: fs,
	}
}

// registerFolderRoutes registers all folder-related routes.
func registerFolderRoutes(rg *gin.RouterGroup, folderService portssvc.FolderSvcFacade) {
	h := newFolderHandler(folderService)

	folders := rg.Group("/folders")
	{
		folders.POST("", h.createFolder)
		folders.GET("", h.listFolders)
		folders.GET("/by-name/:name", h.getFolderByName)
		folders.PUT("/:folderID", h.renameFolder)
		folders.DELETE("/:folderID", h.deleteFolder)
	}
}

// createFolder godoc
// @Summary Create a folder
// @Description Creates a folder and its backing directory. The name is sanitized before use.
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body dto.CreateFolderRequest true "Folder details"
// @Success 201 {object} dto.Envelope{data=dto.FolderResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid name"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Folder already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /folders [post]
func (h *folderHandler) createFolder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	folder, err := h.folderService.CreateFolder(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.ToFolderResponse(folder)))
}

// listFolders godoc
// @Summary List folders
// @Description Lists the folders owned by the authenticated user.
// @Tags folders
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.FolderResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /folders [get]
func (h *folderHandler) listFolders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	folders, err := h.folderService.ListFolders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToFolderListResponse(folders)))
}

// getFolderByName godoc
// @Summary Find a folder by name
// @Description Looks up a folder by name. The name is sanitized the same way as on creation.
// @Tags folders
// @Produce json
// @Param name path string true "Folder name"
// @Success 200 {object} dto.Envelope{data=dto.FolderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /folders/by-name/{name} [get]
func (h *folderHandler) getFolderByName(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	folder, err := h.folderService.FindFolderByName(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToFolderResponse(folder)))
}

// renameFolder godoc
// @Summary Rename a folder
// @Description Renames a folder and its backing directory.
// @Tags folders
// @Accept json
// @Produce json
// @Param folderID path string true "Folder ID"
// @Param folder body dto.RenameFolderRequest true "New name"
// @Success 200 {object} dto.Envelope{data=dto.FolderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /folders/{folderID} [put]
func (h *folderHandler) renameFolder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	folder, err := h.folderService.RenameFolder(c.Request.Context(), userID, c.Param("folderID"), req.Name)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToFolderResponse(folder)))
}

// deleteFolder godoc
// @Summary Delete a folder
// @Description Deletes a folder and everything in its directory. Projects keep the dangling folder id.
// @Tags folders
// @Produce json
// @Param folderID path string true "Folder ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /folders/{folderID} [delete]
func (h *folderHandler) deleteFolder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.folderService.DeleteFolder(c.Request.Context(), userID, c.Param("folderID")); err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{Status: dto.StatusSuccess, Message: "Folder deleted successfully"})
}
