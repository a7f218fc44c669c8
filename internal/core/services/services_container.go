package services

import (
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// googleSvc may be nil, in which case the real Google client is built from cfg.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dirs portsrepo.FolderDirectoryStore, googleSvc portssvc.GoogleOAuthHandlerSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.TokenService = NewTokenService(cfg)

	if googleSvc == nil {
		googleSvc = NewGoogleOAuthHandlerService(cfg)
	}
	container.GoogleOAuthHandler = googleSvc

	container.User = NewIdentityService(repos.UserRepo, container.TokenService, container.GoogleOAuthHandler)
	container.Folder = NewFolderService(repos.FolderRepo, dirs)
	container.Project = NewProjectService(repos.ProjectRepo, repos.FolderRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade   = (*tokenService)(nil)
	_ portssvc.UserSvcFacade    = (*identityService)(nil)
	_ portssvc.FolderSvcFacade  = (*folderService)(nil)
	_ portssvc.ProjectSvcFacade = (*projectService)(nil)
)
