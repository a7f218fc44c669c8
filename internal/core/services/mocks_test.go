package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock FolderRepository ---
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) FindFolderByID(ctx context.Context, userID, folderID string) (*domain.Folder, error) {
	args := m.Called(ctx, userID, folderID)
	var folder *domain.Folder
	if args.Get(0) != nil {
		folder = args.Get(0).(*domain.Folder)
	}
	return folder, args.Error(1)
}

func (m *MockFolderRepository) FindFolderByName(ctx context.Context, userID, name string) (*domain.Folder, error) {
	args := m.Called(ctx, userID, name)
	var folder *domain.Folder
	if args.Get(0) != nil {
		folder = args.Get(0).(*domain.Folder)
	}
	return folder, args.Error(1)
}

func (m *MockFolderRepository) ListFoldersByUser(ctx context.Context, userID string) ([]domain.Folder, error) {
	args := m.Called(ctx, userID)
	var folders []domain.Folder
	if args.Get(0) != nil {
		folders = args.Get(0).([]domain.Folder)
	}
	return folders, args.Error(1)
}

func (m *MockFolderRepository) SaveFolder(ctx context.Context, folder domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) RenameFolder(ctx context.Context, userID, folderID, newName string) error {
	args := m.Called(ctx, userID, folderID, newName)
	return args.Error(0)
}

func (m *MockFolderRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	args := m.Called(ctx, userID, folderID)
	return args.Error(0)
}

// --- Mock FolderDirectoryStore ---
type MockDirectoryStore struct {
	mock.Mock
}

func (m *MockDirectoryStore) Ensure(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *MockDirectoryStore) Rename(ctx context.Context, userID, oldName, newName string) (bool, error) {
	args := m.Called(ctx, userID, oldName, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectoryStore) Remove(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) FindProjectByName(ctx context.Context, userID, name string) (*domain.Project, error) {
	args := m.Called(ctx, userID, name)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *MockProjectRepository) ListProjectNamesWithPrefix(ctx context.Context, userID, prefix string) ([]string, error) {
	args := m.Called(ctx, userID, prefix)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, userID, projectID string, update portsrepo.ProjectUpdate) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID, update)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) AddFolderToProject(ctx context.Context, userID, projectID, folderID string) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID, folderID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueAccessToken(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	args := m.Called(ctx, userID)
	var pair *domain.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*domain.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockTokenService) VerifyAccessToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	args := m.Called(ctx, token)
	var claims *domain.TokenClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(*domain.TokenClaims)
	}
	return claims, args.Error(1)
}

func (m *MockTokenService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock GoogleIdentityVerifier ---
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	var identity *domain.GoogleIdentity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.GoogleIdentity)
	}
	return identity, args.Error(1)
}

// --- Mock GoogleOAuthHandlerSvcFacade ---
type MockGoogleOAuthService struct {
	MockGoogleVerifier
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}
