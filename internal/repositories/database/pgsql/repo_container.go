package pgsql

import (
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		FolderRepo:  newPgxFolderRepository(dbPool),
		ProjectRepo: newPgxProjectRepository(dbPool),
	}
}
