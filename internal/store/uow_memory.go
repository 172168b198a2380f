package store

import (
	"context"
	"sync"

	"resume-tailor/internal/documents"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/templates"
	"resume-tailor/internal/users"
)

// MemoryUnitOfWork provides transaction semantics over the in-memory
// repos by snapshotting state before the scoped function runs and
// restoring it on error. Scopes are serialized; memory mode is a dev
// and test convenience, not a concurrency target.
type MemoryUnitOfWork struct {
	mu sync.Mutex

	UsersRepo     *users.MemoryRepo
	ProfilesRepo  *profiles.MemoryRepo
	DocumentsRepo *documents.MemoryRepo
	TemplatesRepo *templates.MemoryRepo
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		UsersRepo:     users.NewMemoryRepo(),
		ProfilesRepo:  profiles.NewMemoryRepo(),
		DocumentsRepo: documents.NewMemoryRepo(),
		TemplatesRepo: templates.NewMemoryRepo(),
	}
}

type memoryScope struct {
	u *MemoryUnitOfWork
}

func (s *memoryScope) Users() users.Repo         { return s.u.UsersRepo }
func (s *memoryScope) Profiles() profiles.Repo   { return s.u.ProfilesRepo }
func (s *memoryScope) Documents() documents.Repo { return s.u.DocumentsRepo }
func (s *memoryScope) Templates() templates.Repo { return s.u.TemplatesRepo }

func (u *MemoryUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, s Scope) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &TransactionError{Op: "begin", Err: err}
	}

	usersSnap := u.UsersRepo.Snapshot()
	profilesSnap := u.ProfilesRepo.Snapshot()
	documentsSnap := u.DocumentsRepo.Snapshot()
	templatesSnap := u.TemplatesRepo.Snapshot()

	if err := fn(ctx, &memoryScope{u: u}); err != nil {
		u.UsersRepo.Restore(usersSnap)
		u.ProfilesRepo.Restore(profilesSnap)
		u.DocumentsRepo.Restore(documentsSnap)
		u.TemplatesRepo.Restore(templatesSnap)
		return err
	}
	return nil
}

var _ UnitOfWork = (*MemoryUnitOfWork)(nil)
