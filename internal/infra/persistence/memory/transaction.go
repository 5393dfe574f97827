package memory

import (
	"context"

	"mapic/internal/domain/repository"
)

// txManager serialises Execute calls. Writes made before fn fails are not undone;
// callers validate before writing, so a failed fn normally has written nothing.
type txManager struct {
	s *Store
}

func (m *txManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	return fn(m.s)
}

func (s *Store) UserRepo() repository.UserRepository             { return s.Users() }
func (s *Store) FriendshipRepo() repository.FriendshipRepository { return s.Friendships() }
func (s *Store) CheckInRepo() repository.CheckInRepository       { return s.CheckIns() }
func (s *Store) PlaceRepo() repository.PlaceRepository           { return s.Places() }
func (s *Store) OtpRepo() repository.OtpRepository               { return s.Otps() }
