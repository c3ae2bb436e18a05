package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/logger"
	"github.com/nardogod/diaryquest/internal/storage"
)

// Service is the reward & progression engine. All coordination happens
// through the store; the service itself keeps no per-user state, so one
// instance can serve any number of concurrent callers.
type Service struct {
	db    *sql.DB
	store *storage.Store
	log   *logger.Logger

	now func() time.Time
}

func NewService(db *sql.DB, log *logger.Logger) *Service {
	return &Service{
		db:    db,
		store: storage.NewStore(db),
		now:   time.Now,
		log:   log,
	}
}

// Store exposes the repos for read-only surfaces (CLI listings, TUI).
func (s *Service) Store() *storage.Store { return s.store }

func (s *Service) withTx(ctx context.Context, fn func(st *storage.Store) error) error {
	return storage.WithTx(ctx, s.db, fn)
}

// ensureProfile lazily creates the profile (plus the default room ownership
// rows) and repairs the level/experience invariant if a past write left them
// inconsistent.
func ensureProfile(ctx context.Context, st *storage.Store, userID string) (*storage.Profile, error) {
	p, err := st.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p, err = st.Profiles.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}
		if _, err := st.Ownership.InsertRoomIfAbsent(ctx, userID, string(catalog.RoomHouse), catalog.DefaultHouseID); err != nil {
			return nil, err
		}
		if _, err := st.Ownership.InsertRoomIfAbsent(ctx, userID, string(catalog.RoomWork), catalog.DefaultWorkRoomID); err != nil {
			return nil, err
		}
	}

	computed := LevelForXP(p.Experience)
	if p.Level != computed {
		p.Level = computed
		if err := st.Profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// GetOrCreateProfile is the boundary read used by collaborators.
func (s *Service) GetOrCreateProfile(ctx context.Context, userID string) (*storage.Profile, error) {
	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
