package root

import (
	"context"

	"github.com/nardogod/diaryquest/internal/config"
	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/logger"
	"github.com/nardogod/diaryquest/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, string, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, "", nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(db, logger.New("dq")), cfg.User, cleanup, nil
}
