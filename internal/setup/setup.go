package setup

import (
	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/handler"
	"github.com/forumhub-dev/forumhub/internal/service"
	"github.com/forumhub-dev/forumhub/internal/storage/fs"
	"github.com/forumhub-dev/forumhub/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	mediaStorage, err := fs.New(cfg.Public.UploadDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	media := service.NewMedia(mediaStorage)
	thread := service.NewThread(storage, media)
	post := service.NewPost(storage, media)
	document := service.NewDocument(storage)

	h := handler.New(thread, post, document, media, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Media:   mediaStorage,
		Handler: h,
		Config:  cfg,
	}, nil
}
