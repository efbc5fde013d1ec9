package services

import (
	"github.com/ghuser/audioguide/pkg/app"
	"github.com/ghuser/audioguide/pkg/cache"
	"github.com/ghuser/audioguide/services/exhibit/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Exhibit *ExhibitService
}

// New wires all exhibit application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewExhibitRepository(a.Db, a.EventBus)
	exhibitCache := cache.NewExhibitCache(a.Redis)
	return &Services{
		Exhibit: NewExhibitService(repo, exhibitCache),
	}
}
