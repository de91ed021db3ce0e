package greeting

import (
	"greeting-api/internal/app/crud"
	"greeting-api/internal/utils"

	"go.uber.org/zap"
)

const EntityName = "greeting"

type Service = crud.Service[Greeting]

// NewService wires the greeting resource. Cached messages embed their greeting, so
// greeting writes also flush the message cache.
func NewService(repo Repository, cache crud.Cache, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return crud.NewService[Greeting](crud.Options[Greeting]{
		Name:       EntityName,
		Repo:       repo,
		Merge:      Merge,
		Cache:      cache,
		Dependents: []string{"message"},
		Events:     eventBus,
		Logger:     logger,
	})
}
