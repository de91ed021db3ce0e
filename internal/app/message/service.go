package message

import (
	"greeting-api/internal/app/crud"
	"greeting-api/internal/app/greeting"
	"greeting-api/internal/utils"

	"go.uber.org/zap"
)

const EntityName = "message"

type Service = crud.Service[Message]

// NewService wires the message resource. A greeting's cached view lists its messages,
// so message writes also flush the greeting cache.
func NewService(repo Repository, cache crud.Cache, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return crud.NewService[Message](crud.Options[Message]{
		Name:       EntityName,
		Repo:       repo,
		Merge:      Merge,
		Cache:      cache,
		Dependents: []string{greeting.EntityName},
		Events:     eventBus,
		Logger:     logger,
	})
}
