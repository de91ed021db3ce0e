package message

import (
	"greeting-api/internal/app/crud"

	"gorm.io/gorm"
)

type Repository = crud.Repository[Message]

func NewRepository(db *gorm.DB) Repository {
	return crud.NewRepository[Message](db, "Greeting")
}
