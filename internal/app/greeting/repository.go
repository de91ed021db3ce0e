package greeting

import (
	"greeting-api/internal/app/crud"

	"gorm.io/gorm"
)

type Repository = crud.Repository[Greeting]

func NewRepository(db *gorm.DB) Repository {
	return crud.NewRepository[Greeting](db, "Messages")
}
