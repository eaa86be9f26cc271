package position

import "github.com/DhavalSuthar-24/sportcomplex/internal/models"

// Position is a staff role (manager, trainer, cleaner, ...).
type Position struct {
	models.BaseModel
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}
