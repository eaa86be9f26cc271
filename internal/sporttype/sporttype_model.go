package sporttype

import "github.com/DhavalSuthar-24/sportcomplex/internal/models"

// SportType is a discipline offered by the complex (football, swimming, ...).
type SportType struct {
	models.BaseModel
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}
