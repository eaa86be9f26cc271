package sportevent

import (
	"time"

	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
)

// SportEvent is a scheduled competition. The date is unique across all complexes.
type SportEvent struct {
	models.BaseModel
	ComplexID   uint      `json:"complexId" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"not null;uniqueIndex"`
}
