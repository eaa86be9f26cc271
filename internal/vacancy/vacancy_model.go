package vacancy

import (
	"time"

	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/position"
)

// Vacancy is an open job posting. IsActive is toggled by hand; nil on add means active.
type Vacancy struct {
	models.BaseModel
	ComplexID  uint               `json:"complexId" gorm:"not null;index"`
	PositionID uint               `json:"positionId" gorm:"not null"`
	Position   *position.Position `json:"position,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Title      string             `json:"title" gorm:"not null"`
	Details    string             `json:"details"`
	PostedDate time.Time          `json:"postedDate" gorm:"not null"`
	IsActive   *bool              `json:"isActive" gorm:"not null;default:true"`
}
