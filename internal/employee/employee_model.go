package employee

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/position"
)

// Employee is one external person's staff record in one sport complex.
type Employee struct {
	models.BaseModel
	FirstName  string             `json:"firstName" gorm:"not null"`
	LastName   string             `json:"lastName" gorm:"not null"`
	ComplexID  uint               `json:"complexId" gorm:"not null;uniqueIndex:idx_employee_complex_person;index"`
	PersonID   string             `json:"personId" gorm:"not null;uniqueIndex:idx_employee_complex_person"`
	PositionID uint               `json:"positionId" gorm:"not null"`
	Position   *position.Position `json:"position,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
