package trainee

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/pocket"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
)

// Trainee is a member of a complex training in a group under a pocket plan.
type Trainee struct {
	models.BaseModel
	FirstName string                 `json:"firstName" gorm:"not null"`
	LastName  string                 `json:"lastName" gorm:"not null"`
	ComplexID uint                   `json:"complexId" gorm:"not null;uniqueIndex:idx_trainee_complex_person;index"`
	PersonID  string                 `json:"personId" gorm:"not null;uniqueIndex:idx_trainee_complex_person"`
	GroupID   uint                   `json:"groupId" gorm:"not null"`
	Group     *sportgroup.SportGroup `json:"group,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	PocketID  uint                   `json:"pocketId" gorm:"not null"`
	Pocket    *pocket.Pocket         `json:"pocket,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	IsPaid    bool                   `json:"isPaid" gorm:"not null;default:false"`
}
