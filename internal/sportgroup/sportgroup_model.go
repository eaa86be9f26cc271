package sportgroup

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
)

// SportGroup is a training group within one sport type. Names repeat across sport types.
type SportGroup struct {
	models.BaseModel
	Name        string               `json:"name" gorm:"not null;uniqueIndex:idx_sport_group_name_type"`
	SportTypeID uint                 `json:"sportTypeId" gorm:"not null;uniqueIndex:idx_sport_group_name_type"`
	SportType   *sporttype.SportType `json:"sportType,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
