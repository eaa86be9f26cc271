package trainergroup

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainer"
)

// TrainerGroup enrolls a trainer to coach a sport group.
type TrainerGroup struct {
	models.BaseModel
	TrainerID uint                   `json:"trainerId" gorm:"not null;uniqueIndex:idx_trainer_group_pair"`
	Trainer   *trainer.Trainer       `json:"trainer,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	GroupID   uint                   `json:"groupId" gorm:"not null;uniqueIndex:idx_trainer_group_pair;index"`
	Group     *sportgroup.SportGroup `json:"group,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}
