package winner

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/participant"
)

// Winner awards a place to an event participant. Neither the participant nor the
// place is unique, so ties and repeated awards are representable.
type Winner struct {
	models.BaseModel
	ParticipantID uint                     `json:"participantId" gorm:"not null;index"`
	Participant   *participant.Participant `json:"participant,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Place         int                      `json:"place" gorm:"not null"`
}

func (Winner) TableName() string {
	return "event_winners"
}
