package participant

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainee"
)

// Participant registers a trainee for a sport event.
type Participant struct {
	models.BaseModel
	SportEventID uint                   `json:"sportEventId" gorm:"not null;uniqueIndex:idx_participant_event_trainee"`
	SportEvent   *sportevent.SportEvent `json:"sportEvent,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	TraineeID    uint                   `json:"traineeId" gorm:"not null;uniqueIndex:idx_participant_event_trainee;index"`
	Trainee      *trainee.Trainee       `json:"trainee,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Participant) TableName() string {
	return "event_participants"
}
