package subscriber

import "github.com/DhavalSuthar-24/sportcomplex/internal/models"

// Subscriber is a webhook endpoint notified of every new sport event.
// URLs are not unique; a URL registered twice receives each event twice.
type Subscriber struct {
	models.BaseModel
	URL string `json:"url" gorm:"not null"`
}

func (Subscriber) TableName() string {
	return "event_subscribers"
}
