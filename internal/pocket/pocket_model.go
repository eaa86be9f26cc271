package pocket

import "github.com/DhavalSuthar-24/sportcomplex/internal/models"

// Pocket is a membership plan billed monthly.
type Pocket struct {
	models.BaseModel
	Name          string  `json:"name" gorm:"not null;uniqueIndex"`
	PricePerMonth float64 `json:"pricePerMonth" gorm:"type:numeric(10,2);not null"`
}
