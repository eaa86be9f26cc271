package applicant

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/vacancy"
)

// Applicant is an external person's application to a vacancy.
type Applicant struct {
	models.BaseModel
	VacancyID uint             `json:"vacancyId" gorm:"not null;uniqueIndex:idx_applicant_person_vacancy;index"`
	Vacancy   *vacancy.Vacancy `json:"vacancy,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	PersonID  string           `json:"personId" gorm:"not null;uniqueIndex:idx_applicant_person_vacancy"`
}
