package trainer

import (
	"github.com/DhavalSuthar-24/sportcomplex/internal/employee"
	"github.com/DhavalSuthar-24/sportcomplex/internal/models"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
)

// Trainer is the coaching role an employee holds in a complex. One role per employee per complex.
type Trainer struct {
	models.BaseModel
	ComplexID   uint                 `json:"complexId" gorm:"not null;uniqueIndex:idx_trainer_complex_employee;index"`
	EmployeeID  uint                 `json:"employeeId" gorm:"not null;uniqueIndex:idx_trainer_complex_employee"`
	Employee    *employee.Employee   `json:"employee,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	SportTypeID uint                 `json:"sportTypeId" gorm:"not null"`
	SportType   *sporttype.SportType `json:"sportType,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
