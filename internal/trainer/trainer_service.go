package trainer

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "trainer"

type Patch struct {
	SportTypeID uint
}

type Service struct {
	repo store.Repository[Trainer]
}

func NewService(repo store.Repository[Trainer]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	return q.Preload("SportType", "Employee.Position")
}

func (s *Service) List(ctx context.Context) ([]Trainer, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

func (s *Service) ListByComplex(ctx context.Context, complexID uint) ([]Trainer, error) {
	return s.repo.Find(ctx, resolved(store.Where("complex_id = ?", complexID)))
}

func (s *Service) ListBySportType(ctx context.Context, complexID, sportTypeID uint) ([]Trainer, error) {
	return s.repo.Find(ctx, resolved(
		store.Where("complex_id = ?", complexID).Where("sport_type_id = ?", sportTypeID)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Trainer, error) {
	t, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, common.NotFound(Entity, id)
	}
	return t, nil
}

// GetByEmployee returns the trainer role an employee holds in a complex.
func (s *Service) GetByEmployee(ctx context.Context, complexID, employeeID uint) (*Trainer, error) {
	t, err := s.repo.First(ctx, resolved(byEmployee(complexID, employeeID)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, common.NotFoundBy(Entity, "employeeId", employeeID)
	}
	return t, nil
}

func (s *Service) Add(ctx context.Context, t *Trainer) (*Trainer, error) {
	existing, err := s.repo.First(ctx, byEmployee(t.ComplexID, t.EmployeeID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyTrainer()
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if store.IsDuplicate(err) {
			return nil, alreadyTrainer()
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Trainer, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	existing.SportTypeID = patch.SportTypeID
	if err := s.repo.Update(ctx, existing, "sport_type_id"); err != nil {
		return nil, err
	}
	// Reload so the response carries the same related records as Get.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*Trainer, error) {
	t, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func byEmployee(complexID, employeeID uint) store.Query {
	return store.Where("complex_id = ? AND employee_id = ?", complexID, employeeID)
}

func alreadyTrainer() error {
	return common.ResourceExists("Employee is already trainer")
}
