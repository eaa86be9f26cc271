package employee

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "employee"

// Patch holds the only field that may change after hiring.
type Patch struct {
	PositionID uint
}

type Service struct {
	repo store.Repository[Employee]
}

func NewService(repo store.Repository[Employee]) *Service {
	return &Service{repo: repo}
}

func withPosition(q store.Query) store.Query {
	return q.Preload("Position")
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.Find(ctx, withPosition(store.All()))
}

func (s *Service) ListByComplex(ctx context.Context, complexID uint) ([]Employee, error) {
	return s.repo.Find(ctx, withPosition(store.Where("complex_id = ?", complexID)))
}

func (s *Service) ListByPosition(ctx context.Context, complexID, positionID uint) ([]Employee, error) {
	return s.repo.Find(ctx, withPosition(
		store.Where("complex_id = ?", complexID).Where("position_id = ?", positionID)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Employee, error) {
	e, err := s.repo.First(ctx, withPosition(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, common.NotFound(Entity, id)
	}
	return e, nil
}

// GetByPerson finds the staff record of an external person within a complex.
func (s *Service) GetByPerson(ctx context.Context, complexID uint, personID string) (*Employee, error) {
	e, err := s.repo.First(ctx, withPosition(byPerson(complexID, personID)))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, common.NotFoundBy(Entity, "personId", personID)
	}
	return e, nil
}

func (s *Service) Add(ctx context.Context, e *Employee) (*Employee, error) {
	existing, err := s.repo.First(ctx, byPerson(e.ComplexID, e.PersonID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, personTaken(e.PersonID)
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if store.IsDuplicate(err) {
			return nil, personTaken(e.PersonID)
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Employee, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	existing.PositionID = patch.PositionID
	if err := s.repo.Update(ctx, existing, "position_id"); err != nil {
		return nil, err
	}
	// Reload so the response carries the same related records as Get.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*Employee, error) {
	e, err := s.repo.First(ctx, withPosition(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func byPerson(complexID uint, personID string) store.Query {
	return store.Where("complex_id = ? AND person_id = ?", complexID, personID)
}

func personTaken(personID string) error {
	return common.ResourceExists("Employee with PersonID: %s already exist", personID)
}
