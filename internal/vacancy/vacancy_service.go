package vacancy

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "vacancy"

// Patch carries every mutable field. PostedDate and ComplexID never change.
type Patch struct {
	PositionID uint
	Title      string
	Details    string
	IsActive   bool
}

type Service struct {
	repo store.Repository[Vacancy]
	now  func() time.Time
}

func NewService(repo store.Repository[Vacancy]) *Service {
	return &Service{repo: repo, now: time.Now}
}

func withPosition(q store.Query) store.Query {
	return q.Preload("Position")
}

func (s *Service) List(ctx context.Context) ([]Vacancy, error) {
	return s.repo.Find(ctx, withPosition(store.All()))
}

func (s *Service) ListByComplex(ctx context.Context, complexID uint) ([]Vacancy, error) {
	return s.repo.Find(ctx, withPosition(store.Where("complex_id = ?", complexID)))
}

func (s *Service) ListByPosition(ctx context.Context, complexID, positionID uint) ([]Vacancy, error) {
	return s.repo.Find(ctx, withPosition(
		store.Where("complex_id = ?", complexID).Where("position_id = ?", positionID)))
}

func (s *Service) ListByStatus(ctx context.Context, complexID uint, active bool) ([]Vacancy, error) {
	return s.repo.Find(ctx, withPosition(
		store.Where("complex_id = ?", complexID).Where("is_active = ?", active)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Vacancy, error) {
	v, err := s.repo.First(ctx, withPosition(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, common.NotFound(Entity, id)
	}
	return v, nil
}

// Add posts a vacancy. Vacancies have no uniqueness key, so Add never conflicts.
func (s *Service) Add(ctx context.Context, v *Vacancy) (*Vacancy, error) {
	if v.IsActive == nil {
		active := true
		v.IsActive = &active
	}
	if v.PostedDate.IsZero() {
		v.PostedDate = s.now().UTC()
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Vacancy, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	existing.PositionID = patch.PositionID
	existing.Title = patch.Title
	existing.Details = patch.Details
	existing.IsActive = &patch.IsActive
	if err := s.repo.Update(ctx, existing, "position_id", "title", "details", "is_active"); err != nil {
		return nil, err
	}
	// Reload so the response carries the same related records as Get.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*Vacancy, error) {
	v, err := s.repo.First(ctx, withPosition(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
