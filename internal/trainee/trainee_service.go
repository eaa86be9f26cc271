package trainee

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "trainee"

// Patch moves a trainee between groups and plans. All three fields are written together.
type Patch struct {
	GroupID  uint
	PocketID uint
	IsPaid   bool
}

type Service struct {
	repo store.Repository[Trainee]
}

func NewService(repo store.Repository[Trainee]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	return q.Preload("Group.SportType", "Pocket")
}

func inComplex(complexID uint) store.Query {
	return store.Where("complex_id = ?", complexID)
}

func (s *Service) List(ctx context.Context) ([]Trainee, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

func (s *Service) ListByComplex(ctx context.Context, complexID uint) ([]Trainee, error) {
	return s.repo.Find(ctx, resolved(inComplex(complexID)))
}

func (s *Service) ListByGroup(ctx context.Context, complexID, groupID uint) ([]Trainee, error) {
	return s.repo.Find(ctx, resolved(inComplex(complexID).Where("group_id = ?", groupID)))
}

func (s *Service) ListByPocket(ctx context.Context, complexID, pocketID uint) ([]Trainee, error) {
	return s.repo.Find(ctx, resolved(inComplex(complexID).Where("pocket_id = ?", pocketID)))
}

func (s *Service) ListByPaymentStatus(ctx context.Context, complexID uint, isPaid bool) ([]Trainee, error) {
	return s.repo.Find(ctx, resolved(inComplex(complexID).Where("is_paid = ?", isPaid)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Trainee, error) {
	t, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, common.NotFound(Entity, id)
	}
	return t, nil
}

func (s *Service) GetByPerson(ctx context.Context, complexID uint, personID string) (*Trainee, error) {
	t, err := s.repo.First(ctx, resolved(byPerson(complexID, personID)))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, common.NotFoundBy(Entity, "personId", personID)
	}
	return t, nil
}

func (s *Service) Add(ctx context.Context, t *Trainee) (*Trainee, error) {
	existing, err := s.repo.First(ctx, byPerson(t.ComplexID, t.PersonID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, personTaken(t.PersonID)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if store.IsDuplicate(err) {
			return nil, personTaken(t.PersonID)
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Trainee, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	existing.GroupID = patch.GroupID
	existing.PocketID = patch.PocketID
	existing.IsPaid = patch.IsPaid
	if err := s.repo.Update(ctx, existing, "group_id", "pocket_id", "is_paid"); err != nil {
		return nil, err
	}
	// Reload so the response carries the same related records as Get.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*Trainee, error) {
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

func byPerson(complexID uint, personID string) store.Query {
	return inComplex(complexID).Where("person_id = ?", personID)
}

func personTaken(personID string) error {
	return common.ResourceExists("Trainee with PersonId:%s already exist", personID)
}
