package sporttype

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "sport type"

// Patch holds the mutable fields of a SportType.
type Patch struct {
	Name string
}

type Service struct {
	repo store.Repository[SportType]
}

func NewService(repo store.Repository[SportType]) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]SportType, error) {
	return s.repo.Find(ctx, store.All())
}

func (s *Service) Get(ctx context.Context, id uint) (*SportType, error) {
	st, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, common.NotFound(Entity, id)
	}
	return st, nil
}

// Add persists a sport type whose name is not taken yet.
func (s *Service) Add(ctx context.Context, st *SportType) (*SportType, error) {
	existing, err := s.repo.First(ctx, store.Where("name = ?", st.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nameTaken(st.Name)
	}

	if err := s.repo.Create(ctx, st); err != nil {
		if store.IsDuplicate(err) {
			return nil, nameTaken(st.Name)
		}
		return nil, err
	}
	return st, nil
}

// Update renames a sport type. The record itself is excluded from the duplicate check,
// so renaming to the unchanged name succeeds.
func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*SportType, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	duplicate, err := s.repo.First(ctx, store.Where("name = ?", patch.Name).Where("id <> ?", id))
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, nameTaken(patch.Name)
	}

	existing.Name = patch.Name
	if err := s.repo.Update(ctx, existing, "name"); err != nil {
		if store.IsDuplicate(err) {
			return nil, nameTaken(patch.Name)
		}
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*SportType, error) {
	st, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func nameTaken(name string) error {
	return common.ResourceExists("SportType: %s already exist", name)
}
