package position

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "position"

type Patch struct {
	Name string
}

type Service struct {
	repo store.Repository[Position]
}

func NewService(repo store.Repository[Position]) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Position, error) {
	return s.repo.Find(ctx, store.All())
}

func (s *Service) Get(ctx context.Context, id uint) (*Position, error) {
	p, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, common.NotFound(Entity, id)
	}
	return p, nil
}

func (s *Service) Add(ctx context.Context, p *Position) (*Position, error) {
	existing, err := s.repo.First(ctx, store.Where("name = ?", p.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nameTaken(p.Name)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if store.IsDuplicate(err) {
			return nil, nameTaken(p.Name)
		}
		return nil, err
	}
	return p, nil
}

// Update renames a position; a name held by a different position is a conflict.
func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Position, error) {
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

func (s *Service) Delete(ctx context.Context, id uint) (*Position, error) {
	p, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func nameTaken(name string) error {
	return common.ResourceExists("Position %s already exist", name)
}
