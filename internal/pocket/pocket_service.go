package pocket

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "pocket"

// Patch holds the only mutable field of a Pocket; the name is fixed at creation.
type Patch struct {
	PricePerMonth float64
}

type Service struct {
	repo store.Repository[Pocket]
}

func NewService(repo store.Repository[Pocket]) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Pocket, error) {
	return s.repo.Find(ctx, store.All())
}

func (s *Service) Get(ctx context.Context, id uint) (*Pocket, error) {
	p, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, common.NotFound(Entity, id)
	}
	return p, nil
}

func (s *Service) Add(ctx context.Context, p *Pocket) (*Pocket, error) {
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

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*Pocket, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	existing.PricePerMonth = patch.PricePerMonth
	if err := s.repo.Update(ctx, existing, "price_per_month"); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*Pocket, error) {
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
	return common.ResourceExists("Pocket: %s already exist", name)
}
