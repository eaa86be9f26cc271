package subscriber

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "event subscriber"

type Service struct {
	repo store.Repository[Subscriber]
}

func NewService(repo store.Repository[Subscriber]) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Subscriber, error) {
	return s.repo.Find(ctx, store.All())
}

func (s *Service) Get(ctx context.Context, id uint) (*Subscriber, error) {
	sub, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, common.NotFound(Entity, id)
	}
	return sub, nil
}

func (s *Service) Add(ctx context.Context, sub *Subscriber) (*Subscriber, error) {
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) Update(ctx context.Context, id uint, url string) (*Subscriber, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.URL = url
	if err := s.repo.Update(ctx, existing, "url"); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*Subscriber, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
