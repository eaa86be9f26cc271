package trainergroup

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "trainer group"

// Service manages enrollments. An enrollment is never edited, only removed and re-added.
type Service struct {
	repo store.Repository[TrainerGroup]
}

func NewService(repo store.Repository[TrainerGroup]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	return q.Preload("Trainer", "Group")
}

func (s *Service) List(ctx context.Context) ([]TrainerGroup, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

func (s *Service) ListByTrainer(ctx context.Context, trainerID uint) ([]TrainerGroup, error) {
	return s.repo.Find(ctx, resolved(store.Where("trainer_id = ?", trainerID)))
}

func (s *Service) ListByGroup(ctx context.Context, groupID uint) ([]TrainerGroup, error) {
	return s.repo.Find(ctx, resolved(store.Where("group_id = ?", groupID)))
}

func (s *Service) Get(ctx context.Context, id uint) (*TrainerGroup, error) {
	tg, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if tg == nil {
		return nil, common.NotFound(Entity, id)
	}
	return tg, nil
}

func (s *Service) Add(ctx context.Context, tg *TrainerGroup) (*TrainerGroup, error) {
	existing, err := s.repo.First(ctx, store.Where("trainer_id = ? AND group_id = ?", tg.TrainerID, tg.GroupID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyEnrolled()
	}

	if err := s.repo.Create(ctx, tg); err != nil {
		if store.IsDuplicate(err) {
			return nil, alreadyEnrolled()
		}
		return nil, err
	}
	return tg, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*TrainerGroup, error) {
	tg, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if tg == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, tg); err != nil {
		return nil, err
	}
	return tg, nil
}

func alreadyEnrolled() error {
	return common.ResourceExists("Trainer has already enrolled to this group")
}
