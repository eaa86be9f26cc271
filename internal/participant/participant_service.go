package participant

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "event participant"

// Preloads resolves a participant's event and trainee. Winner reads reuse it under "Participant.".
var Preloads = []string{"SportEvent", "Trainee.Group.SportType"}

type Service struct {
	repo store.Repository[Participant]
}

func NewService(repo store.Repository[Participant]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	return q.Preload(Preloads...)
}

func (s *Service) List(ctx context.Context) ([]Participant, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

func (s *Service) ListByEvent(ctx context.Context, eventID uint) ([]Participant, error) {
	return s.repo.Find(ctx, resolved(store.Where("sport_event_id = ?", eventID)))
}

func (s *Service) ListByTrainee(ctx context.Context, traineeID uint) ([]Participant, error) {
	return s.repo.Find(ctx, resolved(store.Where("trainee_id = ?", traineeID)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Participant, error) {
	p, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, common.NotFound(Entity, id)
	}
	return p, nil
}

func (s *Service) Add(ctx context.Context, p *Participant) (*Participant, error) {
	existing, err := s.repo.First(ctx,
		store.Where("sport_event_id = ? AND trainee_id = ?", p.SportEventID, p.TraineeID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyRegistered()
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if store.IsDuplicate(err) {
			return nil, alreadyRegistered()
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*Participant, error) {
	p, err := s.repo.First(ctx, resolved(store.ByID(id)))
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

func alreadyRegistered() error {
	return common.ResourceExists("Trainee already submitted to event")
}
