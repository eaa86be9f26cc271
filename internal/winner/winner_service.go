package winner

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/participant"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "event winner"

type Service struct {
	repo store.Repository[Winner]
}

func NewService(repo store.Repository[Winner]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	paths := make([]string, 0, len(participant.Preloads))
	for _, p := range participant.Preloads {
		paths = append(paths, "Participant."+p)
	}
	return q.Preload(paths...)
}

func (s *Service) List(ctx context.Context) ([]Winner, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

// ListByEvent returns the winners of one event, best place first.
func (s *Service) ListByEvent(ctx context.Context, eventID uint) ([]Winner, error) {
	q := store.Where("participant_id IN (SELECT id FROM event_participants WHERE sport_event_id = ?)", eventID).
		OrderBy("place ASC, id ASC")
	return s.repo.Find(ctx, resolved(q))
}

func (s *Service) Get(ctx context.Context, id uint) (*Winner, error) {
	w, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, common.NotFound(Entity, id)
	}
	return w, nil
}

func (s *Service) GetByParticipant(ctx context.Context, participantID uint) (*Winner, error) {
	w, err := s.repo.First(ctx, resolved(store.Where("participant_id = ?", participantID)))
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, common.NotFoundBy(Entity, "participantId", participantID)
	}
	return w, nil
}

// Add records a winner. There is no uniqueness key to check.
func (s *Service) Add(ctx context.Context, w *Winner) (*Winner, error) {
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*Winner, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
