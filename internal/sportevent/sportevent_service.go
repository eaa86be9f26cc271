package sportevent

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "sport event"

// Notifier announces a created event. Notify must return without waiting for delivery.
type Notifier interface {
	Notify(event SportEvent)
}

type Patch struct {
	Name        string
	Description string
	Date        time.Time
}

type Service struct {
	repo     store.Repository[SportEvent]
	notifier Notifier
}

// NewService wires the event store. notifier may be nil, in which case nothing is announced.
func NewService(repo store.Repository[SportEvent], notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]SportEvent, error) {
	return s.repo.Find(ctx, store.All())
}

func (s *Service) ListByComplex(ctx context.Context, complexID uint) ([]SportEvent, error) {
	return s.repo.Find(ctx, store.Where("complex_id = ?", complexID))
}

func (s *Service) Get(ctx context.Context, id uint) (*SportEvent, error) {
	e, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, common.NotFound(Entity, id)
	}
	return e, nil
}

// Add schedules an event and hands it to the notifier once stored.
// Any event already on the same instant, in any complex, is a conflict.
func (s *Service) Add(ctx context.Context, e *SportEvent) (*SportEvent, error) {
	e.Date = e.Date.UTC()

	existing, err := s.repo.First(ctx, store.Where("date = ?", e.Date))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dateTaken()
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if store.IsDuplicate(err) {
			return nil, dateTaken()
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(*e)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*SportEvent, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = patch.Name
	existing.Description = patch.Description
	existing.Date = patch.Date.UTC()
	if err := s.repo.Update(ctx, existing, "name", "description", "date"); err != nil {
		if store.IsDuplicate(err) {
			return nil, dateTaken()
		}
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*SportEvent, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func dateTaken() error {
	return common.ResourceExists("SportComplex has an event in this period")
}
