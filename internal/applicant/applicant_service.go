package applicant

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "applicant"

type Service struct {
	repo store.Repository[Applicant]
}

func NewService(repo store.Repository[Applicant]) *Service {
	return &Service{repo: repo}
}

func resolved(q store.Query) store.Query {
	return q.Preload("Vacancy.Position")
}

func (s *Service) List(ctx context.Context) ([]Applicant, error) {
	return s.repo.Find(ctx, resolved(store.All()))
}

func (s *Service) ListByVacancy(ctx context.Context, vacancyID uint) ([]Applicant, error) {
	return s.repo.Find(ctx, resolved(store.Where("vacancy_id = ?", vacancyID)))
}

func (s *Service) Get(ctx context.Context, id uint) (*Applicant, error) {
	a, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.NotFound(Entity, id)
	}
	return a, nil
}

// GetByPerson returns the earliest application of a person.
func (s *Service) GetByPerson(ctx context.Context, personID string) (*Applicant, error) {
	a, err := s.repo.First(ctx, resolved(store.Where("person_id = ?", personID)))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.NotFoundBy(Entity, "personId", personID)
	}
	return a, nil
}

func (s *Service) Add(ctx context.Context, a *Applicant) (*Applicant, error) {
	existing, err := s.repo.First(ctx, store.Where("person_id = ? AND vacancy_id = ?", a.PersonID, a.VacancyID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadySubmitted(a.PersonID)
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if store.IsDuplicate(err) {
			return nil, alreadySubmitted(a.PersonID)
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (*Applicant, error) {
	a, err := s.repo.First(ctx, resolved(store.ByID(id)))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func alreadySubmitted(personID string) error {
	return common.ResourceExists("PersonId:%s already submitted", personID)
}
