package sportgroup

import (
	"context"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

const Entity = "sport group"

type Patch struct {
	Name string
}

type Service struct {
	repo store.Repository[SportGroup]
}

func NewService(repo store.Repository[SportGroup]) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]SportGroup, error) {
	return s.repo.Find(ctx, store.All().Preload("SportType"))
}

func (s *Service) Get(ctx context.Context, id uint) (*SportGroup, error) {
	g, err := s.repo.First(ctx, store.ByID(id).Preload("SportType"))
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, common.NotFound(Entity, id)
	}
	return g, nil
}

func (s *Service) Add(ctx context.Context, g *SportGroup) (*SportGroup, error) {
	existing, err := s.repo.First(ctx, store.Where("name = ? AND sport_type_id = ?", g.Name, g.SportTypeID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nameTaken(g.Name)
	}

	if err := s.repo.Create(ctx, g); err != nil {
		if store.IsDuplicate(err) {
			return nil, nameTaken(g.Name)
		}
		return nil, err
	}
	return g, nil
}

// Update renames a group within its sport type. Another group of the same sport type
// holding the new name is a conflict; the group itself is not.
func (s *Service) Update(ctx context.Context, id uint, patch Patch) (*SportGroup, error) {
	existing, err := s.repo.First(ctx, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NotFound(Entity, id)
	}

	duplicate, err := s.repo.First(ctx,
		store.Where("name = ? AND sport_type_id = ?", patch.Name, existing.SportTypeID).Where("id <> ?", id))
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
	// Reload so the response carries the same related records as Get.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*SportGroup, error) {
	g, err := s.repo.First(ctx, store.ByID(id).Preload("SportType"))
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, common.NotFound(Entity, id)
	}

	if err := s.repo.Delete(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func nameTaken(name string) error {
	return common.ResourceExists("%s already exist", name)
}
