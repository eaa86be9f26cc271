package trainee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/pocket"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type TraineeServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service *Service
	repo    *testutil.SpyRepository[Trainee]
	juniors *sportgroup.SportGroup
	seniors *sportgroup.SportGroup
	basic   *pocket.Pocket
	premium *pocket.Pocket
}

func TestTraineeServiceSuite(t *testing.T) {
	suite.Run(t, new(TraineeServiceSuite))
}

func (s *TraineeServiceSuite) SetupTest() {
	db := testutil.NewDB(s.T(), &sporttype.SportType{}, &sportgroup.SportGroup{}, &pocket.Pocket{}, &Trainee{})
	s.ctx = context.Background()
	s.repo = testutil.Spy(store.NewRepository[Trainee](db))
	s.service = NewService(s.repo)

	swimming, err := sporttype.NewService(store.NewRepository[sporttype.SportType](db)).
		Add(s.ctx, &sporttype.SportType{Name: "Swimming"})
	s.Require().NoError(err)

	groups := sportgroup.NewService(store.NewRepository[sportgroup.SportGroup](db))
	s.juniors, err = groups.Add(s.ctx, &sportgroup.SportGroup{Name: "Juniors", SportTypeID: swimming.ID})
	s.Require().NoError(err)
	s.seniors, err = groups.Add(s.ctx, &sportgroup.SportGroup{Name: "Seniors", SportTypeID: swimming.ID})
	s.Require().NoError(err)

	pockets := pocket.NewService(store.NewRepository[pocket.Pocket](db))
	s.basic, err = pockets.Add(s.ctx, &pocket.Pocket{Name: "Basic", PricePerMonth: 10})
	s.Require().NoError(err)
	s.premium, err = pockets.Add(s.ctx, &pocket.Pocket{Name: "Premium", PricePerMonth: 30})
	s.Require().NoError(err)
}

func (s *TraineeServiceSuite) enroll(complexID uint, personID string, group *sportgroup.SportGroup, plan *pocket.Pocket, paid bool) *Trainee {
	t, err := s.service.Add(s.ctx, &Trainee{
		FirstName: "Kim",
		LastName:  "Park",
		ComplexID: complexID,
		PersonID:  personID,
		GroupID:   group.ID,
		PocketID:  plan.ID,
		IsPaid:    paid,
	})
	s.Require().NoError(err)
	return t
}

func (s *TraineeServiceSuite) TestPersonIsUniquePerComplex() {
	s.enroll(1, "T-1", s.juniors, s.basic, false)

	_, err := s.service.Add(s.ctx, &Trainee{ComplexID: 1, PersonID: "T-1", GroupID: s.seniors.ID, PocketID: s.basic.ID})
	s.Require().Error(err)
	s.True(common.IsResourceExists(err))
	s.Equal("Trainee with PersonId:T-1 already exist", err.Error())

	s.enroll(2, "T-1", s.juniors, s.basic, false)
}

func (s *TraineeServiceSuite) TestFilters() {
	s.enroll(1, "a", s.juniors, s.basic, true)
	s.enroll(1, "b", s.juniors, s.premium, false)
	s.enroll(1, "c", s.seniors, s.premium, false)
	s.enroll(2, "d", s.juniors, s.basic, true)

	all, err := s.service.ListByComplex(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(all, 3)

	juniors, err := s.service.ListByGroup(s.ctx, 1, s.juniors.ID)
	s.Require().NoError(err)
	s.Len(juniors, 2)

	premium, err := s.service.ListByPocket(s.ctx, 1, s.premium.ID)
	s.Require().NoError(err)
	s.Len(premium, 2)

	unpaid, err := s.service.ListByPaymentStatus(s.ctx, 1, false)
	s.Require().NoError(err)
	s.Len(unpaid, 2)
	paid, err := s.service.ListByPaymentStatus(s.ctx, 1, true)
	s.Require().NoError(err)
	s.Require().Len(paid, 1)
	s.Equal("a", paid[0].PersonID)

	d, err := s.service.GetByPerson(s.ctx, 2, "d")
	s.Require().NoError(err)
	s.Require().NotNil(d.Group)
	s.Require().NotNil(d.Group.SportType)
	s.Equal("Swimming", d.Group.SportType.Name)
	s.Require().NotNil(d.Pocket)
	s.Equal("Basic", d.Pocket.Name)

	_, err = s.service.GetByPerson(s.ctx, 1, "d")
	s.True(common.IsNotFound(err))
}

func (s *TraineeServiceSuite) TestUpdateWritesAllThreeFieldsTogether() {
	t := s.enroll(1, "x", s.juniors, s.basic, true)

	updated, err := s.service.Update(s.ctx, t.ID, Patch{GroupID: s.seniors.ID, PocketID: s.premium.ID, IsPaid: false})
	s.Require().NoError(err)
	s.Equal(s.seniors.ID, updated.GroupID)
	s.Equal(s.premium.ID, updated.PocketID)
	s.False(updated.IsPaid)
	s.Require().NotNil(updated.Group)
	s.Equal(s.seniors.Name, updated.Group.Name)
	s.Require().NotNil(updated.Group.SportType)
	s.Require().NotNil(updated.Pocket)
	s.Equal(s.premium.Name, updated.Pocket.Name)

	reloaded, err := s.service.Get(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal("Seniors", reloaded.Group.Name)
	s.Equal("Premium", reloaded.Pocket.Name)
	s.False(reloaded.IsPaid, "false must be written, not skipped as a zero value")
	s.Equal("x", reloaded.PersonID)

	writes := s.repo.Writes()
	_, err = s.service.Update(s.ctx, 777, Patch{GroupID: s.juniors.ID, PocketID: s.basic.ID})
	s.True(common.IsNotFound(err))
	s.Equal(writes, s.repo.Writes())
}

func (s *TraineeServiceSuite) TestDelete() {
	t := s.enroll(1, "gone", s.seniors, s.basic, false)

	deleted, err := s.service.Delete(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal("Seniors", deleted.Group.Name)

	_, err = s.service.Delete(s.ctx, t.ID)
	s.True(common.IsNotFound(err))
}
