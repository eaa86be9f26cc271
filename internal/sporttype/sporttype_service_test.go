package sporttype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type SportTypeServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutil.SpyRepository[SportType]
	service *Service
}

func TestSportTypeServiceSuite(t *testing.T) {
	suite.Run(t, new(SportTypeServiceSuite))
}

func (s *SportTypeServiceSuite) SetupTest() {
	db := testutil.NewDB(s.T(), &SportType{})
	s.ctx = context.Background()
	s.repo = testutil.Spy(store.NewRepository[SportType](db))
	s.service = NewService(s.repo)
}

func (s *SportTypeServiceSuite) add(name string) *SportType {
	st, err := s.service.Add(s.ctx, &SportType{Name: name})
	s.Require().NoError(err)
	return st
}

func (s *SportTypeServiceSuite) TestAddRejectsDuplicateName() {
	first := s.add("Football")
	s.NotZero(first.ID)

	_, err := s.service.Add(s.ctx, &SportType{Name: "Football"})
	s.Require().Error(err)
	s.True(common.IsResourceExists(err))
	s.Contains(err.Error(), "Football")
}

func (s *SportTypeServiceSuite) TestUpdate() {
	s.Run("renames", func() {
		st := s.add("Swimming")
		updated, err := s.service.Update(s.ctx, st.ID, Patch{Name: "Diving"})
		s.Require().NoError(err)
		s.Equal("Diving", updated.Name)

		stored, err := s.service.Get(s.ctx, st.ID)
		s.Require().NoError(err)
		s.Equal("Diving", stored.Name)
	})

	s.Run("keeping the same name is not a conflict", func() {
		st := s.add("Tennis")
		_, err := s.service.Update(s.ctx, st.ID, Patch{Name: "Tennis"})
		s.Require().NoError(err)
	})

	s.Run("rejects a name held by another record", func() {
		s.add("Boxing")
		other := s.add("Judo")
		_, err := s.service.Update(s.ctx, other.ID, Patch{Name: "Boxing"})
		s.True(common.IsResourceExists(err))
	})

	s.Run("missing id", func() {
		writes := s.repo.Writes()
		_, err := s.service.Update(s.ctx, 999, Patch{Name: "Chess"})
		s.True(common.IsNotFound(err))
		s.Equal(writes, s.repo.Writes())
	})
}

func (s *SportTypeServiceSuite) TestDelete() {
	st := s.add("Rugby")

	deleted, err := s.service.Delete(s.ctx, st.ID)
	s.Require().NoError(err)
	s.Equal("Rugby", deleted.Name)

	_, err = s.service.Get(s.ctx, st.ID)
	s.True(common.IsNotFound(err))

	_, err = s.service.Delete(s.ctx, st.ID)
	s.True(common.IsNotFound(err))
}

func (s *SportTypeServiceSuite) TestListIsStable() {
	s.add("A")
	s.add("B")

	first, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.List(s.ctx)
	s.Require().NoError(err)

	s.Len(first, 2)
	s.Equal(first, second)
}
