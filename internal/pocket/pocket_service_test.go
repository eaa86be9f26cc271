package pocket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type PocketServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutil.SpyRepository[Pocket]
	service *Service
}

func TestPocketServiceSuite(t *testing.T) {
	suite.Run(t, new(PocketServiceSuite))
}

func (s *PocketServiceSuite) SetupTest() {
	db := testutil.NewDB(s.T(), &Pocket{})
	s.ctx = context.Background()
	s.repo = testutil.Spy(store.NewRepository[Pocket](db))
	s.service = NewService(s.repo)
}

// TestPriceChangeKeepsName walks the create / conflict / update lifecycle of a pocket.
func (s *PocketServiceSuite) TestPriceChangeKeepsName() {
	created, err := s.service.Add(s.ctx, &Pocket{Name: "A", PricePerMonth: 10})
	s.Require().NoError(err)
	s.Equal(uint(1), created.ID)

	_, err = s.service.Add(s.ctx, &Pocket{Name: "A", PricePerMonth: 999})
	s.Require().Error(err)
	s.True(common.IsResourceExists(err))

	_, err = s.service.Update(s.ctx, 1, Patch{PricePerMonth: 15})
	s.Require().NoError(err)

	stored, err := s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(15.0, stored.PricePerMonth)
	s.Equal("A", stored.Name)
}

func (s *PocketServiceSuite) TestUpdateMissingDoesNotWrite() {
	_, err := s.service.Update(s.ctx, 77, Patch{PricePerMonth: 1})
	s.True(common.IsNotFound(err))
	s.Zero(s.repo.Writes())
}

func (s *PocketServiceSuite) TestUpdateToZeroPrice() {
	p, err := s.service.Add(s.ctx, &Pocket{Name: "Trial", PricePerMonth: 20})
	s.Require().NoError(err)

	_, err = s.service.Update(s.ctx, p.ID, Patch{PricePerMonth: 0})
	s.Require().NoError(err)

	stored, err := s.service.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Zero(stored.PricePerMonth)
}

func (s *PocketServiceSuite) TestDeleteReturnsSnapshot() {
	p, err := s.service.Add(s.ctx, &Pocket{Name: "Gold", PricePerMonth: 50})
	s.Require().NoError(err)

	deleted, err := s.service.Delete(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Gold", deleted.Name)

	_, err = s.service.Get(s.ctx, p.ID)
	s.True(common.IsNotFound(err))
	_, err = s.service.Delete(s.ctx, p.ID)
	s.True(common.IsNotFound(err))
}

func (s *PocketServiceSuite) TestListTwiceWithoutWritesIsEqual() {
	for _, name := range []string{"Silver", "Gold", "Platinum"} {
		_, err := s.service.Add(s.ctx, &Pocket{Name: name, PricePerMonth: 1})
		s.Require().NoError(err)
	}

	first, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Len(first, 3)
}
