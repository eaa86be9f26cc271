package sportevent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type notified struct {
	events []SportEvent
}

func (n *notified) Notify(e SportEvent) {
	n.events = append(n.events, e)
}

type SportEventServiceSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *testutil.SpyRepository[SportEvent]
	notifier *notified
	service  *Service
}

func TestSportEventServiceSuite(t *testing.T) {
	suite.Run(t, new(SportEventServiceSuite))
}

var d1 = time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC)

func (s *SportEventServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = testutil.Spy(store.NewRepository[SportEvent](testutil.NewDB(s.T(), &SportEvent{})))
	s.notifier = &notified{}
	s.service = NewService(s.repo, s.notifier)
}

func (s *SportEventServiceSuite) TestDateIsUniqueAcrossComplexes() {
	first, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "Cup", Date: d1})
	s.Require().NoError(err)
	s.NotZero(first.ID)

	_, err = s.service.Add(s.ctx, &SportEvent{ComplexID: 2, Name: "Unrelated", Date: d1})
	s.Require().Error(err)
	s.True(common.IsResourceExists(err))
	s.Equal("SportComplex has an event in this period", err.Error())

	s.Require().Len(s.notifier.events, 1, "only the stored event is announced")
	s.Equal(first.ID, s.notifier.events[0].ID)
}

func (s *SportEventServiceSuite) TestSameInstantInAnotherZoneConflicts() {
	_, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "A", Date: d1})
	s.Require().NoError(err)

	plus2 := time.FixedZone("UTC+2", 2*60*60)
	_, err = s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "B", Date: d1.In(plus2)})
	s.True(common.IsResourceExists(err))
}

func (s *SportEventServiceSuite) TestAddFailureIsNotAnnounced() {
	s.repo.FailWith(errors.New("db down"))

	_, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "X", Date: d1})
	s.Require().Error(err)
	s.False(common.IsResourceExists(err))
	s.Empty(s.notifier.events)
}

func (s *SportEventServiceSuite) TestListByComplex() {
	for i, complexID := range []uint{1, 1, 2} {
		_, err := s.service.Add(s.ctx, &SportEvent{ComplexID: complexID, Name: "E", Date: d1.AddDate(0, 0, i)})
		s.Require().NoError(err)
	}

	one, err := s.service.ListByComplex(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(one, 2)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *SportEventServiceSuite) TestUpdate() {
	a, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "A", Date: d1})
	s.Require().NoError(err)
	b, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "B", Date: d1.Add(time.Hour)})
	s.Require().NoError(err)

	moved, err := s.service.Update(s.ctx, a.ID, Patch{Name: "A2", Description: "moved", Date: d1.Add(2 * time.Hour)})
	s.Require().NoError(err)
	s.Equal("A2", moved.Name)
	s.Equal(uint(1), moved.ComplexID)

	_, err = s.service.Update(s.ctx, a.ID, Patch{Name: "A3", Date: b.Date})
	s.True(common.IsResourceExists(err), "the store rejects a second event on b's date")

	writes := s.repo.Writes()
	_, err = s.service.Update(s.ctx, 100, Patch{Name: "x", Date: d1})
	s.True(common.IsNotFound(err))
	s.Equal(writes, s.repo.Writes(), "a missing event is never written")

	s.Len(s.notifier.events, 2, "updates are not announced")
}

func (s *SportEventServiceSuite) TestDeleteFreesTheDate() {
	e, err := s.service.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "A", Date: d1})
	s.Require().NoError(err)

	deleted, err := s.service.Delete(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal("A", deleted.Name)

	_, err = s.service.Add(s.ctx, &SportEvent{ComplexID: 2, Name: "B", Date: d1})
	s.NoError(err)
}

func (s *SportEventServiceSuite) TestNilNotifier() {
	svc := NewService(s.repo, nil)
	_, err := svc.Add(s.ctx, &SportEvent{ComplexID: 1, Name: "quiet", Date: d1})
	s.NoError(err)
}
