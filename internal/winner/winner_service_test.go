package winner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/participant"
	"github.com/DhavalSuthar-24/sportcomplex/internal/pocket"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainee"
)

type WinnerServiceSuite struct {
	suite.Suite
	ctx          context.Context
	service      *Service
	participants *participant.Service
}

func TestWinnerServiceSuite(t *testing.T) {
	suite.Run(t, new(WinnerServiceSuite))
}

func (s *WinnerServiceSuite) SetupTest() {
	db := testutil.NewDB(s.T(),
		&sporttype.SportType{}, &sportgroup.SportGroup{}, &pocket.Pocket{},
		&trainee.Trainee{}, &sportevent.SportEvent{}, &participant.Participant{}, &Winner{})
	s.ctx = context.Background()
	s.service = NewService(store.NewRepository[Winner](db))
	s.participants = participant.NewService(store.NewRepository[participant.Participant](db))
}

func (s *WinnerServiceSuite) register(eventID, traineeID uint) *participant.Participant {
	p, err := s.participants.Add(s.ctx, &participant.Participant{SportEventID: eventID, TraineeID: traineeID})
	s.Require().NoError(err)
	return p
}

func (s *WinnerServiceSuite) award(p *participant.Participant, place int) *Winner {
	w, err := s.service.Add(s.ctx, &Winner{ParticipantID: p.ID, Place: place})
	s.Require().NoError(err)
	return w
}

func (s *WinnerServiceSuite) TestNoUniquenessOnParticipantOrPlace() {
	a := s.register(1, 1)
	b := s.register(1, 2)

	s.award(a, 1)
	s.award(a, 1)
	s.award(b, 1)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *WinnerServiceSuite) TestListByEventGoesThroughParticipants() {
	a := s.register(1, 1)
	b := s.register(1, 2)
	other := s.register(2, 1)

	s.award(b, 2)
	s.award(a, 1)
	s.award(other, 1)

	winners, err := s.service.ListByEvent(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(winners, 2)
	s.Equal(1, winners[0].Place)
	s.Equal(a.ID, winners[0].ParticipantID)
	s.Require().NotNil(winners[0].Participant)
	s.Equal(uint(1), winners[0].Participant.SportEventID)

	none, err := s.service.ListByEvent(s.ctx, 99)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *WinnerServiceSuite) TestGetByParticipantAndDelete() {
	a := s.register(5, 5)
	w := s.award(a, 3)

	found, err := s.service.GetByParticipant(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(w.ID, found.ID)

	_, err = s.service.GetByParticipant(s.ctx, 404)
	s.True(common.IsNotFound(err))

	deleted, err := s.service.Delete(s.ctx, w.ID)
	s.Require().NoError(err)
	s.Equal(3, deleted.Place)

	_, err = s.service.Delete(s.ctx, w.ID)
	s.True(common.IsNotFound(err))
}
