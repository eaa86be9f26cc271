package winner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

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

type fixture struct {
	sportTypes   *sporttype.Service
	groups       *sportgroup.Service
	pockets      *pocket.Service
	trainees     *trainee.Service
	events       *sportevent.Service
	participants *participant.Service
	winners      *Service

	sportType *sporttype.SportType
	group     *sportgroup.SportGroup
	plan      *pocket.Pocket
	kid       *trainee.Trainee
	event     *sportevent.SportEvent
	entry     *participant.Participant
	award     *Winner
}

// newFixture seeds one trainee registered and awarded in one event, with foreign keys enforced.
func newFixture(t *testing.T) *fixture {
	ctx := context.Background()
	db := testutil.NewDBWithForeignKeys(t,
		&sporttype.SportType{}, &sportgroup.SportGroup{}, &pocket.Pocket{},
		&trainee.Trainee{}, &sportevent.SportEvent{}, &participant.Participant{}, &Winner{})

	f := &fixture{
		sportTypes:   sporttype.NewService(store.NewRepository[sporttype.SportType](db)),
		groups:       sportgroup.NewService(store.NewRepository[sportgroup.SportGroup](db)),
		pockets:      pocket.NewService(store.NewRepository[pocket.Pocket](db)),
		trainees:     trainee.NewService(store.NewRepository[trainee.Trainee](db)),
		events:       sportevent.NewService(store.NewRepository[sportevent.SportEvent](db), nil),
		participants: participant.NewService(store.NewRepository[participant.Participant](db)),
		winners:      NewService(store.NewRepository[Winner](db)),
	}

	var err error
	f.sportType, err = f.sportTypes.Add(ctx, &sporttype.SportType{Name: "Judo"})
	require.NoError(t, err)
	f.group, err = f.groups.Add(ctx, &sportgroup.SportGroup{Name: "Juniors", SportTypeID: f.sportType.ID})
	require.NoError(t, err)
	f.plan, err = f.pockets.Add(ctx, &pocket.Pocket{Name: "Monthly", PricePerMonth: 20})
	require.NoError(t, err)
	f.kid, err = f.trainees.Add(ctx, &trainee.Trainee{
		FirstName: "Ada", LastName: "Kim", ComplexID: 1, PersonID: "P1",
		GroupID: f.group.ID, PocketID: f.plan.ID,
	})
	require.NoError(t, err)
	f.event, err = f.events.Add(ctx, &sportevent.SportEvent{
		ComplexID: 1, Name: "Cup", Date: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	f.entry, err = f.participants.Add(ctx, &participant.Participant{SportEventID: f.event.ID, TraineeID: f.kid.ID})
	require.NoError(t, err)
	f.award, err = f.winners.Add(ctx, &Winner{ParticipantID: f.entry.ID, Place: 1})
	require.NoError(t, err)
	return f
}

func (f *fixture) assertGone(t *testing.T, get func(context.Context, uint) error, id uint) {
	t.Helper()
	err := get(context.Background(), id)
	assert.True(t, common.IsNotFound(err), "expected record %d to be removed, got %v", id, err)
}

func TestDeletingEventRemovesRegistrationsAndAwards(t *testing.T) {
	f := newFixture(t)

	deleted, err := f.events.Delete(context.Background(), f.event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cup", deleted.Name)

	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.participants.Get(ctx, id); return err }, f.entry.ID)
	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.winners.Get(ctx, id); return err }, f.award.ID)

	kid, err := f.trainees.Get(context.Background(), f.kid.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", kid.FirstName)
}

func TestDeletingPocketRemovesItsTrainees(t *testing.T) {
	f := newFixture(t)

	deleted, err := f.pockets.Delete(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monthly", deleted.Name)

	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.trainees.Get(ctx, id); return err }, f.kid.ID)
	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.participants.Get(ctx, id); return err }, f.entry.ID)
	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.winners.Get(ctx, id); return err }, f.award.ID)
}

func TestDeletingSportTypeRemovesGroupsDownToAwards(t *testing.T) {
	f := newFixture(t)

	_, err := f.sportTypes.Delete(context.Background(), f.sportType.ID)
	require.NoError(t, err)

	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.groups.Get(ctx, id); return err }, f.group.ID)
	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.trainees.Get(ctx, id); return err }, f.kid.ID)
	f.assertGone(t, func(ctx context.Context, id uint) error { _, err := f.winners.Get(ctx, id); return err }, f.award.ID)

	plan, err := f.pockets.Get(context.Background(), f.plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monthly", plan.Name)
}

func TestForeignKeysRejectUnknownParticipant(t *testing.T) {
	f := newFixture(t)

	_, err := f.winners.Add(context.Background(), &Winner{ParticipantID: f.entry.ID + 100, Place: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}
