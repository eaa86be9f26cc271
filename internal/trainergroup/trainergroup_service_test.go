package trainergroup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/employee"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainer"
)

func newService(t *testing.T) *Service {
	db := testutil.NewDB(t,
		&sporttype.SportType{}, &employee.Employee{}, &trainer.Trainer{},
		&sportgroup.SportGroup{}, &TrainerGroup{})
	return NewService(store.NewRepository[TrainerGroup](db))
}

func TestTrainerGroupNoDuplicateEnrollment(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.Add(ctx, &TrainerGroup{TrainerID: 1, GroupID: 2})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.Add(ctx, &TrainerGroup{TrainerID: 1, GroupID: 2})
	require.Error(t, err)
	assert.True(t, common.IsResourceExists(err))
	assert.Equal(t, "Trainer has already enrolled to this group", err.Error())

	_, err = svc.Add(ctx, &TrainerGroup{TrainerID: 1, GroupID: 3})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &TrainerGroup{TrainerID: 4, GroupID: 2})
	require.NoError(t, err)

	byTrainer, err := svc.ListByTrainer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byTrainer, 2)

	byGroup, err := svc.ListByGroup(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byGroup, 2)
}

func TestTrainerGroupDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	tg, err := svc.Add(ctx, &TrainerGroup{TrainerID: 7, GroupID: 8})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, tg.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), deleted.TrainerID)

	_, err = svc.Get(ctx, tg.ID)
	assert.True(t, common.IsNotFound(err))

	_, err = svc.Add(ctx, &TrainerGroup{TrainerID: 7, GroupID: 8})
	assert.NoError(t, err, "enrollment can be re-added after removal")
}
