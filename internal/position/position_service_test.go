package position

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

func newService(t *testing.T) (*Service, *testutil.SpyRepository[Position]) {
	db := testutil.NewDB(t, &Position{})
	repo := testutil.Spy(store.NewRepository[Position](db))
	return NewService(repo), repo
}

func TestPositionAdd(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	manager, err := svc.Add(ctx, &Position{Name: "Manager"})
	require.NoError(t, err)
	assert.NotZero(t, manager.ID)

	_, err = svc.Add(ctx, &Position{Name: "Manager"})
	require.Error(t, err)
	assert.True(t, common.IsResourceExists(err))
	assert.Equal(t, "Position Manager already exist", err.Error())
}

func TestPositionUpdate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	coach, err := svc.Add(ctx, &Position{Name: "Coach"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &Position{Name: "Cleaner"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, coach.ID, Patch{Name: "Cleaner"})
	assert.True(t, common.IsResourceExists(err))

	updated, err := svc.Update(ctx, coach.ID, Patch{Name: "Head coach"})
	require.NoError(t, err)
	assert.Equal(t, "Head coach", updated.Name)

	_, err = svc.Update(ctx, coach.ID, Patch{Name: "Head coach"})
	assert.NoError(t, err, "unchanged name must not collide with itself")

	writes := repo.Writes()
	_, err = svc.Update(ctx, 404, Patch{Name: "Ghost"})
	assert.True(t, common.IsNotFound(err))
	assert.Equal(t, writes, repo.Writes(), "missing record must not reach the store")
}

func TestPositionDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Delete(ctx, 1)
	assert.True(t, common.IsNotFound(err))

	p, err := svc.Add(ctx, &Position{Name: "Guard"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)

	_, err = svc.Get(ctx, p.ID)
	assert.True(t, common.IsNotFound(err))
}

func TestPositionStoreFaultPropagates(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)
	boom := errors.New("store unavailable")
	repo.FailWith(boom)

	_, err := svc.Add(ctx, &Position{Name: "Any"})
	require.ErrorIs(t, err, boom)
	assert.False(t, common.IsResourceExists(err))
	assert.False(t, common.IsNotFound(err))

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, boom)
}
