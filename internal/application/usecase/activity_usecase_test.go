package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/application/usecase"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/infrastructure/memory"
)

func TestRecentActivity(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())

	p, err := uc.AddProduct(ctx, aliceActor, widgetRequest())
	require.NoError(t, err)
	_, err = uc.AddCategory(ctx, adminActor, dto.CreateCategoryRequest{Name: "Paint"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteProduct(ctx, aliceActor, p.ID))

	feed, err := uc.RecentActivity(adminActor, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "Product deleted", feed[0].Label)
	assert.Equal(t, "Unknown product", feed[0].Details)
	assert.Equal(t, "Category added", feed[1].Label)
	assert.Equal(t, "Paint", feed[1].Details)
	assert.Equal(t, "Product added", feed[2].Label)

	own, err := uc.RecentActivity(aliceActor, 0)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, item := range own {
		assert.Equal(t, "alice@x.com", item.DoneBy)
	}

	limited, err := uc.RecentActivity(adminActor, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = uc.RecentActivity(nil, 0)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRecentActivity_LimitePorDefecto(t *testing.T) {
	ctx := context.Background()
	uc := newData(t, memory.NewSnapshotStore())
	for _, name := range []string{"Paint", "Glue", "Tape", "Rope", "Wire"} {
		_, err := uc.AddCategory(ctx, adminActor, dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	feed, err := uc.RecentActivity(adminActor, 0)
	require.NoError(t, err)
	assert.Len(t, feed, usecase.DefaultRecentActivities)
	assert.Equal(t, "Wire", feed[0].Details)
	assert.Len(t, uc.Activities(), 5, "el registro no se poda")
}

func TestActivityLabel(t *testing.T) {
	assert.Equal(t, "User updated", usecase.ActivityLabel(entity.ActivityUserUpdate))
	assert.Equal(t, "Category deleted", usecase.ActivityLabel(entity.ActivityCategoryDelete))
	assert.Equal(t, "Unknown activity", usecase.ActivityLabel(entity.ActivityType("stock-move")))
}
