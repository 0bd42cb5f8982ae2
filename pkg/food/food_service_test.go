package food_test

import (
	"context"
	"testing"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/testutil"
	"Food-Sustainability-Backend/pkg/food"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) food.FoodService {
	t.Helper()
	return food.NewFoodService(food.NewFoodRepository(testutil.NewDB(t)))
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, domain.CreateFoodItemRequest{
		Name: "Milk", Category: "dairy", ExpirationDays: 7, CostPerUnit: 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)
	assert.Equal(t, 7, got.ExpirationDays)

	byCategory, err := svc.FindByCategory(ctx, "dairy")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	none, err := svc.FindByCategory(ctx, "grain")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindByNameIsExact(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Create(ctx, domain.CreateFoodItemRequest{
		Name: "Kiwi", Category: "fruit", ExpirationDays: 10, CostPerUnit: 5,
	})
	require.NoError(t, err)

	hit, err := svc.FindByName(ctx, "Kiwi")
	require.NoError(t, err)
	require.NotNil(t, hit)

	miss, err := svc.FindByName(ctx, "kiwi")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestFindOneAndRemoveNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.FindOne(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	_, err = svc.FindOne(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, uuid.NewString()), domain.ErrFoodItemNotFound)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, domain.CreateFoodItemRequest{
		Name: "Bread", Category: "grain", ExpirationDays: 5, CostPerUnit: 45,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, created.ID))

	_, err = svc.FindOne(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	msg, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageFoodItemsSeeded, msg)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	seeded := len(all)
	assert.NotZero(t, seeded)

	msg, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageFoodItemsAlreadySeeded, msg)

	all, err = svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, seeded)
}
