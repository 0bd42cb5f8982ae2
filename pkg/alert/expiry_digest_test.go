package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/testutil"
	"Food-Sustainability-Backend/pkg/alert"
	"Food-Sustainability-Backend/pkg/food"
	"Food-Sustainability-Backend/pkg/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	to     []string
	bodies []string
	fail   bool
}

func (m *recordingMailer) SendMail(to, _, body string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}

func setup(t *testing.T) (inventory.InventoryService, *testutil.Clock, []string) {
	t.Helper()

	db := testutil.NewDB(t)
	clock := testutil.NewClock(time.Date(2024, 4, 1, 7, 0, 0, 0, time.UTC))

	var ids []string
	for _, u := range []*entities.User{
		{Name: "Jo", Email: "jo@example.com", Password: "x"},
		{Name: "Kim", Email: "kim@example.com", Password: "x"},
	} {
		require.NoError(t, db.Create(u).Error)
		ids = append(ids, u.ID.String())
	}

	foods := food.NewFoodService(food.NewFoodRepository(db))
	return inventory.NewInventoryService(inventory.NewInventoryRepository(db), foods, clock), clock, ids
}

func TestRunMailsOnlyUsersWithExpiringItems(t *testing.T) {
	ctx := context.Background()
	inv, clock, ids := setup(t)

	soon := clock.Now().Add(24 * time.Hour)
	later := clock.Now().Add(30 * 24 * time.Hour)
	_, err := inv.AddItem(ctx, ids[0], "Yogurt", 2, &soon)
	require.NoError(t, err)
	_, err = inv.AddItem(ctx, ids[1], "Rice", 1, &later)
	require.NoError(t, err)

	mailer := &recordingMailer{}
	sent, err := alert.NewExpiryDigest(inv, mailer).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"jo@example.com"}, mailer.to)
	assert.Contains(t, mailer.bodies[0], "Yogurt (2) expires 2024-04-02")
}

func TestRunLogsMailFailures(t *testing.T) {
	ctx := context.Background()
	inv, clock, ids := setup(t)

	soon := clock.Now().Add(time.Hour)
	_, err := inv.AddItem(ctx, ids[0], "Milk", 1, &soon)
	require.NoError(t, err)

	sent, err := alert.NewExpiryDigest(inv, &recordingMailer{fail: true}).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	inv, _, _ := setup(t)

	_, err := alert.NewExpiryDigest(inv, &recordingMailer{}).Schedule("every tuesday")
	assert.Error(t, err)

	c, err := alert.NewExpiryDigest(inv, &recordingMailer{}).Schedule("0 8 * * *")
	require.NoError(t, err)
	c.Stop()
}
