package alert

import (
	"context"
	"fmt"
	"time"

	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/utils/mailing"
	"Food-Sustainability-Backend/pkg/inventory"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const digestSubject = "Food expiring soon"

type (
	digestItem struct {
		Name       string
		Quantity   string
		ExpiryDate string
	}

	digest struct {
		Name  string
		Email string
		Items []digestItem
	}

	ExpiryDigest struct {
		inventoryService inventory.InventoryService
		mailer           mailing.Mailer
		timeout          time.Duration
	}
)

func NewExpiryDigest(inventoryService inventory.InventoryService, mailer mailing.Mailer) *ExpiryDigest {
	return &ExpiryDigest{
		inventoryService: inventoryService,
		mailer:           mailer,
		timeout:          5 * time.Minute,
	}
}

// Schedule registers the digest on a new cron scheduler and starts it.
// The caller owns the returned scheduler and must Stop it.
func (d *ExpiryDigest) Schedule(spec string) (*cron.Cron, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid expiry digest schedule %q: %w", spec, err)
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		sent, err := d.Run(ctx)
		if err != nil {
			zap.L().Error("expiry digest failed", zap.Error(err))
			return
		}
		zap.L().Info("expiry digest finished", zap.Int("sent", sent))
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// Run mails every user who has items expiring soon and returns the number of
// mails sent.
func (d *ExpiryDigest) Run(ctx context.Context) (int, error) {
	items, err := d.inventoryService.ExpiringSoon(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, dg := range groupByUser(items) {
		body, err := mailing.Render(mailing.ExpiryDigestTemplate, dg)
		if err != nil {
			zap.L().Error("render expiry digest", zap.Error(err))
			continue
		}
		if err := d.mailer.SendMail(dg.Email, digestSubject, body); err != nil {
			zap.L().Warn("send expiry digest", zap.String("email", dg.Email), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func groupByUser(items []*entities.InventoryItem) []*digest {
	var (
		order  []*digest
		byUser = map[string]*digest{}
	)

	for _, item := range items {
		if item.User == nil || item.ExpiryDate == nil {
			continue
		}

		key := item.UserID.String()
		dg, ok := byUser[key]
		if !ok {
			dg = &digest{Name: item.User.Name, Email: item.User.Email}
			byUser[key] = dg
			order = append(order, dg)
		}

		name := "item"
		if item.FoodItem != nil {
			name = item.FoodItem.Name
		}
		dg.Items = append(dg.Items, digestItem{
			Name:       name,
			Quantity:   fmt.Sprintf("%g", item.Quantity),
			ExpiryDate: item.ExpiryDate.Format("2006-01-02"),
		})
	}
	return order
}
