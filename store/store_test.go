// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"scratchcard-server/db/dbtest"
	"scratchcard-server/models"
	"scratchcard-server/wizard"
)

func newOrder(ref string, status models.OrderStatus, items ...models.OrderItem) *models.Order {
	o := &models.Order{
		Reference:       ref,
		FullName:        "Bola Ahmed",
		Email:           "bola@example.com",
		Phone:           "08031234567",
		Operator:        "MTN",
		DeliveryAddress: "1 Broad Street, Lagos",
		Status:          status,
		Items:           items,
	}
	for _, it := range items {
		o.TotalQuantity += it.Quantity
		o.TotalAmount += int64(it.Denomination * it.Quantity)
	}
	return o
}

func TestOrdersCreateGetAndList(t *testing.T) {
	ctx := context.Background()
	s := New(dbtest.Open(t))

	for i := 0; i < 3; i++ {
		status := models.OrderPending
		if i == 2 {
			status = models.OrderApproved
		}
		o := newOrder(fmt.Sprintf("ORD-%d", i), status, models.OrderItem{Denomination: 2000, Quantity: 100})
		require.NoError(t, s.Orders.Create(ctx, o))
	}

	got, err := s.Orders.Get(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2000, got.Items[0].Denomination)

	_, err = s.Orders.Get(ctx, "ORD-404")
	assert.ErrorIs(t, err, ErrNotFound)

	all, total, err := s.Orders.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	pending, total, err := s.Orders.List(ctx, ListOptions{Status: string(models.OrderPending), PageSize: 1, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pending, 1)
}

func TestOrdersUpdateStatusAndTotals(t *testing.T) {
	ctx := context.Background()
	s := New(dbtest.Open(t))

	require.NoError(t, s.Orders.Create(ctx, newOrder("ORD-A", models.OrderPending,
		models.OrderItem{Denomination: 2000, Quantity: 100},
		models.OrderItem{Denomination: 500, Quantity: 20},
	)))
	require.NoError(t, s.Orders.Create(ctx, newOrder("ORD-B", models.OrderPending,
		models.OrderItem{Denomination: 1000, Quantity: 100},
	)))

	require.NoError(t, s.Orders.UpdateStatus(ctx, "ORD-B", models.OrderApproved))
	assert.ErrorIs(t, s.Orders.UpdateStatus(ctx, "ORD-Z", models.OrderApproved), ErrNotFound)

	totals, err := s.Orders.Totals(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals.Orders)
	assert.EqualValues(t, 220, totals.Cards)
	assert.EqualValues(t, 2000*100+500*20+1000*100, totals.FaceValue)
	assert.Equal(t, map[string]int64{"PENDING": 1, "APPROVED": 1}, totals.ByStatus)
}

func TestRedemptions(t *testing.T) {
	ctx := context.Background()
	s := New(dbtest.Open(t))

	mk := func(ref, serial, operator string, status models.RedemptionStatus) *models.Redemption {
		return &models.Redemption{
			Reference:     ref,
			SerialNumber:  serial,
			FullName:      "Ife Ade",
			Phone:         "08031234567",
			Operator:      operator,
			BankName:      "GTBank",
			AccountNumber: "0123456789",
			AccountName:   "Ife Ade",
			BVNHash:       "h1",
			NINHash:       "h2",
			Status:        status,
		}
	}

	require.NoError(t, s.Redemptions.Create(ctx, mk("RDM-1", "AB-123456", "MTN", models.RedemptionPending)))
	require.NoError(t, s.Redemptions.Create(ctx, mk("RDM-2", "AB-654321", "Unknown", models.RedemptionRejected)))

	exists, err := s.Redemptions.ExistsForSerial(ctx, "AB-123456")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Redemptions.ExistsForSerial(ctx, "AB-654321")
	require.NoError(t, err)
	assert.False(t, exists, "rejected redemptions do not block a retry")

	list, total, err := s.Redemptions.List(ctx, ListOptions{Status: string(models.RedemptionPending)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "RDM-1", list[0].Reference)

	totals, err := s.Redemptions.Totals(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals.Redemptions)
	assert.Equal(t, map[string]int64{"MTN": 1, "Unknown": 1}, totals.ByOperator)
	assert.Equal(t, map[string]int64{"PENDING": 1, "REJECTED": 1}, totals.ByStatus)
}

func TestRedemptionsOneActivePerCard(t *testing.T) {
	ctx := context.Background()
	conn := dbtest.Open(t)
	s := New(conn)

	mk := func(ref string, status models.RedemptionStatus) *models.Redemption {
		return &models.Redemption{
			Reference:     ref,
			SerialNumber:  "AB-123456",
			FullName:      "Ife Ade",
			Phone:         "08031234567",
			Operator:      "MTN",
			BankName:      "GTBank",
			AccountNumber: "0123456789",
			AccountName:   "Ife Ade",
			BVNHash:       "h1",
			NINHash:       "h2",
			Status:        status,
		}
	}

	require.NoError(t, s.Redemptions.Create(ctx, mk("RDM-R1", models.RedemptionRejected)))
	require.NoError(t, s.Redemptions.Create(ctx, mk("RDM-R2", models.RedemptionRejected)))
	require.NoError(t, s.Redemptions.Create(ctx, mk("RDM-1", models.RedemptionPending)))

	err := s.Redemptions.Create(ctx, mk("RDM-2", models.RedemptionPending))
	assert.ErrorIs(t, err, ErrDuplicateSerial)

	// An insert that skips the existence check is still refused by the index.
	err = conn.WithContext(ctx).Create(mk("RDM-3", models.RedemptionPaid)).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var active int64
	require.NoError(t, conn.Model(&models.Redemption{}).
		Where("serial_number = ? AND status <> ?", "AB-123456", models.RedemptionRejected).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func TestDraftsUpsertLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := New(dbtest.Open(t))

	_, err := s.Drafts.Load(ctx, "order", "session-1")
	assert.ErrorIs(t, err, ErrNotFound)

	d := wizard.Draft{Version: wizard.DraftVersion, Flow: "order", Step: 1, Values: json.RawMessage(`{"full_name":"A"}`)}
	require.NoError(t, s.Drafts.Save(ctx, "session-1", d))

	d.Step = 2
	d.Values = json.RawMessage(`{"full_name":"B"}`)
	require.NoError(t, s.Drafts.Save(ctx, "session-1", d))

	loaded, err := s.Drafts.Load(ctx, "order", "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Step)
	assert.JSONEq(t, `{"full_name":"B"}`, string(loaded.Values))

	_, err = s.Drafts.Load(ctx, "redemption", "session-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Drafts.Delete(ctx, "order", "session-1"))
	_, err = s.Drafts.Load(ctx, "order", "session-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	s := New(dbtest.Open(t))

	key := "order.placed"
	require.NoError(t, s.Events.Log(ctx, models.EventLog{
		Category:   models.OrderEvent,
		Status:     models.Queued,
		Reference:  "ORD-1",
		RoutingKey: &key,
	}))

	events, err := s.Events.ForReference(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", events[0].EID.String())
	assert.Equal(t, models.Queued, events[0].Status)
}

func TestListOptionsNormalize(t *testing.T) {
	o := ListOptions{Page: -1, PageSize: 1000}.Normalize()
	assert.Equal(t, 1, o.Page)
	assert.Equal(t, maxPageSize, o.PageSize)
	assert.Equal(t, 0, o.offset())

	o = ListOptions{Page: 3}.Normalize()
	assert.Equal(t, defaultPageSize, o.PageSize)
	assert.Equal(t, 40, o.offset())
}
