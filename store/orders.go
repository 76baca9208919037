// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scratchcard-server/models"
)

type Orders struct {
	db *gorm.DB
}

// Create inserts the order together with its items.
func (s *Orders) Create(ctx context.Context, order *models.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order %s: %w", order.Reference, err)
	}
	return nil
}

func (s *Orders) Get(ctx context.Context, reference string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").Where("reference = ?", reference).First(&order).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *Orders) List(ctx context.Context, opts ListOptions) ([]models.Order, int64, error) {
	opts = opts.Normalize()
	query := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.Order{})
		if opts.Status != "" {
			q = q.Where("status = ?", opts.Status)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	var orders []models.Order
	if err := query().Preload("Items").
		Order("created_at DESC, id DESC").
		Offset(opts.offset()).
		Limit(opts.PageSize).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

func (s *Orders) UpdateStatus(ctx context.Context, reference string, status models.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("reference = ?", reference).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update order %s: %w", reference, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type OrderTotals struct {
	Orders    int64            `json:"orders"`
	Cards     int64            `json:"cards"`
	FaceValue int64            `json:"face_value"`
	ByStatus  map[string]int64 `json:"by_status"`
}

func (s *Orders) Totals(ctx context.Context) (OrderTotals, error) {
	var sums struct {
		Orders    int64
		Cards     int64
		FaceValue int64
	}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total_quantity), 0) AS cards, COALESCE(SUM(total_amount), 0) AS face_value").
		Scan(&sums).Error; err != nil {
		return OrderTotals{}, fmt.Errorf("sum orders: %w", err)
	}
	totals := OrderTotals{Orders: sums.Orders, Cards: sums.Cards, FaceValue: sums.FaceValue}

	var rows []countRow
	if err := db.Model(&models.Order{}).
		Select("status AS name, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return OrderTotals{}, fmt.Errorf("count orders by status: %w", err)
	}
	totals.ByStatus = toCounts(rows)
	return totals, nil
}
