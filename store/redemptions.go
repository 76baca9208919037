// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"scratchcard-server/models"
)

type Redemptions struct {
	db *gorm.DB
}

var ErrDuplicateSerial = errors.New("card already has an active redemption")

// Create stores r unless the card already has a redemption that was not rejected, in
// which case it returns ErrDuplicateSerial. The check and the insert share a
// transaction and the active_serial unique index catches concurrent inserts.
func (s *Redemptions) Create(ctx context.Context, r *models.Redemption) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := existsForSerial(tx, r.SerialNumber)
		if err != nil {
			return err
		}
		if exists && r.Status != models.RedemptionRejected {
			return ErrDuplicateSerial
		}
		if err := tx.Create(r).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSerial
			}
			return fmt.Errorf("create redemption %s: %w", r.Reference, err)
		}
		return nil
	})
}

// ExistsForSerial reports whether a redemption that has not been rejected exists for
// the card.
func (s *Redemptions) ExistsForSerial(ctx context.Context, serial string) (bool, error) {
	return existsForSerial(s.db.WithContext(ctx), serial)
}

func existsForSerial(db *gorm.DB, serial string) (bool, error) {
	var count int64
	err := db.Model(&models.Redemption{}).
		Where("serial_number = ? AND status <> ?", serial, models.RedemptionRejected).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count redemptions for %s: %w", serial, err)
	}
	return count > 0, nil
}

func (s *Redemptions) List(ctx context.Context, opts ListOptions) ([]models.Redemption, int64, error) {
	opts = opts.Normalize()
	query := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.Redemption{})
		if opts.Status != "" {
			q = q.Where("status = ?", opts.Status)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count redemptions: %w", err)
	}

	var out []models.Redemption
	if err := query().Order("created_at DESC, id DESC").
		Offset(opts.offset()).
		Limit(opts.PageSize).
		Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("list redemptions: %w", err)
	}
	return out, total, nil
}

type RedemptionTotals struct {
	Redemptions int64            `json:"redemptions"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByOperator  map[string]int64 `json:"by_operator"`
}

func (s *Redemptions) Totals(ctx context.Context) (RedemptionTotals, error) {
	var totals RedemptionTotals
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Redemption{}).Count(&totals.Redemptions).Error; err != nil {
		return RedemptionTotals{}, fmt.Errorf("count redemptions: %w", err)
	}

	var byStatus []countRow
	if err := db.Model(&models.Redemption{}).
		Select("status AS name, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return RedemptionTotals{}, fmt.Errorf("count redemptions by status: %w", err)
	}

	var byOperator []countRow
	if err := db.Model(&models.Redemption{}).
		Select("operator AS name, COUNT(*) AS count").
		Group("operator").
		Scan(&byOperator).Error; err != nil {
		return RedemptionTotals{}, fmt.Errorf("count redemptions by operator: %w", err)
	}

	totals.ByStatus = toCounts(byStatus)
	totals.ByOperator = toCounts(byOperator)
	return totals, nil
}
