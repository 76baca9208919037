// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scratchcard-server/models"
)

type Events struct {
	db *gorm.DB
}

func (s *Events) Log(ctx context.Context, event models.EventLog) error {
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to create event log: %w", err)
	}
	return nil
}

func (s *Events) ForReference(ctx context.Context, reference string) ([]models.EventLog, error) {
	var events []models.EventLog
	if err := s.db.WithContext(ctx).Where("reference = ?", reference).Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events for %s: %w", reference, err)
	}
	return events, nil
}
