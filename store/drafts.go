// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scratchcard-server/models"
	"scratchcard-server/wizard"
)

// Drafts persists wizard snapshots under a (flow, key) pair.
type Drafts struct {
	db *gorm.DB
}

func (s *Drafts) Save(ctx context.Context, key string, d wizard.Draft) error {
	row := models.WizardDraft{
		Flow:      d.Flow,
		DraftKey:  key,
		Version:   d.Version,
		Step:      d.Step,
		Submitted: d.Submitted,
		Payload:   string(d.Values),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "flow"}, {Name: "draft_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "step", "submitted", "payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save %s draft %s: %w", d.Flow, key, err)
	}
	return nil
}

func (s *Drafts) Load(ctx context.Context, flow, key string) (wizard.Draft, error) {
	var row models.WizardDraft
	if err := s.db.WithContext(ctx).Where("flow = ? AND draft_key = ?", flow, key).First(&row).Error; err != nil {
		return wizard.Draft{}, notFound(err)
	}
	d := wizard.Draft{
		Version:   row.Version,
		Flow:      row.Flow,
		Step:      row.Step,
		Submitted: row.Submitted,
	}
	if row.Payload != "" {
		d.Values = json.RawMessage(row.Payload)
	}
	return d, nil
}

func (s *Drafts) Delete(ctx context.Context, flow, key string) error {
	if err := s.db.WithContext(ctx).Where("flow = ? AND draft_key = ?", flow, key).Delete(&models.WizardDraft{}).Error; err != nil {
		return fmt.Errorf("delete %s draft %s: %w", flow, key, err)
	}
	return nil
}
