// SPDX-License-Identifier: GPL-3.0-only

package models

import "time"

type WizardDraft struct {
	ID        uint   `gorm:"primaryKey"`
	Flow      string `gorm:"size:32;not null;uniqueIndex:idx_wizard_drafts_flow_key"`
	DraftKey  string `gorm:"size:128;not null;uniqueIndex:idx_wizard_drafts_flow_key"`
	Version   int    `gorm:"not null"`
	Step      int    `gorm:"not null"`
	Submitted bool   `gorm:"not null;default:false"`
	Payload   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func init() {
	AllModels = append(AllModels, &WizardDraft{})
}
