// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string
type EventCategory string

const (
	Pending EventStatus = "PENDING"
	Queued  EventStatus = "QUEUED"
	Failed  EventStatus = "FAILED"
)

const (
	OrderEvent      EventCategory = "ORDER"
	RedemptionEvent EventCategory = "REDEMPTION"
)

type EventLog struct {
	ID          uint          `gorm:"primaryKey"`
	EID         uuid.UUID     `gorm:"type:uuid;not null;"`
	Category    EventCategory `gorm:"size:16;not null;index"`
	Status      EventStatus   `gorm:"size:16;not null;index"`
	Reference   string        `gorm:"size:64;not null;index"`
	RoutingKey  *string       `gorm:"size:255;default:null;"`
	Description *string       `gorm:"type:text;default:null;"`
	To          *string       `gorm:"size:255;default:null;"`
	Carrier     *string       `gorm:"size:16;default:null;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (eventLog *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	eventLog.EID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &EventLog{})
}
