// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

type RedemptionStatus string

const (
	RedemptionPending  RedemptionStatus = "PENDING"
	RedemptionPaid     RedemptionStatus = "PAID"
	RedemptionRejected RedemptionStatus = "REJECTED"
)

// Redemption is a request to pay a card's value into a bank account. BVN and NIN are
// kept as argon2id hashes only. ActiveSerial mirrors SerialNumber until the
// redemption is rejected; its unique index allows one live redemption per card.
type Redemption struct {
	ID            uint             `gorm:"primaryKey"`
	Reference     string           `gorm:"size:64;not null;uniqueIndex"`
	SerialNumber  string           `gorm:"size:9;not null;index"`
	ActiveSerial  *string          `gorm:"size:9;uniqueIndex"`
	FullName      string           `gorm:"size:100;not null"`
	Phone         string           `gorm:"size:11;not null"`
	Operator      string           `gorm:"size:16;not null;index"`
	BankName      string           `gorm:"size:100;not null"`
	AccountNumber string           `gorm:"size:10;not null"`
	AccountName   string           `gorm:"size:100;not null"`
	BVNHash       string           `gorm:"not null"`
	NINHash       string           `gorm:"not null"`
	Status        RedemptionStatus `gorm:"size:16;not null;default:PENDING;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (r *Redemption) BeforeSave(tx *gorm.DB) error {
	if r.Status == RedemptionRejected {
		r.ActiveSerial = nil
		return nil
	}
	serial := r.SerialNumber
	r.ActiveSerial = &serial
	return nil
}

func init() {
	AllModels = append(AllModels, &Redemption{})
}
