// SPDX-License-Identifier: GPL-3.0-only

// Package store holds the repositories over the platform's gorm models. A Store is
// built once per process from an open connection and passed to whoever needs it.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	Orders      *Orders
	Redemptions *Redemptions
	Drafts      *Drafts
	Events      *Events
}

func New(conn *gorm.DB) *Store {
	return &Store{
		Orders:      &Orders{db: conn},
		Redemptions: &Redemptions{db: conn},
		Drafts:      &Drafts{db: conn},
		Events:      &Events{db: conn},
	}
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListOptions struct {
	Page     int
	PageSize int
	Status   string
}

// Normalize clamps the page to at least 1 and the page size to 1..100, defaulting to 20.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = defaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
	return o
}

func (o ListOptions) offset() int {
	return (o.Page - 1) * o.PageSize
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type countRow struct {
	Name  string
	Count int64
}

func toCounts(rows []countRow) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Count
	}
	return out
}
