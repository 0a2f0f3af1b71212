package gorm

import (
	"github.com/bornholm/timestamped"
	"gorm.io/gorm"
)

// Model is an embeddable base adding self-updating "created" and "modified"
// columns to a gorm entity:
//
//	import tsgorm "github.com/bornholm/timestamped/pkg/gorm"
//
//	type Article struct {
//		tsgorm.Model
//		Title string
//	}
//
// Created is assigned once, when the record is first stored; Modified is
// reassigned on every store operation. Both can be overridden through
// SetCreatedDate and SetModifiedDate when backfilling imported data.
//
// The insert-vs-update signal comes from gorm's callback split: BeforeCreate
// only fires on first persistence, BeforeUpdate on every later one.
// Timestamps are read from the session's NowFunc so that clock and timezone
// policy follow the host gorm configuration.
type Model struct {
	timestamped.Timestamps
}

// BeforeCreate implements gorm's create hook.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	m.OnFirstPersist(tx.NowFunc())
	return nil
}

// BeforeUpdate implements gorm's update hook.
func (m *Model) BeforeUpdate(tx *gorm.DB) error {
	m.OnEveryPersist(tx.NowFunc())

	if tx.Statement != nil {
		// Updates() with a map or a partial struct builds its assignments
		// from the statement, not from the hooked model.
		tx.Statement.SetColumn("modified", m.Modified, true)
	}

	return nil
}
