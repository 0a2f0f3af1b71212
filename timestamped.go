package timestamped

import (
	"time"
)

// Timestamps adds self-updating "created" and "modified" fields to any
// entity embedding it. The values are maintained by the host persistence
// layer, which must call OnFirstPersist when a record is first stored and
// OnEveryPersist on every later store operation. See pkg/gorm for the gorm
// integration.
type Timestamps struct {
	Created  time.Time
	Modified time.Time

	createdOverridden  bool
	modifiedOverridden bool
}

// SetCreatedDate assigns the creation date manually, bypassing the automatic
// assignment on first persistence. This is useful when importing data from
// another system. The override holds for the lifetime of the in-memory
// instance: later saves will not overwrite the value as long as it is set.
func (t *Timestamps) SetCreatedDate(created time.Time) {
	t.createdOverridden = true
	t.Created = created
}

// SetModifiedDate assigns the modification date manually, bypassing the
// automatic update on save. Like SetCreatedDate, the override holds for the
// lifetime of the in-memory instance.
func (t *Timestamps) SetModifiedDate(modified time.Time) {
	t.modifiedOverridden = true
	t.Modified = modified
}

// OnFirstPersist applies the automatic policy for the save operation that
// first stores the record: both fields are set to now. An overridden field
// keeps its value, unless that value is zero.
func (t *Timestamps) OnFirstPersist(now time.Time) {
	if !t.createdOverridden || t.Created.IsZero() {
		t.Created = now
	}

	if !t.modifiedOverridden || t.Modified.IsZero() {
		t.Modified = now
	}
}

// OnEveryPersist applies the automatic policy for every save operation after
// the first one: Modified is set to now, Created is left untouched. An
// overridden Modified keeps its value, unless that value is zero.
func (t *Timestamps) OnEveryPersist(now time.Time) {
	if !t.modifiedOverridden || t.Modified.IsZero() {
		t.Modified = now
	}
}
