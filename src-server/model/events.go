package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Event is the only persisted entity. Instants are stored as UTC unix
// milliseconds so that range filters compare integers.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Title string `bun:"title,notnull"` // required
	Memo  string `bun:"memo,notnull"`

	StartAtUnixMilli int64 `bun:"start_at,notnull"` // required
	EndAtUnixMilli   int64 `bun:"end_at,notnull"`   // required

	CreatedAtUnixMilli int64 `bun:"created_at,notnull"`
	UpdatedAtUnixMilli int64 `bun:"updated_at,notnull"`
}

func (e *Event) StartAt() time.Time { return time.UnixMilli(e.StartAtUnixMilli).UTC() }
func (e *Event) EndAt() time.Time   { return time.UnixMilli(e.EndAtUnixMilli).UTC() }
func (e *Event) CreatedAt() time.Time {
	return time.UnixMilli(e.CreatedAtUnixMilli).UTC()
}
func (e *Event) UpdatedAt() time.Time {
	return time.UnixMilli(e.UpdatedAtUnixMilli).UTC()
}

func (e *Event) check() error {
	switch {
	case e.Title == "":
		return fmt.Errorf("title is blank")
	case e.StartAtUnixMilli >= e.EndAtUnixMilli:
		return fmt.Errorf("start must be before end")
	}
	return nil
}

// Insert stores a new event with a single INSERT. The generated id is
// written back to e.ID.
func (e *Event) Insert(ctx context.Context, db bun.IDB) error {
	if e.ID != 0 {
		return fmt.Errorf("(*Event).Insert: event already has id %d", e.ID)
	}
	if err := e.check(); err != nil {
		return fmt.Errorf("(*Event).Insert: %w", err)
	}
	if _, err := db.NewInsert().
		Model(e).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*Event).Insert: %w", err)
	}
	return nil
}

// Update overwrites title, start, end, memo and updated_at of the row with
// e.ID in a single UPDATE. created_at is never touched. It reports whether a
// row matched.
func (e *Event) Update(ctx context.Context, db bun.IDB) (bool, error) {
	if err := e.check(); err != nil {
		return false, fmt.Errorf("(*Event).Update: %w", err)
	}
	res, err := db.NewUpdate().
		Model(e).
		Column("title", "start_at", "end_at", "memo", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("(*Event).Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("(*Event).Update: %w", err)
	}
	return affected > 0, nil
}

// DeleteEvent removes the row with the given id in a single DELETE and
// reports whether a row matched.
func DeleteEvent(ctx context.Context, db bun.IDB, id int64) (bool, error) {
	res, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("DeleteEvent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteEvent: %w", err)
	}
	return affected > 0, nil
}

// ListEventsInRange returns events whose start falls in the half-open range
// [start, end), ordered by start.
func ListEventsInRange(ctx context.Context, db bun.IDB, start, end time.Time) ([]Event, error) {
	eventModels := make([]Event, 0)
	if err := db.NewSelect().
		Model(&eventModels).
		Where("start_at >= ?", start.UnixMilli()).
		Where("start_at < ?", end.UnixMilli()).
		Order("start_at ASC", "id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("ListEventsInRange: %w", err)
	}
	return eventModels, nil
}
