// Package filter turns sparse filter criteria into a task Predicate.
package filter

import (
	"context"
	"fmt"
	"time"

	"taskflow/internal/apperror"
	"taskflow/internal/model"
	"taskflow/internal/optional"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Mode is a named shortcut layered on top of the field filters.
type Mode string

const (
	ModeCreatedBySelf       Mode = "created-by-self"
	ModeAssignedToSelf      Mode = "assigned-to-self"
	ModeManagedBySelfAssign Mode = "managed-by-self-assign"
	ModeManagedBySelf       Mode = "managed-by-self"
)

// Criteria holds independently optional filters. Every provided field adds one AND clause.
type Criteria struct {
	DateCreated optional.Value[string] `json:"date_created,omitzero"`
	Deadline    optional.Value[string] `json:"deadline,omitzero"`
	Status      optional.Value[string] `json:"status,omitzero"`
	CreatedBy   optional.Value[string] `json:"created_by,omitzero"`
	AssignedTo  optional.Value[string] `json:"assigned_to,omitzero"`
	Mode        optional.Value[string] `json:"criteria,omitzero"`
}

type ReportLister interface {
	ListDirectReports(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

type Builder struct {
	reports ReportLister
}

func NewBuilder(reports ReportLister) *Builder {
	return &Builder{reports: reports}
}

// Build fails with apperror.ErrInvalidFilter on malformed dates or user ids. A status outside
// the enum is not an error: it yields a predicate that matches nothing. Unknown modes add nothing.
func (b *Builder) Build(ctx context.Context, c Criteria, actingUserID uuid.UUID) (Predicate, error) {
	var p Predicate

	if c.DateCreated.IsSet() {
		from, err := parseDay("date_created", c.DateCreated)
		if err != nil {
			return Predicate{}, err
		}
		p = p.and(dayRange{column: "created_on", from: from})
	}

	if c.Deadline.IsSet() {
		from, err := parseDay("deadline", c.Deadline)
		if err != nil {
			return Predicate{}, err
		}
		p = p.and(dayRange{column: "deadline", from: from})
	}

	if c.Status.IsSet() {
		status := model.TaskStatus(c.Status.Or(""))
		if status.Valid() {
			p = p.and(statusIs{status: status})
		} else {
			p = p.and(nothing{})
		}
	}

	if c.CreatedBy.IsSet() {
		id, err := parseUser("created_by", c.CreatedBy)
		if err != nil {
			return Predicate{}, err
		}
		p = p.and(userIs{column: "created_by", id: id})
	}

	if c.AssignedTo.IsSet() {
		if c.AssignedTo.IsNull() {
			p = p.and(unassigned{})
		} else {
			id, err := parseUser("assigned_to", c.AssignedTo)
			if err != nil {
				return Predicate{}, err
			}
			p = p.and(userIs{column: "assigned_to", id: id})
		}
	}

	mode, _ := c.Mode.Get()
	switch Mode(mode) {
	case ModeCreatedBySelf:
		p = p.and(userIs{column: "created_by", id: actingUserID})
	case ModeAssignedToSelf:
		p = p.and(userIs{column: "assigned_to", id: actingUserID})
	case ModeManagedBySelfAssign, ModeManagedBySelf:
		reports, err := b.reports.ListDirectReports(ctx, actingUserID)
		if err != nil {
			return Predicate{}, fmt.Errorf("list direct reports of %s: %w", actingUserID, err)
		}
		column := "created_by"
		if Mode(mode) == ModeManagedBySelfAssign {
			column = "assigned_to"
		}
		if len(reports) == 0 {
			p = p.and(nothing{})
		} else {
			p = p.and(userIn{column: column, ids: reports})
		}
	}

	return p, nil
}

func parseDay(key string, v optional.Value[string]) (time.Time, error) {
	raw, ok := v.Get()
	if !ok {
		return time.Time{}, apperror.ErrInvalidFilter.Wrap(fmt.Errorf("%s: null date", key))
	}
	day, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidFilter.Wrap(fmt.Errorf("%s: %w", key, err))
	}
	return day, nil
}

func parseUser(key string, v optional.Value[string]) (uuid.UUID, error) {
	raw, ok := v.Get()
	if !ok {
		return uuid.Nil, apperror.ErrInvalidFilter.Wrap(fmt.Errorf("%s: null user id", key))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidFilter.Wrap(fmt.Errorf("%s: %w", key, err))
	}
	return id, nil
}
