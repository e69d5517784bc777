package filter

import (
	"time"

	"taskflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clause is one conjunct of a Predicate.
type clause interface {
	apply(db *gorm.DB) *gorm.DB
}

// Predicate is a conjunction of clauses. The zero value matches every task.
type Predicate struct {
	clauses []clause
}

func (p Predicate) and(c clause) Predicate {
	clauses := make([]clause, len(p.clauses), len(p.clauses)+1)
	copy(clauses, p.clauses)
	return Predicate{clauses: append(clauses, c)}
}

// Apply adds every clause to db as a WHERE condition. It has the shape of a gorm scope.
func (p Predicate) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range p.clauses {
		db = c.apply(db)
	}
	return db
}

type nothing struct{}

func (nothing) apply(db *gorm.DB) *gorm.DB { return db.Where("1 = 0") }

// dayRange is the half-open interval [from, from+1 day).
type dayRange struct {
	column string
	from   time.Time
}

func (c dayRange) apply(db *gorm.DB) *gorm.DB {
	return db.Where(c.column+" >= ? AND "+c.column+" < ?", c.from, c.from.AddDate(0, 0, 1))
}

type statusIs struct {
	status model.TaskStatus
}

func (c statusIs) apply(db *gorm.DB) *gorm.DB { return db.Where("status = ?", c.status) }

type userIs struct {
	column string
	id     uuid.UUID
}

func (c userIs) apply(db *gorm.DB) *gorm.DB { return db.Where(c.column+" = ?", c.id) }

type unassigned struct{}

func (unassigned) apply(db *gorm.DB) *gorm.DB { return db.Where("assigned_to IS NULL") }

// userIn must not be built with an empty set; use nothing instead.
type userIn struct {
	column string
	ids    []uuid.UUID
}

func (c userIn) apply(db *gorm.DB) *gorm.DB { return db.Where(c.column+" IN ?", c.ids) }
