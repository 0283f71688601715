// Package memory implements an in-memory history repository.
package memory

import (
	"context"
	"sync"

	"bmicalc/internal/domain"
)

// initialID is the first id handed out, and the value the counter returns to
// after DeleteAll.
const initialID int64 = 1

// DB implements an in-memory calculation history. Records are kept in
// insertion order. Nothing bounds its size.
type DB struct {
	mu      sync.Mutex
	records []domain.CalculationRecord
	nextID  int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{nextID: initialID}
}

// Ensure interfaces are met.
var _ domain.HistoryRepository = (*DB)(nil)

// Append assigns the next id to rec and stores it.
func (db *DB) Append(ctx context.Context, rec domain.CalculationRecord) (domain.CalculationRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec.ID = db.nextID
	db.nextID++
	db.records = append(db.records, rec)
	return rec, nil
}

// List returns a copy of every record in insertion order.
func (db *DB) List(ctx context.Context) ([]domain.CalculationRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.CalculationRecord, len(db.records))
	copy(result, db.records)
	return result, nil
}

// Get returns the record with the given id.
func (db *DB) Get(ctx context.Context, id int64) (domain.CalculationRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if i := db.indexOf(id); i >= 0 {
		return db.records[i], nil
	}
	return domain.CalculationRecord{}, domain.ErrCalculationNotFound
}

// Delete removes and returns the record with the given id.
func (db *DB) Delete(ctx context.Context, id int64) (domain.CalculationRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.indexOf(id)
	if i < 0 {
		return domain.CalculationRecord{}, domain.ErrCalculationNotFound
	}
	rec := db.records[i]
	db.records = append(db.records[:i], db.records[i+1:]...)
	return rec, nil
}

// DeleteAll removes every record and resets the id counter.
func (db *DB) DeleteAll(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := len(db.records)
	db.records = nil
	db.nextID = initialID
	return n, nil
}

// Statistics summarises the stored records.
func (db *DB) Statistics(ctx context.Context) (domain.Statistics, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return domain.Summarize(db.records), nil
}

// Count returns the number of stored records.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.records), nil
}

// indexOf must be called with mu held.
func (db *DB) indexOf(id int64) int {
	for i := range db.records {
		if db.records[i].ID == id {
			return i
		}
	}
	return -1
}
