package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/ethereum/go-ethereum/common"
)

// RunRecord is what the demo persists per completed run: which orders were
// crossed, in which transaction, and when.
type RunRecord struct {
	ID             string // uuid assigned at scenario start
	StartedAt      time.Time
	CompletedAt    time.Time
	LeftOrderHash  common.Hash
	RightOrderHash common.Hash
	TxHash         common.Hash
	BlockNumber    uint64
	GasUsed        uint64
}

// Journal persists run records in a local pebble database so past demo runs
// can be inspected after the process exits.
type Journal struct {
	db        *pebble.DB
	closeOnce sync.Once
	closeErr  error
}

func OpenJournal(path string) (*Journal, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal at %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database. Idempotent.
func (j *Journal) Close() error {
	j.closeOnce.Do(func() {
		j.closeErr = j.db.Close()
	})
	return j.closeErr
}

// keys: r:<uuid>, last:run
func kRun(id string) []byte { return append([]byte("r:"), id...) }
func kLast() []byte         { return []byte("last:run") }

// SaveRun stores the record and points the "last run" key at it.
func (j *Journal) SaveRun(rec RunRecord) error {
	val, err := encodeGob(rec)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", rec.ID, err)
	}
	if err := j.db.Set(kRun(rec.ID), val, pebble.Sync); err != nil {
		return fmt.Errorf("failed to store run %s: %w", rec.ID, err)
	}
	if err := j.db.Set(kLast(), []byte(rec.ID), pebble.Sync); err != nil {
		return fmt.Errorf("failed to update last-run pointer: %w", err)
	}
	return nil
}

// GetRun loads one record by id. The bool reports whether it exists.
func (j *Journal) GetRun(id string) (RunRecord, bool, error) {
	val, closer, err := j.db.Get(kRun(id))
	if err != nil {
		if err == pebble.ErrNotFound {
			return RunRecord{}, false, nil
		}
		return RunRecord{}, false, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	defer closer.Close()

	var rec RunRecord
	if err := decodeGob(val, &rec); err != nil {
		return RunRecord{}, false, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return rec, true, nil
}

// LastRun loads the most recently saved record.
func (j *Journal) LastRun() (RunRecord, bool, error) {
	val, closer, err := j.db.Get(kLast())
	if err != nil {
		if err == pebble.ErrNotFound {
			return RunRecord{}, false, nil
		}
		return RunRecord{}, false, fmt.Errorf("failed to load last-run pointer: %w", err)
	}
	id := string(val)
	closer.Close()
	return j.GetRun(id)
}

// Runs returns every stored record, in key order.
func (j *Journal) Runs() ([]RunRecord, error) {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("r:"),
		UpperBound: []byte("r;"), // ';' is the byte after ':'
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate journal: %w", err)
	}
	defer iter.Close()

	var recs []RunRecord
	for iter.First(); iter.Valid(); iter.Next() {
		var rec RunRecord
		if err := decodeGob(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode run %s: %w", iter.Key()[2:], err)
		}
		recs = append(recs, rec)
	}
	return recs, iter.Error()
}
