package storage

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string) RunRecord {
	return RunRecord{
		ID:             id,
		StartedAt:      time.Unix(1_700_000_000, 0).UTC(),
		CompletedAt:    time.Unix(1_700_000_042, 0).UTC(),
		LeftOrderHash:  common.HexToHash("0x01"),
		RightOrderHash: common.HexToHash("0x02"),
		TxHash:         common.HexToHash("0x03"),
		BlockNumber:    12,
		GasUsed:        210_000,
	}
}

func TestJournalRoundTrip(t *testing.T) {
	journal, err := OpenJournal(t.TempDir())
	require.NoError(t, err)
	defer journal.Close()

	rec := testRecord(uuid.NewString())
	require.NoError(t, journal.SaveRun(rec))

	got, ok, err := journal.GetRun(rec.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestJournalGetMissing(t *testing.T) {
	journal, err := OpenJournal(t.TempDir())
	require.NoError(t, err)
	defer journal.Close()

	_, ok, err := journal.GetRun("does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = journal.LastRun()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJournalLastRun(t *testing.T) {
	journal, err := OpenJournal(t.TempDir())
	require.NoError(t, err)
	defer journal.Close()

	first := testRecord(uuid.NewString())
	second := testRecord(uuid.NewString())
	second.BlockNumber = 13

	require.NoError(t, journal.SaveRun(first))
	require.NoError(t, journal.SaveRun(second))

	got, ok, err := journal.LastRun()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestJournalRuns(t *testing.T) {
	journal, err := OpenJournal(t.TempDir())
	require.NoError(t, err)
	defer journal.Close()

	for i := 0; i < 3; i++ {
		rec := testRecord(uuid.NewString())
		rec.BlockNumber = uint64(i)
		require.NoError(t, journal.SaveRun(rec))
	}

	recs, err := journal.Runs()
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestJournalCloseIdempotent(t *testing.T) {
	journal, err := OpenJournal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, journal.Close())
	// second close must not panic or fail
	assert.NoError(t, journal.Close())
}
