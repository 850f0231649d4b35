// Package history persists battery readings so the UI and CLI can
// show when a device was last seen and at what charge.
package history

import (
	"database/sql"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dcampos/buds-manager/common"
)

// Sample is one recorded battery reading. Battery fields mirror the
// snapshot's tri-state: nil means the channel was unknown when the
// sample was taken.
type Sample struct {
	Addr         string
	Session      string
	Taken        time.Time
	BatteryLeft  *uint8
	BatteryRight *uint8
	BatteryCase  *uint8
}

// Store is the battery history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS battery_history (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	addr          TEXT NOT NULL,
	session       TEXT NOT NULL,
	taken_at      INTEGER NOT NULL,
	battery_left  INTEGER,
	battery_right INTEGER,
	battery_case  INTEGER
);
CREATE INDEX IF NOT EXISTS idx_battery_history_addr
	ON battery_history (addr, taken_at DESC);
`

// Open opens (and if needed creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open history database")
	}

	// One writer at a time keeps modernc/sqlite happy under the
	// UI's occasional concurrent records.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, common.WrapError(err, "failed to create history schema")
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the history database in the user's data directory.
func OpenDefault() (*Store, error) {
	dataDir, err := common.GetDataDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dataDir, common.HistoryFileName))
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one sample. Samples with no known battery channel are
// ignored; they carry no information worth keeping.
func (s *Store) Record(sample Sample) error {
	if sample.BatteryLeft == nil && sample.BatteryRight == nil && sample.BatteryCase == nil {
		return nil
	}
	if sample.Taken.IsZero() {
		sample.Taken = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO battery_history (addr, session, taken_at, battery_left, battery_right, battery_case)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sample.Addr, sample.Session, sample.Taken.Unix(),
		nullable(sample.BatteryLeft), nullable(sample.BatteryRight), nullable(sample.BatteryCase),
	)
	return common.WrapError(err, "failed to record battery sample")
}

// LastKnown returns the most recent sample for the device, or false
// when none has been recorded.
func (s *Store) LastKnown(addr string) (Sample, bool) {
	row := s.db.QueryRow(
		`SELECT session, taken_at, battery_left, battery_right, battery_case
		 FROM battery_history WHERE addr = ? ORDER BY taken_at DESC, id DESC LIMIT 1`,
		addr,
	)

	var (
		sample  Sample
		taken   int64
		l, r, c sql.NullInt64
	)
	if err := row.Scan(&sample.Session, &taken, &l, &r, &c); err != nil {
		if err != sql.ErrNoRows {
			common.LogWarn("History lookup for %s failed: %v", addr, err)
		}
		return Sample{}, false
	}

	sample.Addr = addr
	sample.Taken = time.Unix(taken, 0)
	sample.BatteryLeft = fromNullable(l)
	sample.BatteryRight = fromNullable(r)
	sample.BatteryCase = fromNullable(c)
	return sample, true
}

func nullable(v *uint8) interface{} {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func fromNullable(v sql.NullInt64) *uint8 {
	if !v.Valid {
		return nil
	}
	u := uint8(v.Int64)
	return &u
}
