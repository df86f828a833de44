package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skalette/reservations/internal/model"
)

// Dialect names the SQL flavour a SQLStore speaks. The schema and the
// queries are identical between the two backends except for the
// insert-ignore spelling and a few column types.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// SQLStore implements Store over database/sql. The same implementation
// serves both the embedded sqlite backend and a hosted MySQL database;
// the dialect only selects the conflict-handling syntax.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an open handle and creates the schema if it does
// not exist yet. Schema creation is idempotent and safe to repeat at
// every startup.
func NewSQLStore(db *sql.DB, dialect Dialect) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: dialect}
	if err := s.initSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *SQLStore) initSchema(ctx context.Context) error {
	var stmts []string
	switch s.dialect {
	case DialectMySQL:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS reservations (
				id VARCHAR(64) PRIMARY KEY,
				date VARCHAR(10) NOT NULL,
				time VARCHAR(5) NOT NULL,
				table_id VARCHAR(16) NOT NULL,
				guests INT NOT NULL,
				first_name VARCHAR(128) NOT NULL,
				last_name VARCHAR(128) NOT NULL,
				phone VARCHAR(32) NOT NULL,
				service_type VARCHAR(16) NOT NULL,
				duration DOUBLE NOT NULL,
				notes TEXT,
				status VARCHAR(16) NOT NULL,
				timestamp VARCHAR(35) NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_reservations_date (date),
				INDEX idx_reservations_status (status)
			)`,
			`CREATE TABLE IF NOT EXISTS blocked_slots (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				date VARCHAR(10) NOT NULL,
				time VARCHAR(5) NOT NULL,
				table_id VARCHAR(16) NOT NULL,
				reservation_id VARCHAR(64),
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_blocked_slot (date, time, table_id),
				INDEX idx_blocked_slots_date (date)
			)`,
		}
	default: // sqlite
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS reservations (
				id TEXT PRIMARY KEY,
				date TEXT NOT NULL,
				time TEXT NOT NULL,
				table_id TEXT NOT NULL,
				guests INTEGER NOT NULL,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				phone TEXT NOT NULL,
				service_type TEXT NOT NULL,
				duration REAL NOT NULL,
				notes TEXT,
				status TEXT NOT NULL,
				timestamp TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS blocked_slots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				time TEXT NOT NULL,
				table_id TEXT NOT NULL,
				reservation_id TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(date, time, table_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations(date)`,
			`CREATE INDEX IF NOT EXISTS idx_reservations_status ON reservations(status)`,
			`CREATE INDEX IF NOT EXISTS idx_blocked_slots_date ON blocked_slots(date)`,
		}
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// insertIgnore returns the dialect's prefix for an insert that silently
// skips unique-constraint conflicts.
func (s *SQLStore) insertIgnore() string {
	if s.dialect == DialectMySQL {
		return "INSERT IGNORE"
	}
	return "INSERT OR IGNORE"
}

// ReadReservations returns all reservation rows in insertion order.
func (s *SQLStore) ReadReservations(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT id, date, time, table_id, guests, first_name, last_name, phone,
	                  service_type, duration, notes, status, timestamp
	           FROM reservations`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var r model.Reservation
		var notes sql.NullString
		if err := rows.Scan(
			&r.ID, &r.Date, &r.Time, &r.TableID, &r.Guests,
			&r.FirstName, &r.LastName, &r.Phone,
			&r.ServiceType, &r.Duration, &notes, &r.Status, &r.Timestamp,
		); err != nil {
			return nil, err
		}
		r.Notes = notes.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// AddReservation inserts one reservation row.
func (s *SQLStore) AddReservation(ctx context.Context, r model.Reservation) error {
	const q = `INSERT INTO reservations
	           (id, date, time, table_id, guests, first_name, last_name, phone,
	            service_type, duration, notes, status, timestamp)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		r.ID, r.Date, r.Time, r.TableID, r.Guests,
		r.FirstName, r.LastName, r.Phone,
		r.ServiceType, r.Duration, r.Notes, r.Status, r.Timestamp,
	)
	return err
}

// UpdateReservation rewrites the mutable columns of the row with the
// same id. Only status changes in practice, but writing the whole
// record keeps the contract aligned with the file backend.
func (s *SQLStore) UpdateReservation(ctx context.Context, r model.Reservation) error {
	const q = `UPDATE reservations
	           SET date = ?, time = ?, table_id = ?, guests = ?, first_name = ?,
	               last_name = ?, phone = ?, service_type = ?, duration = ?,
	               notes = ?, status = ?, timestamp = ?
	           WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q,
		r.Date, r.Time, r.TableID, r.Guests, r.FirstName,
		r.LastName, r.Phone, r.ServiceType, r.Duration,
		r.Notes, r.Status, r.Timestamp, r.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is zero both for a missing id and for a no-op
		// update; distinguish with an existence probe.
		var one int
		if err := s.db.QueryRowContext(ctx, `SELECT 1 FROM reservations WHERE id = ?`, r.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrReservationNotFound
			}
			return err
		}
	}
	return nil
}

// ReadBlockedSlots returns the full blocked-slot set.
func (s *SQLStore) ReadBlockedSlots(ctx context.Context) ([]model.BlockedSlot, error) {
	const q = `SELECT date, time, table_id, reservation_id FROM blocked_slots`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BlockedSlot, 0)
	for rows.Next() {
		var sl model.BlockedSlot
		var resID sql.NullString
		if err := rows.Scan(&sl.Date, &sl.Time, &sl.TableID, &resID); err != nil {
			return nil, err
		}
		sl.ReservationID = resID.String
		out = append(out, sl)
	}
	return out, rows.Err()
}

// ReplaceBlockedSlots clears and reinserts the whole set in one
// transaction so readers never observe a half-written grid.
func (s *SQLStore) ReplaceBlockedSlots(ctx context.Context, slots []model.BlockedSlot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM blocked_slots`); err != nil {
		return err
	}
	q := s.insertIgnore() + ` INTO blocked_slots (date, time, table_id, reservation_id) VALUES (?, ?, ?, ?)`
	for _, sl := range slots {
		if _, err := tx.ExecContext(ctx, q, sl.Date, sl.Time, sl.TableID, nullable(sl.ReservationID)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// AddBlockedSlot inserts one slot; the unique constraint on the triple
// makes duplicate insertion a silent no-op.
func (s *SQLStore) AddBlockedSlot(ctx context.Context, sl model.BlockedSlot) error {
	q := s.insertIgnore() + ` INTO blocked_slots (date, time, table_id, reservation_id) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, sl.Date, sl.Time, sl.TableID, nullable(sl.ReservationID))
	return err
}

// RemoveBlockedSlot deletes the slot with the given triple.
func (s *SQLStore) RemoveBlockedSlot(ctx context.Context, key model.SlotKey) error {
	const q = `DELETE FROM blocked_slots WHERE date = ? AND time = ? AND table_id = ?`
	_, err := s.db.ExecContext(ctx, q, key.Date, key.Time, key.TableID)
	return err
}

// RemoveBlockedSlotsByReservation deletes every slot tagged with the
// id. Manual blocks store a NULL tag and never match.
func (s *SQLStore) RemoveBlockedSlotsByReservation(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return nil
	}
	const q = `DELETE FROM blocked_slots WHERE reservation_id = ?`
	_, err := s.db.ExecContext(ctx, q, reservationID)
	return err
}

// Close closes the underlying handle.
func (s *SQLStore) Close() error { return s.db.Close() }

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
