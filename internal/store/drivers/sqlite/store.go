// Package sqlite implements the store interfaces on SQLite via database/sql
// and the modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agrisense/agrisense/internal/store"
)

// queryer is satisfied by *sql.DB and *sql.Tx so every repository works both
// inside and outside a transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// repos bundles the per-table repositories over a shared queryer.
type repos struct {
	q queryer
}

func (r repos) Farmers() store.FarmerRepo             { return farmerRepo{r.q} }
func (r repos) Companies() store.CompanyRepo          { return companyRepo{r.q} }
func (r repos) Farms() store.FarmRepo                 { return farmRepo{r.q} }
func (r repos) OTPs() store.OTPRepo                   { return otpRepo{r.q} }
func (r repos) RefreshTokens() store.RefreshTokenRepo { return refreshTokenRepo{r.q} }
func (r repos) Scouting() store.ScoutingRepo          { return scoutingRepo{r.q} }
func (r repos) Irrigation() store.IrrigationRepo      { return irrigationRepo{r.q} }
func (r repos) Planting() store.PlantingRepo          { return plantingRepo{r.q} }
func (r repos) Harvests() store.HarvestRepo           { return harvestRepo{r.q} }
func (r repos) Fertilizer() store.FertilizerRepo      { return fertilizerRepo{r.q} }
func (r repos) ColdRooms() store.ColdRoomRepo         { return coldRoomRepo{r.q} }
func (r repos) Employees() store.EmployeeRepo         { return employeeRepo{r.q} }
func (r repos) Trainings() store.TrainingRepo         { return trainingRepo{r.q} }
func (r repos) Accidents() store.AccidentRepo         { return accidentRepo{r.q} }
func (r repos) Reports() store.ReportRepo             { return reportRepo{r.q} }

// Store is the SQLite-backed implementation of store.Store.
type Store struct {
	repos
	db *sql.DB
}

// NewStore opens (creating if needed) the database at path and applies
// pending migrations. Pass ":memory:" for an in-memory database.
func NewStore(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// modernc sqlite serialises writes; a single connection avoids
	// SQLITE_BUSY under concurrent transactions.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: enable foreign keys: %w", err)
	}

	if err := ApplyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{repos: repos{q: db}, db: db}, nil
}

// WithTx runs fn in a transaction. The rollback after commit is a no-op.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(repos{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit tx: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// mapNotFound normalises driver errors into the store sentinels.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapConstraint(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// mustAffect converts a zero-row UPDATE or DELETE into ErrNotFound.
func mustAffect(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Timestamps are stored as RFC 3339 UTC strings.
const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
