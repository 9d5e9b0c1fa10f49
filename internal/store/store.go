// Package store defines the persistence boundary. Services depend on these
// interfaces; drivers under drivers/ implement them.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/idx"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned when a uniqueness constraint is violated.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Tx is the set of repositories available inside a transaction.
type Tx interface {
	Farmers() FarmerRepo
	Companies() CompanyRepo
	Farms() FarmRepo
	OTPs() OTPRepo
	RefreshTokens() RefreshTokenRepo
	Scouting() ScoutingRepo
	Irrigation() IrrigationRepo
	Planting() PlantingRepo
	Harvests() HarvestRepo
	Fertilizer() FertilizerRepo
	ColdRooms() ColdRoomRepo
	Employees() EmployeeRepo
	Trainings() TrainingRepo
	Accidents() AccidentRepo
	Reports() ReportRepo
}

// Store is the root persistence handle.
type Store interface {
	Tx

	// WithTx runs fn inside a transaction, committing on nil return and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Ping verifies the underlying connection is alive.
	Ping(ctx context.Context) error

	Close() error
}

// FarmerRepo persists farmer accounts.
type FarmerRepo interface {
	Create(ctx context.Context, farmer domain.Farmer) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Farmer, error)
	GetByPhone(ctx context.Context, phone string) (domain.Farmer, error)
	GetByEmail(ctx context.Context, email string) (domain.Farmer, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// CompanyRepo persists company accounts.
type CompanyRepo interface {
	Create(ctx context.Context, company domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
	GetByPhone(ctx context.Context, phone string) (domain.Company, error)
	GetByEmail(ctx context.Context, email string) (domain.Company, error)
}

// FarmRepo persists farms.
type FarmRepo interface {
	Create(ctx context.Context, farm domain.Farm) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Farm, error)
}

// OTPRepo persists one-time passcodes.
type OTPRepo interface {
	Create(ctx context.Context, otp domain.OTP) error

	// GetActiveByCode looks a passcode up by its code alone, across all
	// phone numbers, skipping verified rows.
	GetActiveByCode(ctx context.Context, code string) (domain.OTP, error)

	MarkVerified(ctx context.Context, id idx.ID) error

	// DeleteExpiredBefore removes rows whose expiry precedes cutoff,
	// verified or not, returning the count removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RefreshTokenRepo persists sessions keyed by token fingerprint.
type RefreshTokenRepo interface {
	Create(ctx context.Context, token domain.RefreshToken) error
	GetByFingerprint(ctx context.Context, fingerprint string) (domain.RefreshToken, error)
	Revoke(ctx context.Context, fingerprint string, at time.Time) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ScoutingRepo persists scouting records.
type ScoutingRepo interface {
	Create(ctx context.Context, rec domain.ScoutingRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.ScoutingRecord, error)
	Update(ctx context.Context, rec domain.ScoutingRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// IrrigationRepo persists irrigation records.
type IrrigationRepo interface {
	Create(ctx context.Context, rec domain.IrrigationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.IrrigationRecord, error)
	Update(ctx context.Context, rec domain.IrrigationRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PlantingRepo persists planting records.
type PlantingRepo interface {
	Create(ctx context.Context, rec domain.PlantingRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.PlantingRecord, error)
	Update(ctx context.Context, rec domain.PlantingRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// HarvestRepo persists harvest records.
type HarvestRepo interface {
	Create(ctx context.Context, rec domain.HarvestRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.HarvestRecord, error)
	Update(ctx context.Context, rec domain.HarvestRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// FertilizerRepo persists fertilizer application records.
type FertilizerRepo interface {
	Create(ctx context.Context, rec domain.FertilizerRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.FertilizerRecord, error)
	Update(ctx context.Context, rec domain.FertilizerRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ColdRoomRepo persists cold room temperature records.
type ColdRoomRepo interface {
	Create(ctx context.Context, rec domain.ColdRoomRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.ColdRoomRecord, error)
	Update(ctx context.Context, rec domain.ColdRoomRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// EmployeeRepo persists employee records.
type EmployeeRepo interface {
	Create(ctx context.Context, rec domain.EmployeeRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.EmployeeRecord, error)
	Update(ctx context.Context, rec domain.EmployeeRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// TrainingRepo persists training records.
type TrainingRepo interface {
	Create(ctx context.Context, rec domain.TrainingRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.TrainingRecord, error)
	Update(ctx context.Context, rec domain.TrainingRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// AccidentRepo persists accident and incident records.
type AccidentRepo interface {
	Create(ctx context.Context, rec domain.AccidentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.AccidentRecord, error)
	Update(ctx context.Context, rec domain.AccidentRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ReportRepo aggregates live records into report rows.
type ReportRepo interface {
	// WaterUsageByBlock sums irrigation volume per block, optionally
	// restricted to a single block.
	WaterUsageByBlock(ctx context.Context, block string) ([]domain.WaterUsage, error)

	// DiseaseSymptoms counts scouted symptoms per crop, optionally
	// restricted to a single crop type.
	DiseaseSymptoms(ctx context.Context, crop string) ([]domain.SymptomFrequency, error)

	// Incidents lists live accident records, optionally restricted to a
	// single day.
	Incidents(ctx context.Context, date *domain.Date) ([]domain.AccidentRecord, error)
}
