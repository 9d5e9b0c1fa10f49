package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
)

// Field record repositories: scouting, irrigation, planting and harvest.
// Soft deletes flip the deleted flag on live rows only; updates touch the
// row whether or not it has been deleted since the client fetched it.

type scoutingRepo struct {
	q queryer
}

func (r scoutingRepo) Create(ctx context.Context, rec domain.ScoutingRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO scouting_records
			(id, farm_id, block, bed, crop_type, crop_status, symptoms, damage,
			 pest_type, pesticide_used, amount, water_used, application_mode,
			 deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.Block, rec.Bed, rec.CropType,
		rec.CropStatus, rec.Symptoms, rec.Damage, rec.PestType, rec.PesticideUsed,
		rec.Amount, rec.WaterUsed, rec.ApplicationMode, rec.Deleted,
		formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r scoutingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ScoutingRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, block, bed, crop_type, crop_status, symptoms, damage,
		       pest_type, pesticide_used, amount, water_used, application_mode,
		       deleted, created_at
		FROM scouting_records WHERE id = ?`, id.String())

	var (
		rec                    domain.ScoutingRecord
		rowID, farmID, created string
	)
	err := row.Scan(
		&rowID, &farmID, &rec.Block, &rec.Bed, &rec.CropType, &rec.CropStatus,
		&rec.Symptoms, &rec.Damage, &rec.PestType, &rec.PesticideUsed,
		&rec.Amount, &rec.WaterUsed, &rec.ApplicationMode, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.ScoutingRecord{}, mapNotFound(err)
	}
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r scoutingRepo) Update(ctx context.Context, rec domain.ScoutingRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE scouting_records SET
			block = ?, bed = ?, crop_type = ?, crop_status = ?, symptoms = ?,
			damage = ?, pest_type = ?, pesticide_used = ?, amount = ?,
			water_used = ?, application_mode = ?
		WHERE id = ?`,
		rec.Block, rec.Bed, rec.CropType, rec.CropStatus, rec.Symptoms,
		rec.Damage, rec.PestType, rec.PesticideUsed, rec.Amount,
		rec.WaterUsed, rec.ApplicationMode, rec.ID.String(),
	))
}

func (r scoutingRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "scouting_records", id)
}

type irrigationRepo struct {
	q queryer
}

func (r irrigationRepo) Create(ctx context.Context, rec domain.IrrigationRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO irrigation_records
			(id, farm_id, pump_discharge_rate, block, year, crop_type, variety,
			 pump_start_time, total_time_taken, amount_of_water_used, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.PumpDischargeRate, rec.Block,
		rec.Year, rec.CropType, rec.Variety, rec.PumpStartTime,
		rec.TotalTimeTaken, rec.AmountOfWaterUsed, rec.Deleted,
		formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r irrigationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.IrrigationRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, pump_discharge_rate, block, year, crop_type, variety,
		       pump_start_time, total_time_taken, amount_of_water_used, deleted, created_at
		FROM irrigation_records WHERE id = ?`, id.String())

	var (
		rec                    domain.IrrigationRecord
		rowID, farmID, created string
	)
	err := row.Scan(
		&rowID, &farmID, &rec.PumpDischargeRate, &rec.Block, &rec.Year,
		&rec.CropType, &rec.Variety, &rec.PumpStartTime, &rec.TotalTimeTaken,
		&rec.AmountOfWaterUsed, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.IrrigationRecord{}, mapNotFound(err)
	}
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r irrigationRepo) Update(ctx context.Context, rec domain.IrrigationRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE irrigation_records SET
			pump_discharge_rate = ?, block = ?, year = ?, crop_type = ?,
			variety = ?, pump_start_time = ?, total_time_taken = ?,
			amount_of_water_used = ?
		WHERE id = ?`,
		rec.PumpDischargeRate, rec.Block, rec.Year, rec.CropType, rec.Variety,
		rec.PumpStartTime, rec.TotalTimeTaken, rec.AmountOfWaterUsed,
		rec.ID.String(),
	))
}

func (r irrigationRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "irrigation_records", id)
}

type plantingRepo struct {
	q queryer
}

func (r plantingRepo) Create(ctx context.Context, rec domain.PlantingRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO planting_records
			(id, farm_id, location, block, bed, crop_type, variety, planting_method,
			 root_stock_treatment_chemical, planting_rate, quantity_planted,
			 planting_date, expected_harvest_date, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.Location, rec.Block, rec.Bed,
		rec.CropType, rec.Variety, rec.PlantingMethod,
		nullString(rec.RootStockTreatmentChemical), rec.PlantingRate,
		rec.QuantityPlanted, rec.PlantingDate, rec.ExpectedHarvestDate,
		rec.Deleted, formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r plantingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PlantingRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, location, block, bed, crop_type, variety, planting_method,
		       root_stock_treatment_chemical, planting_rate, quantity_planted,
		       planting_date, expected_harvest_date, deleted, created_at
		FROM planting_records WHERE id = ?`, id.String())

	var (
		rec                    domain.PlantingRecord
		rowID, farmID, created string
		rootStock              sql.NullString
	)
	err := row.Scan(
		&rowID, &farmID, &rec.Location, &rec.Block, &rec.Bed, &rec.CropType,
		&rec.Variety, &rec.PlantingMethod, &rootStock, &rec.PlantingRate,
		&rec.QuantityPlanted, &rec.PlantingDate, &rec.ExpectedHarvestDate,
		&rec.Deleted, &created,
	)
	if err != nil {
		return domain.PlantingRecord{}, mapNotFound(err)
	}
	rec.RootStockTreatmentChemical = fromNullString(rootStock)
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r plantingRepo) Update(ctx context.Context, rec domain.PlantingRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE planting_records SET
			location = ?, block = ?, bed = ?, crop_type = ?, variety = ?,
			planting_method = ?, root_stock_treatment_chemical = ?,
			planting_rate = ?, quantity_planted = ?, planting_date = ?,
			expected_harvest_date = ?
		WHERE id = ?`,
		rec.Location, rec.Block, rec.Bed, rec.CropType, rec.Variety,
		rec.PlantingMethod, nullString(rec.RootStockTreatmentChemical),
		rec.PlantingRate, rec.QuantityPlanted, rec.PlantingDate,
		rec.ExpectedHarvestDate, rec.ID.String(),
	))
}

func (r plantingRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "planting_records", id)
}

type harvestRepo struct {
	q queryer
}

func (r harvestRepo) Create(ctx context.Context, rec domain.HarvestRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO harvest_records
			(id, farm_id, harvest_number, planting_date, block, variety,
			 quantity_harvested, quantity_packed, quantity_rejected, loss,
			 deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.HarvestNumber,
		rec.PlantingDate, rec.Block, rec.Variety, rec.QuantityHarvested,
		rec.QuantityPacked, rec.QuantityRejected, rec.Loss, rec.Deleted,
		formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r harvestRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.HarvestRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, harvest_number, planting_date, block, variety,
		       quantity_harvested, quantity_packed, quantity_rejected, loss,
		       deleted, created_at
		FROM harvest_records WHERE id = ?`, id.String())

	var (
		rec                    domain.HarvestRecord
		rowID, farmID, created string
	)
	err := row.Scan(
		&rowID, &farmID, &rec.HarvestNumber, &rec.PlantingDate, &rec.Block,
		&rec.Variety, &rec.QuantityHarvested, &rec.QuantityPacked,
		&rec.QuantityRejected, &rec.Loss, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.HarvestRecord{}, mapNotFound(err)
	}
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r harvestRepo) Update(ctx context.Context, rec domain.HarvestRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE harvest_records SET
			harvest_number = ?, planting_date = ?, block = ?, variety = ?,
			quantity_harvested = ?, quantity_packed = ?, quantity_rejected = ?,
			loss = ?
		WHERE id = ?`,
		rec.HarvestNumber, rec.PlantingDate, rec.Block, rec.Variety,
		rec.QuantityHarvested, rec.QuantityPacked, rec.QuantityRejected,
		rec.Loss, rec.ID.String(),
	))
}

func (r harvestRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "harvest_records", id)
}

// softDelete flips the deleted flag on a live row. Rows already deleted (or
// never created) report ErrNotFound.
func softDelete(ctx context.Context, q queryer, table string, id uuid.UUID) error {
	return mustAffect(q.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET deleted = 1 WHERE id = ? AND deleted = 0`, table),
		id.String(),
	))
}

// scanRecordIDs parses the string columns shared by every record row.
func scanRecordIDs(id, farmID *uuid.UUID, createdAt *time.Time, rowID, farm, created string) error {
	var err error
	if *id, err = uuid.Parse(rowID); err != nil {
		return fmt.Errorf("sqlite: record id: %w", err)
	}
	if *farmID, err = uuid.Parse(farm); err != nil {
		return fmt.Errorf("sqlite: record farm id: %w", err)
	}
	if *createdAt, err = parseTime(created); err != nil {
		return fmt.Errorf("sqlite: record created_at: %w", err)
	}
	return nil
}
