package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
)

type farmRepo struct {
	q queryer
}

const farmColumns = `id, owner_id, total_farm_area, number_of_blocks, main_crops_grown,
	farming_methods, soil_type, irrigation_system, average_annual_rainfall,
	major_challenges_faced, farm_equipment_owned, latitude, longitude, created_at`

func (r farmRepo) Create(ctx context.Context, farm domain.Farm) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO farms (`+farmColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		farm.ID.String(),
		farm.OwnerID.String(),
		farm.TotalFarmArea,
		farm.NumberOfBlocks,
		farm.MainCropsGrown,
		farm.FarmingMethods,
		farm.SoilType,
		farm.IrrigationSystem,
		farm.AverageAnnualRainfall,
		farm.MajorChallengesFaced,
		farm.FarmEquipmentOwned,
		farm.Latitude,
		farm.Longitude,
		formatTime(farm.CreatedAt),
	)
	return mapConstraint(err)
}

func (r farmRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Farm, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+farmColumns+` FROM farms WHERE id = ?`, id.String())

	var (
		farm                  domain.Farm
		rowID, owner, created string
	)
	err := row.Scan(
		&rowID, &owner, &farm.TotalFarmArea, &farm.NumberOfBlocks,
		&farm.MainCropsGrown, &farm.FarmingMethods, &farm.SoilType,
		&farm.IrrigationSystem, &farm.AverageAnnualRainfall,
		&farm.MajorChallengesFaced, &farm.FarmEquipmentOwned,
		&farm.Latitude, &farm.Longitude, &created,
	)
	if err != nil {
		return domain.Farm{}, mapNotFound(err)
	}

	if farm.ID, err = uuid.Parse(rowID); err != nil {
		return domain.Farm{}, fmt.Errorf("sqlite: farm id: %w", err)
	}
	if farm.OwnerID, err = uuid.Parse(owner); err != nil {
		return domain.Farm{}, fmt.Errorf("sqlite: farm owner id: %w", err)
	}
	if farm.CreatedAt, err = parseTime(created); err != nil {
		return domain.Farm{}, fmt.Errorf("sqlite: farm created_at: %w", err)
	}
	return farm, nil
}
