package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
)

func TestRecordServiceScouting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000400", "records@example.com", "pw")
	farm := seedFarm(t, s, farmer.ID)
	svc := NewRecordService(s)

	t.Run("add requires a known farm", func(t *testing.T) {
		_, err := svc.AddScouting(ctx, domain.ScoutingRecord{FarmID: uuid.New()})
		require.ErrorIs(t, err, ErrFarmNotFound)
	})

	rec, err := svc.AddScouting(ctx, domain.ScoutingRecord{
		FarmID:   farm.ID,
		Block:    "B1",
		CropType: "Tomato",
		Symptoms: "Wilt",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, rec.ID)

	t.Run("update rewrites fields", func(t *testing.T) {
		rec.Symptoms = "Blight"
		require.NoError(t, svc.UpdateScouting(ctx, rec.ID, rec))

		got, err := s.Scouting().GetByID(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "Blight", got.Symptoms)
	})

	t.Run("update of unknown record", func(t *testing.T) {
		err := svc.UpdateScouting(ctx, uuid.New(), rec)
		require.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("delete is single shot", func(t *testing.T) {
		require.NoError(t, svc.DeleteScouting(ctx, rec.ID))
		require.ErrorIs(t, svc.DeleteScouting(ctx, rec.ID), ErrRecordNotFound)
	})
}

func TestRecordServiceAcrossTypes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000401", "types@example.com", "pw")
	farm := seedFarm(t, s, farmer.ID)
	svc := NewRecordService(s)

	t.Run("irrigation", func(t *testing.T) {
		rec, err := svc.AddIrrigation(ctx, domain.IrrigationRecord{
			FarmID:            farm.ID,
			Block:             "B2",
			Year:              2026,
			AmountOfWaterUsed: 340,
		})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteIrrigation(ctx, rec.ID))
	})

	t.Run("planting with dates", func(t *testing.T) {
		rec, err := svc.AddPlanting(ctx, domain.PlantingRecord{
			FarmID:              farm.ID,
			Block:               "B1",
			CropType:            "Maize",
			PlantingDate:        domain.NewDate(2026, 3, 1),
			ExpectedHarvestDate: domain.NewDate(2026, 7, 1),
		})
		require.NoError(t, err)

		got, err := s.Planting().GetByID(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "2026-03-01", got.PlantingDate.String())
	})

	t.Run("harvest", func(t *testing.T) {
		_, err := svc.AddHarvest(ctx, domain.HarvestRecord{
			FarmID:            farm.ID,
			HarvestNumber:     "H-001",
			PlantingDate:      domain.NewDate(2026, 3, 1),
			QuantityHarvested: 120,
		})
		require.NoError(t, err)
	})

	t.Run("fertilizer", func(t *testing.T) {
		_, err := svc.AddFertilizer(ctx, domain.FertilizerRecord{
			FarmID:            farm.ID,
			DateOfApplication: domain.NewDate(2026, 4, 10),
			NPKComposition:    "17-17-17",
			OperatorName:      "K. Mwangi",
		})
		require.NoError(t, err)
	})

	t.Run("cold room", func(t *testing.T) {
		_, err := svc.AddColdRoom(ctx, domain.ColdRoomRecord{
			FarmID:      farm.ID,
			ColdRoomID:  "CR-1",
			Date:        domain.NewDate(2026, 4, 11),
			MorningTemp: 4.5,
		})
		require.NoError(t, err)
	})

	t.Run("employee", func(t *testing.T) {
		_, err := svc.AddEmployee(ctx, domain.EmployeeRecord{
			FarmID:   farm.ID,
			FullName: "W. Njeri",
			JobTitle: "Supervisor",
		})
		require.NoError(t, err)
	})

	t.Run("training", func(t *testing.T) {
		_, err := svc.AddTraining(ctx, domain.TrainingRecord{
			FarmID:            farm.ID,
			TrainingTitle:     "First aid",
			Date:              domain.NewDate(2026, 5, 2),
			MaterialsProvided: []string{"Manual"},
		})
		require.NoError(t, err)
	})

	t.Run("accident", func(t *testing.T) {
		rec, err := svc.AddAccident(ctx, domain.AccidentRecord{
			FarmID:       farm.ID,
			SafetyType:   "Incident",
			Date:         domain.NewDate(2026, 5, 3),
			IncidentType: "Fall",
			Status:       "Pending",
		})
		require.NoError(t, err)

		rec.Status = "Resolved"
		require.NoError(t, svc.UpdateAccident(ctx, rec.ID, rec))
	})
}

func TestReportServiceFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000402", "reports@example.com", "pw")
	farm := seedFarm(t, s, farmer.ID)
	records := NewRecordService(s)
	reports := NewReportService(s)

	_, err := records.AddIrrigation(ctx, domain.IrrigationRecord{
		FarmID: farm.ID, Block: "B1", AmountOfWaterUsed: 100,
	})
	require.NoError(t, err)
	deleted, err := records.AddIrrigation(ctx, domain.IrrigationRecord{
		FarmID: farm.ID, Block: "B1", AmountOfWaterUsed: 500,
	})
	require.NoError(t, err)
	require.NoError(t, records.DeleteIrrigation(ctx, deleted.ID))

	usage, err := reports.WaterUsageByBlock(ctx, "B1")
	require.NoError(t, err)
	require.Equal(t, []domain.WaterUsage{{Block: "B1", Runs: 1, TotalWater: 100}}, usage)
}
