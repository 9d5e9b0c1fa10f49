package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
)

// RecordService handles the record books: create against a farm, update in
// place, soft delete. Every add validates the target farm first so a typo'd
// farm id fails loudly instead of producing an orphan row.
type RecordService struct {
	store store.Store

	now func() time.Time
}

func NewRecordService(s store.Store) *RecordService {
	return &RecordService{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *RecordService) checkFarm(ctx context.Context, farmID uuid.UUID) error {
	if _, err := s.store.Farms().GetByID(ctx, farmID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFarmNotFound
		}
		return fmt.Errorf("lookup farm: %w", err)
	}
	return nil
}

// mapRecordErr converts store misses on update and delete paths.
func mapRecordErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (s *RecordService) AddScouting(ctx context.Context, rec domain.ScoutingRecord) (domain.ScoutingRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.ScoutingRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Scouting().Create(ctx, rec)
}

func (s *RecordService) UpdateScouting(ctx context.Context, id uuid.UUID, rec domain.ScoutingRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Scouting().Update(ctx, rec))
}

func (s *RecordService) DeleteScouting(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Scouting().SoftDelete(ctx, id))
}

func (s *RecordService) AddIrrigation(ctx context.Context, rec domain.IrrigationRecord) (domain.IrrigationRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.IrrigationRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Irrigation().Create(ctx, rec)
}

func (s *RecordService) UpdateIrrigation(ctx context.Context, id uuid.UUID, rec domain.IrrigationRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Irrigation().Update(ctx, rec))
}

func (s *RecordService) DeleteIrrigation(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Irrigation().SoftDelete(ctx, id))
}

func (s *RecordService) AddPlanting(ctx context.Context, rec domain.PlantingRecord) (domain.PlantingRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.PlantingRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Planting().Create(ctx, rec)
}

func (s *RecordService) UpdatePlanting(ctx context.Context, id uuid.UUID, rec domain.PlantingRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Planting().Update(ctx, rec))
}

func (s *RecordService) DeletePlanting(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Planting().SoftDelete(ctx, id))
}

func (s *RecordService) AddHarvest(ctx context.Context, rec domain.HarvestRecord) (domain.HarvestRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.HarvestRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Harvests().Create(ctx, rec)
}

func (s *RecordService) UpdateHarvest(ctx context.Context, id uuid.UUID, rec domain.HarvestRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Harvests().Update(ctx, rec))
}

func (s *RecordService) DeleteHarvest(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Harvests().SoftDelete(ctx, id))
}

func (s *RecordService) AddFertilizer(ctx context.Context, rec domain.FertilizerRecord) (domain.FertilizerRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.FertilizerRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Fertilizer().Create(ctx, rec)
}

func (s *RecordService) UpdateFertilizer(ctx context.Context, id uuid.UUID, rec domain.FertilizerRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Fertilizer().Update(ctx, rec))
}

func (s *RecordService) DeleteFertilizer(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Fertilizer().SoftDelete(ctx, id))
}

func (s *RecordService) AddColdRoom(ctx context.Context, rec domain.ColdRoomRecord) (domain.ColdRoomRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.ColdRoomRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.ColdRooms().Create(ctx, rec)
}

func (s *RecordService) UpdateColdRoom(ctx context.Context, id uuid.UUID, rec domain.ColdRoomRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.ColdRooms().Update(ctx, rec))
}

func (s *RecordService) DeleteColdRoom(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.ColdRooms().SoftDelete(ctx, id))
}

func (s *RecordService) AddEmployee(ctx context.Context, rec domain.EmployeeRecord) (domain.EmployeeRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.EmployeeRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Employees().Create(ctx, rec)
}

func (s *RecordService) UpdateEmployee(ctx context.Context, id uuid.UUID, rec domain.EmployeeRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Employees().Update(ctx, rec))
}

func (s *RecordService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Employees().SoftDelete(ctx, id))
}

func (s *RecordService) AddTraining(ctx context.Context, rec domain.TrainingRecord) (domain.TrainingRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.TrainingRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Trainings().Create(ctx, rec)
}

func (s *RecordService) UpdateTraining(ctx context.Context, id uuid.UUID, rec domain.TrainingRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Trainings().Update(ctx, rec))
}

func (s *RecordService) DeleteTraining(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Trainings().SoftDelete(ctx, id))
}

func (s *RecordService) AddAccident(ctx context.Context, rec domain.AccidentRecord) (domain.AccidentRecord, error) {
	if err := s.checkFarm(ctx, rec.FarmID); err != nil {
		return domain.AccidentRecord{}, err
	}
	rec.ID, rec.CreatedAt, rec.Deleted = uuid.New(), s.now(), false
	return rec, s.store.Accidents().Create(ctx, rec)
}

func (s *RecordService) UpdateAccident(ctx context.Context, id uuid.UUID, rec domain.AccidentRecord) error {
	rec.ID = id
	return mapRecordErr(s.store.Accidents().Update(ctx, rec))
}

func (s *RecordService) DeleteAccident(ctx context.Context, id uuid.UUID) error {
	return mapRecordErr(s.store.Accidents().SoftDelete(ctx, id))
}
