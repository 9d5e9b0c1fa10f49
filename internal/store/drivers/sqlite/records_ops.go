package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
)

// Operations record repositories: fertilizer, cold room, employees, training
// and accidents.

type fertilizerRepo struct {
	q queryer
}

func (r fertilizerRepo) Create(ctx context.Context, rec domain.FertilizerRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO fertilizer_records
			(id, farm_id, production_number, date_of_application, block, crop,
			 variety, npk_composition, rate_per_ha, quantity_applied,
			 mode_of_application, machinery_used, operator_name, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.ProductionNumber,
		rec.DateOfApplication, rec.Block, rec.Crop, rec.Variety,
		rec.NPKComposition, rec.RatePerHA, rec.QuantityApplied,
		rec.ModeOfApplication, nullString(rec.MachineryUsed), rec.OperatorName,
		rec.Deleted, formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r fertilizerRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.FertilizerRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, production_number, date_of_application, block, crop,
		       variety, npk_composition, rate_per_ha, quantity_applied,
		       mode_of_application, machinery_used, operator_name, deleted, created_at
		FROM fertilizer_records WHERE id = ?`, id.String())

	var (
		rec                    domain.FertilizerRecord
		rowID, farmID, created string
		machinery              sql.NullString
	)
	err := row.Scan(
		&rowID, &farmID, &rec.ProductionNumber, &rec.DateOfApplication,
		&rec.Block, &rec.Crop, &rec.Variety, &rec.NPKComposition,
		&rec.RatePerHA, &rec.QuantityApplied, &rec.ModeOfApplication,
		&machinery, &rec.OperatorName, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.FertilizerRecord{}, mapNotFound(err)
	}
	rec.MachineryUsed = fromNullString(machinery)
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r fertilizerRepo) Update(ctx context.Context, rec domain.FertilizerRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE fertilizer_records SET
			production_number = ?, date_of_application = ?, block = ?, crop = ?,
			variety = ?, npk_composition = ?, rate_per_ha = ?,
			quantity_applied = ?, mode_of_application = ?, machinery_used = ?,
			operator_name = ?
		WHERE id = ?`,
		rec.ProductionNumber, rec.DateOfApplication, rec.Block, rec.Crop,
		rec.Variety, rec.NPKComposition, rec.RatePerHA, rec.QuantityApplied,
		rec.ModeOfApplication, nullString(rec.MachineryUsed), rec.OperatorName,
		rec.ID.String(),
	))
}

func (r fertilizerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "fertilizer_records", id)
}

type coldRoomRepo struct {
	q queryer
}

func (r coldRoomRepo) Create(ctx context.Context, rec domain.ColdRoomRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO cold_room_records
			(id, farm_id, cold_room_id, date, morning_temp, afternoon_temp,
			 evening_temp, night_temp, comments, action_taken, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.ColdRoomID, rec.Date,
		rec.MorningTemp, rec.AfternoonTemp, rec.EveningTemp, rec.NightTemp,
		nullString(rec.Comments), nullString(rec.ActionTaken), rec.Deleted,
		formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r coldRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ColdRoomRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, cold_room_id, date, morning_temp, afternoon_temp,
		       evening_temp, night_temp, comments, action_taken, deleted, created_at
		FROM cold_room_records WHERE id = ?`, id.String())

	var (
		rec                    domain.ColdRoomRecord
		rowID, farmID, created string
		comments, action       sql.NullString
	)
	err := row.Scan(
		&rowID, &farmID, &rec.ColdRoomID, &rec.Date, &rec.MorningTemp,
		&rec.AfternoonTemp, &rec.EveningTemp, &rec.NightTemp, &comments,
		&action, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.ColdRoomRecord{}, mapNotFound(err)
	}
	rec.Comments = fromNullString(comments)
	rec.ActionTaken = fromNullString(action)
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r coldRoomRepo) Update(ctx context.Context, rec domain.ColdRoomRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE cold_room_records SET
			cold_room_id = ?, date = ?, morning_temp = ?, afternoon_temp = ?,
			evening_temp = ?, night_temp = ?, comments = ?, action_taken = ?
		WHERE id = ?`,
		rec.ColdRoomID, rec.Date, rec.MorningTemp, rec.AfternoonTemp,
		rec.EveningTemp, rec.NightTemp, nullString(rec.Comments),
		nullString(rec.ActionTaken), rec.ID.String(),
	))
}

func (r coldRoomRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "cold_room_records", id)
}

type employeeRepo struct {
	q queryer
}

func (r employeeRepo) Create(ctx context.Context, rec domain.EmployeeRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO employee_records
			(id, farm_id, full_name, job_title, department, contact, email,
			 location, start_date, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.FullName, rec.JobTitle,
		rec.Department, rec.Contact, rec.Email, nullString(rec.Location),
		rec.StartDate, rec.Deleted, formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.EmployeeRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, full_name, job_title, department, contact, email,
		       location, start_date, deleted, created_at
		FROM employee_records WHERE id = ?`, id.String())

	var (
		rec                    domain.EmployeeRecord
		rowID, farmID, created string
		location               sql.NullString
	)
	err := row.Scan(
		&rowID, &farmID, &rec.FullName, &rec.JobTitle, &rec.Department,
		&rec.Contact, &rec.Email, &location, &rec.StartDate, &rec.Deleted,
		&created,
	)
	if err != nil {
		return domain.EmployeeRecord{}, mapNotFound(err)
	}
	rec.Location = fromNullString(location)
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r employeeRepo) Update(ctx context.Context, rec domain.EmployeeRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE employee_records SET
			full_name = ?, job_title = ?, department = ?, contact = ?,
			email = ?, location = ?, start_date = ?
		WHERE id = ?`,
		rec.FullName, rec.JobTitle, rec.Department, rec.Contact, rec.Email,
		nullString(rec.Location), rec.StartDate, rec.ID.String(),
	))
}

func (r employeeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "employee_records", id)
}

type trainingRepo struct {
	q queryer
}

func (r trainingRepo) Create(ctx context.Context, rec domain.TrainingRecord) error {
	materials, err := json.Marshal(rec.MaterialsProvided)
	if err != nil {
		return fmt.Errorf("sqlite: encode training materials: %w", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO training_records
			(id, farm_id, training_title, trainer_name, date, farm_name, topic,
			 duration, summary, materials_provided, attendance, trainer_notes,
			 deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.TrainingTitle,
		rec.TrainerName, rec.Date, rec.FarmName, rec.Topic, rec.Duration,
		rec.Summary, string(materials), rec.Attendance,
		nullString(rec.TrainerNotes), rec.Deleted, formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r trainingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TrainingRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, training_title, trainer_name, date, farm_name, topic,
		       duration, summary, materials_provided, attendance, trainer_notes,
		       deleted, created_at
		FROM training_records WHERE id = ?`, id.String())

	var (
		rec                    domain.TrainingRecord
		rowID, farmID, created string
		materials              string
		notes                  sql.NullString
	)
	err := row.Scan(
		&rowID, &farmID, &rec.TrainingTitle, &rec.TrainerName, &rec.Date,
		&rec.FarmName, &rec.Topic, &rec.Duration, &rec.Summary, &materials,
		&rec.Attendance, &notes, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.TrainingRecord{}, mapNotFound(err)
	}
	if err := json.Unmarshal([]byte(materials), &rec.MaterialsProvided); err != nil {
		return domain.TrainingRecord{}, fmt.Errorf("sqlite: decode training materials: %w", err)
	}
	rec.TrainerNotes = fromNullString(notes)
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}

func (r trainingRepo) Update(ctx context.Context, rec domain.TrainingRecord) error {
	materials, err := json.Marshal(rec.MaterialsProvided)
	if err != nil {
		return fmt.Errorf("sqlite: encode training materials: %w", err)
	}

	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE training_records SET
			training_title = ?, trainer_name = ?, date = ?, farm_name = ?,
			topic = ?, duration = ?, summary = ?, materials_provided = ?,
			attendance = ?, trainer_notes = ?
		WHERE id = ?`,
		rec.TrainingTitle, rec.TrainerName, rec.Date, rec.FarmName, rec.Topic,
		rec.Duration, rec.Summary, string(materials), rec.Attendance,
		nullString(rec.TrainerNotes), rec.ID.String(),
	))
}

func (r trainingRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "training_records", id)
}

type accidentRepo struct {
	q queryer
}

func (r accidentRepo) Create(ctx context.Context, rec domain.AccidentRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accident_records
			(id, farm_id, safety_type, inspector_name, date, incident_type,
			 status, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.FarmID.String(), rec.SafetyType,
		rec.InspectorName, rec.Date, rec.IncidentType, rec.Status, rec.Deleted,
		formatTime(rec.CreatedAt),
	)
	return mapConstraint(err)
}

func (r accidentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.AccidentRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, farm_id, safety_type, inspector_name, date, incident_type,
		       status, deleted, created_at
		FROM accident_records WHERE id = ?`, id.String())

	rec, err := scanAccident(row.Scan)
	if err != nil {
		return domain.AccidentRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r accidentRepo) Update(ctx context.Context, rec domain.AccidentRecord) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE accident_records SET
			safety_type = ?, inspector_name = ?, date = ?, incident_type = ?,
			status = ?
		WHERE id = ?`,
		rec.SafetyType, rec.InspectorName, rec.Date, rec.IncidentType,
		rec.Status, rec.ID.String(),
	))
}

func (r accidentRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.q, "accident_records", id)
}

// scanAccident is shared with the incidents report query.
func scanAccident(scan func(dest ...any) error) (domain.AccidentRecord, error) {
	var (
		rec                    domain.AccidentRecord
		rowID, farmID, created string
	)
	err := scan(
		&rowID, &farmID, &rec.SafetyType, &rec.InspectorName, &rec.Date,
		&rec.IncidentType, &rec.Status, &rec.Deleted, &created,
	)
	if err != nil {
		return domain.AccidentRecord{}, err
	}
	return rec, scanRecordIDs(&rec.ID, &rec.FarmID, &rec.CreatedAt, rowID, farmID, created)
}
