package sqlite

import (
	"context"

	"github.com/agrisense/agrisense/internal/domain"
)

type reportRepo struct {
	q queryer
}

func (r reportRepo) WaterUsageByBlock(ctx context.Context, block string) ([]domain.WaterUsage, error) {
	query := `
		SELECT block, COUNT(*), COALESCE(SUM(amount_of_water_used), 0)
		FROM irrigation_records
		WHERE deleted = 0`
	args := []any{}
	if block != "" {
		query += ` AND block = ?`
		args = append(args, block)
	}
	query += ` GROUP BY block ORDER BY block`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := []domain.WaterUsage{}
	for rows.Next() {
		var u domain.WaterUsage
		if err := rows.Scan(&u.Block, &u.Runs, &u.TotalWater); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r reportRepo) DiseaseSymptoms(ctx context.Context, crop string) ([]domain.SymptomFrequency, error) {
	query := `
		SELECT crop_type, symptoms, COUNT(*)
		FROM scouting_records
		WHERE deleted = 0 AND symptoms <> ''`
	args := []any{}
	if crop != "" {
		query += ` AND crop_type = ?`
		args = append(args, crop)
	}
	query += ` GROUP BY crop_type, symptoms ORDER BY COUNT(*) DESC, crop_type`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	freqs := []domain.SymptomFrequency{}
	for rows.Next() {
		var f domain.SymptomFrequency
		if err := rows.Scan(&f.CropType, &f.Symptoms, &f.Count); err != nil {
			return nil, err
		}
		freqs = append(freqs, f)
	}
	return freqs, rows.Err()
}

func (r reportRepo) Incidents(ctx context.Context, date *domain.Date) ([]domain.AccidentRecord, error) {
	query := `
		SELECT id, farm_id, safety_type, inspector_name, date, incident_type,
		       status, deleted, created_at
		FROM accident_records
		WHERE deleted = 0`
	args := []any{}
	if date != nil {
		query += ` AND date = ?`
		args = append(args, *date)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incidents := []domain.AccidentRecord{}
	for rows.Next() {
		rec, err := scanAccident(rows.Scan)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, rec)
	}
	return incidents, rows.Err()
}
