package service

import (
	"context"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
)

// ReportService serves read-only aggregations. Filters are optional; an
// empty filter means the whole population.
type ReportService struct {
	store store.Store
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{store: s}
}

func (s *ReportService) WaterUsageByBlock(ctx context.Context, block string) ([]domain.WaterUsage, error) {
	return s.store.Reports().WaterUsageByBlock(ctx, block)
}

func (s *ReportService) DiseaseSymptoms(ctx context.Context, crop string) ([]domain.SymptomFrequency, error) {
	return s.store.Reports().DiseaseSymptoms(ctx, crop)
}

func (s *ReportService) Incidents(ctx context.Context, date *domain.Date) ([]domain.AccidentRecord, error) {
	return s.store.Reports().Incidents(ctx, date)
}
