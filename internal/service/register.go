package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/cryptox"
)

// RegistrationService creates farmer, company and farm records.
type RegistrationService struct {
	store store.Store

	now func() time.Time
}

func NewRegistrationService(s store.Store) *RegistrationService {
	return &RegistrationService{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RegisterFarmerInput carries the farmer onboarding payload. Password is
// plaintext here and hashed before it reaches the store.
type RegisterFarmerInput struct {
	FullName          string
	Email             string
	Phone             string
	Password          string
	ConfirmPassword   string
	DateOfBirth       domain.Date
	Gender            string
	PreferredLanguage string
	NationalID        string
	Country           string
	City              string
	Region            string
}

func (s *RegistrationService) RegisterFarmer(ctx context.Context, in RegisterFarmerInput) (domain.Farmer, error) {
	if in.Password != in.ConfirmPassword {
		return domain.Farmer{}, ErrPasswordsDiffer
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Farmer{}, err
	}

	farmer := domain.Farmer{
		ID:                uuid.New(),
		FullName:          in.FullName,
		Email:             in.Email,
		Phone:             in.Phone,
		PasswordHash:      hash,
		DateOfBirth:       in.DateOfBirth.Time,
		Gender:            in.Gender,
		PreferredLanguage: in.PreferredLanguage,
		NationalID:        in.NationalID,
		Country:           in.Country,
		City:              in.City,
		Region:            in.Region,
		CreatedAt:         s.now(),
	}

	// Email check and insert run in one transaction so two concurrent
	// registrations cannot both pass the lookup.
	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Farmers().GetByEmail(ctx, in.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
		return tx.Farmers().Create(ctx, farmer)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Farmer{}, ErrAccountExists
		}
		return domain.Farmer{}, err
	}
	return farmer, nil
}

// RegisterCompanyInput carries the company onboarding payload.
type RegisterCompanyInput struct {
	CompanyName         string
	MailingAddress      string
	Email               string
	Phone               string
	Password            string
	YearOfEstablishment int
	RegistrationNumber  string
	PrimaryCommodity    string
	PreferredLanguage   string
	Country             string
	City                string
	Region              string
}

func (s *RegistrationService) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (domain.Company, error) {
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Company{}, err
	}

	company := domain.Company{
		ID:                  uuid.New(),
		CompanyName:         in.CompanyName,
		MailingAddress:      in.MailingAddress,
		Email:               in.Email,
		Phone:               in.Phone,
		PasswordHash:        hash,
		YearOfEstablishment: in.YearOfEstablishment,
		RegistrationNumber:  in.RegistrationNumber,
		PrimaryCommodity:    in.PrimaryCommodity,
		PreferredLanguage:   in.PreferredLanguage,
		Country:             in.Country,
		City:                in.City,
		Region:              in.Region,
		CreatedAt:           s.now(),
	}
	if err := s.store.Companies().Create(ctx, company); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Company{}, ErrAccountExists
		}
		return domain.Company{}, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// RegisterFarmInput carries the farm onboarding payload.
type RegisterFarmInput struct {
	OwnerID               uuid.UUID
	TotalFarmArea         float64
	NumberOfBlocks        int
	MainCropsGrown        string
	FarmingMethods        string
	SoilType              string
	IrrigationSystem      string
	AverageAnnualRainfall float64
	MajorChallengesFaced  string
	FarmEquipmentOwned    string
	Latitude              float64
	Longitude             float64
}

func (s *RegistrationService) RegisterFarm(ctx context.Context, in RegisterFarmInput) (domain.Farm, error) {
	if _, err := s.store.Farmers().GetByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Farm{}, ErrFarmerNotFound
		}
		return domain.Farm{}, fmt.Errorf("lookup owner: %w", err)
	}

	farm := domain.Farm{
		ID:                    uuid.New(),
		OwnerID:               in.OwnerID,
		TotalFarmArea:         in.TotalFarmArea,
		NumberOfBlocks:        in.NumberOfBlocks,
		MainCropsGrown:        in.MainCropsGrown,
		FarmingMethods:        in.FarmingMethods,
		SoilType:              in.SoilType,
		IrrigationSystem:      in.IrrigationSystem,
		AverageAnnualRainfall: in.AverageAnnualRainfall,
		MajorChallengesFaced:  in.MajorChallengesFaced,
		FarmEquipmentOwned:    in.FarmEquipmentOwned,
		Latitude:              in.Latitude,
		Longitude:             in.Longitude,
		CreatedAt:             s.now(),
	}
	if err := s.store.Farms().Create(ctx, farm); err != nil {
		return domain.Farm{}, fmt.Errorf("create farm: %w", err)
	}
	return farm, nil
}
