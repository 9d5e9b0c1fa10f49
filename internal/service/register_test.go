package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/cryptox"
)

func TestRegisterFarmer(t *testing.T) {
	s := newTestStore(t)
	svc := NewRegistrationService(s)
	ctx := context.Background()

	in := RegisterFarmerInput{
		FullName:        "Amina Hassan",
		Email:           "amina@example.com",
		Phone:           "+254700000600",
		Password:        "plaintext",
		ConfirmPassword: "plaintext",
		DateOfBirth:     domain.NewDate(1991, 2, 3),
		Country:         "Kenya",
	}

	farmer, err := svc.RegisterFarmer(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, farmer.ID)

	t.Run("password is hashed at rest", func(t *testing.T) {
		stored, err := s.Farmers().GetByID(ctx, farmer.ID)
		require.NoError(t, err)
		require.NotEqual(t, "plaintext", stored.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("plaintext", stored.PasswordHash))
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		bad := in
		bad.Phone, bad.Email = "+254700000610", "bad@example.com"
		bad.ConfirmPassword = "different"
		_, err := svc.RegisterFarmer(ctx, bad)
		require.ErrorIs(t, err, ErrPasswordsDiffer)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := in
		dup.Phone = "+254700000611"
		_, err := svc.RegisterFarmer(ctx, dup)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		dup := in
		dup.Email = "other@example.com"
		_, err := svc.RegisterFarmer(ctx, dup)
		require.ErrorIs(t, err, ErrAccountExists)
	})
}

func TestRegisterCompany(t *testing.T) {
	s := newTestStore(t)
	svc := NewRegistrationService(s)
	ctx := context.Background()

	company, err := svc.RegisterCompany(ctx, RegisterCompanyInput{
		CompanyName:      "Fresh Fields Ltd",
		Email:            "ops@freshfields.example.com",
		Phone:            "+254700000601",
		Password:         "secret",
		PrimaryCommodity: "Avocado",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, company.ID)
}

func TestRegisterFarm(t *testing.T) {
	s := newTestStore(t)
	svc := NewRegistrationService(s)
	ctx := context.Background()

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.RegisterFarm(ctx, RegisterFarmInput{OwnerID: uuid.New()})
		require.ErrorIs(t, err, ErrFarmerNotFound)
	})

	farmer := seedFarmer(t, s, "+254700000602", "owner@example.com", "pw")

	farm, err := svc.RegisterFarm(ctx, RegisterFarmInput{
		OwnerID:        farmer.ID,
		TotalFarmArea:  20,
		NumberOfBlocks: 5,
		MainCropsGrown: "Coffee",
	})
	require.NoError(t, err)

	got, err := s.Farms().GetByID(ctx, farm.ID)
	require.NoError(t, err)
	require.Equal(t, farmer.ID, got.OwnerID)
}
