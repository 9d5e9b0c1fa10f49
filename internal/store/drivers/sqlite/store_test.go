package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedFarmer(t *testing.T, s *Store, phone, email string) domain.Farmer {
	t.Helper()

	farmer := domain.Farmer{
		ID:           uuid.New(),
		FullName:     "Test Farmer",
		Email:        email,
		Phone:        phone,
		PasswordHash: "$argon2id$fake",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Country:      "Kenya",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Farmers().Create(context.Background(), farmer))
	return farmer
}

func seedFarm(t *testing.T, s *Store, ownerID uuid.UUID) domain.Farm {
	t.Helper()

	farm := domain.Farm{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		TotalFarmArea:  12.5,
		NumberOfBlocks: 4,
		MainCropsGrown: "Maize",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, s.Farms().Create(context.Background(), farm))
	return farm
}

func TestFarmerRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000001", "amina@example.com")

	t.Run("lookup by phone and email", func(t *testing.T) {
		got, err := s.Farmers().GetByPhone(ctx, farmer.Phone)
		require.NoError(t, err)
		require.Equal(t, farmer.ID, got.ID)

		got, err = s.Farmers().GetByEmail(ctx, farmer.Email)
		require.NoError(t, err)
		require.Equal(t, farmer.ID, got.ID)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		_, err := s.Farmers().GetByPhone(ctx, "+254799999999")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate phone maps to ErrAlreadyExists", func(t *testing.T) {
		dup := farmer
		dup.ID = uuid.New()
		dup.Email = "other@example.com"
		require.ErrorIs(t, s.Farmers().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, s.Farmers().UpdatePassword(ctx, farmer.ID, "$argon2id$new"))

		got, err := s.Farmers().GetByID(ctx, farmer.ID)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$new", got.PasswordHash)

		require.ErrorIs(t, s.Farmers().UpdatePassword(ctx, uuid.New(), "x"), store.ErrNotFound)
	})
}

func TestOTPRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	otp := domain.OTP{
		ID:        idx.New(),
		Phone:     "+254700000002",
		Code:      "482913",
		CreatedAt: now,
		ExpiresAt: now.Add(domain.OTPTTL),
	}
	require.NoError(t, s.OTPs().Create(ctx, otp))

	t.Run("active lookup ignores phone", func(t *testing.T) {
		got, err := s.OTPs().GetActiveByCode(ctx, "482913")
		require.NoError(t, err)
		require.Equal(t, otp.ID, got.ID)
		require.Equal(t, otp.Phone, got.Phone)
	})

	t.Run("verified rows are excluded", func(t *testing.T) {
		require.NoError(t, s.OTPs().MarkVerified(ctx, otp.ID))

		_, err := s.OTPs().GetActiveByCode(ctx, "482913")
		require.ErrorIs(t, err, store.ErrNotFound)

		// MarkVerified is single use.
		require.ErrorIs(t, s.OTPs().MarkVerified(ctx, otp.ID), store.ErrNotFound)
	})

	t.Run("retention removes rows past the cutoff only", func(t *testing.T) {
		expired := domain.OTP{
			ID:        idx.New(),
			Phone:     "+254700000003",
			Code:      "111111",
			CreatedAt: now.Add(-time.Hour),
			ExpiresAt: now.Add(-50 * time.Minute),
		}
		require.NoError(t, s.OTPs().Create(ctx, expired))

		// The spent row's expiry is still ahead of the cutoff, so it stays.
		n, err := s.OTPs().DeleteExpiredBefore(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = s.OTPs().DeleteExpiredBefore(ctx, now.Add(domain.OTPTTL+time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestRefreshTokenRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	token := domain.RefreshToken{
		ID:           idx.New(),
		CredentialID: uuid.New(),
		Role:         domain.RoleFarmer,
		Fingerprint:  "fp-1",
		IssuedAt:     now,
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
	}
	require.NoError(t, s.RefreshTokens().Create(ctx, token))

	t.Run("lookup by fingerprint", func(t *testing.T) {
		got, err := s.RefreshTokens().GetByFingerprint(ctx, "fp-1")
		require.NoError(t, err)
		require.Equal(t, token.CredentialID, got.CredentialID)
		require.False(t, got.Revoked())
		require.True(t, got.Usable(now))
	})

	t.Run("revoke tombstones once", func(t *testing.T) {
		require.NoError(t, s.RefreshTokens().Revoke(ctx, "fp-1", now))

		got, err := s.RefreshTokens().GetByFingerprint(ctx, "fp-1")
		require.NoError(t, err)
		require.True(t, got.Revoked())

		require.ErrorIs(t, s.RefreshTokens().Revoke(ctx, "fp-1", now), store.ErrNotFound)
	})

	t.Run("retention removes expired sessions", func(t *testing.T) {
		old := token
		old.ID = idx.New()
		old.Fingerprint = "fp-old"
		old.ExpiresAt = now.Add(-time.Hour)
		require.NoError(t, s.RefreshTokens().Create(ctx, old))

		n, err := s.RefreshTokens().DeleteExpiredBefore(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestScoutingRepoSoftDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000004", "scout@example.com")
	farm := seedFarm(t, s, farmer.ID)

	rec := domain.ScoutingRecord{
		ID:              uuid.New(),
		FarmID:          farm.ID,
		Block:           "B1",
		Bed:             "Bed 3",
		CropType:        "Tomato",
		CropStatus:      "Flowering",
		Symptoms:        "Leaf curl",
		Damage:          "Moderate",
		PestType:        "Whitefly",
		PesticideUsed:   "Neem oil",
		Amount:          1.5,
		WaterUsed:       20,
		ApplicationMode: "Sprayer",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, s.Scouting().Create(ctx, rec))

	t.Run("update touches the row", func(t *testing.T) {
		rec.CropStatus = "Fruiting"
		require.NoError(t, s.Scouting().Update(ctx, rec))

		got, err := s.Scouting().GetByID(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "Fruiting", got.CropStatus)
	})

	t.Run("soft delete is single shot", func(t *testing.T) {
		require.NoError(t, s.Scouting().SoftDelete(ctx, rec.ID))
		require.ErrorIs(t, s.Scouting().SoftDelete(ctx, rec.ID), store.ErrNotFound)

		// The row survives; only the flag flips.
		got, err := s.Scouting().GetByID(ctx, rec.ID)
		require.NoError(t, err)
		require.True(t, got.Deleted)
	})

	t.Run("update still works after delete", func(t *testing.T) {
		rec.Damage = "Severe"
		require.NoError(t, s.Scouting().Update(ctx, rec))
	})
}

func TestTrainingRepoMaterialsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000005", "train@example.com")
	farm := seedFarm(t, s, farmer.ID)

	rec := domain.TrainingRecord{
		ID:                uuid.New(),
		FarmID:            farm.ID,
		TrainingTitle:     "Safe spraying",
		TrainerName:       "J. Otieno",
		Date:              domain.NewDate(2026, 3, 14),
		FarmName:          "Green Acres",
		Topic:             "PPE handling",
		Duration:          "2h",
		Summary:           "Intro to protective equipment",
		MaterialsProvided: []string{"PPE guide", "Checklist"},
		Attendance:        12,
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, s.Trainings().Create(ctx, rec))

	got, err := s.Trainings().GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.MaterialsProvided, got.MaterialsProvided)
	require.Equal(t, "2026-03-14", got.Date.String())
}

func TestReportRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000006", "report@example.com")
	farm := seedFarm(t, s, farmer.ID)

	addIrrigation := func(block string, water float64, deleted bool) {
		rec := domain.IrrigationRecord{
			ID:                uuid.New(),
			FarmID:            farm.ID,
			Block:             block,
			Year:              2026,
			CropType:          "Maize",
			Variety:           "H614",
			AmountOfWaterUsed: water,
			CreatedAt:         time.Now().UTC(),
		}
		require.NoError(t, s.Irrigation().Create(ctx, rec))
		if deleted {
			require.NoError(t, s.Irrigation().SoftDelete(ctx, rec.ID))
		}
	}
	addIrrigation("B1", 100, false)
	addIrrigation("B1", 50, false)
	addIrrigation("B2", 70, false)
	addIrrigation("B1", 999, true) // excluded from aggregation

	t.Run("water usage by block", func(t *testing.T) {
		usage, err := s.Reports().WaterUsageByBlock(ctx, "")
		require.NoError(t, err)
		require.Equal(t, []domain.WaterUsage{
			{Block: "B1", Runs: 2, TotalWater: 150},
			{Block: "B2", Runs: 1, TotalWater: 70},
		}, usage)

		usage, err = s.Reports().WaterUsageByBlock(ctx, "B2")
		require.NoError(t, err)
		require.Len(t, usage, 1)
		require.Equal(t, "B2", usage[0].Block)
	})

	t.Run("disease symptoms by crop", func(t *testing.T) {
		for range 2 {
			require.NoError(t, s.Scouting().Create(ctx, domain.ScoutingRecord{
				ID:        uuid.New(),
				FarmID:    farm.ID,
				Block:     "B1",
				CropType:  "Tomato",
				Symptoms:  "Leaf curl",
				CreatedAt: time.Now().UTC(),
			}))
		}

		freqs, err := s.Reports().DiseaseSymptoms(ctx, "Tomato")
		require.NoError(t, err)
		require.Equal(t, []domain.SymptomFrequency{
			{CropType: "Tomato", Symptoms: "Leaf curl", Count: 2},
		}, freqs)
	})

	t.Run("incidents filtered by date", func(t *testing.T) {
		day := domain.NewDate(2026, 4, 2)
		require.NoError(t, s.Accidents().Create(ctx, domain.AccidentRecord{
			ID:            uuid.New(),
			FarmID:        farm.ID,
			SafetyType:    "Incident",
			InspectorName: "A. Wanjiku",
			Date:          day,
			IncidentType:  "Injury",
			Status:        "Resolved",
			CreatedAt:     time.Now().UTC(),
		}))

		incidents, err := s.Reports().Incidents(ctx, &day)
		require.NoError(t, err)
		require.Len(t, incidents, 1)

		other := domain.NewDate(2026, 4, 3)
		incidents, err = s.Reports().Incidents(ctx, &other)
		require.NoError(t, err)
		require.Empty(t, incidents)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		farmer := domain.Farmer{
			ID:           uuid.New(),
			FullName:     "Rollback",
			Email:        "rollback@example.com",
			Phone:        "+254700000007",
			PasswordHash: "x",
			DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:    time.Now().UTC(),
		}
		if err := tx.Farmers().Create(ctx, farmer); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Farmers().GetByPhone(ctx, "+254700000007")
	require.ErrorIs(t, err, store.ErrNotFound)
}
