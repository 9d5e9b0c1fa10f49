package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	sqlitestore "github.com/agrisense/agrisense/internal/store/drivers/sqlite"
	"github.com/agrisense/agrisense/pkg/cryptox"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlitestore.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedFarmer(t *testing.T, s store.Store, phone, email, password string) domain.Farmer {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	farmer := domain.Farmer{
		ID:           uuid.New(),
		FullName:     "Seed Farmer",
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		DateOfBirth:  time.Date(1988, 7, 21, 0, 0, 0, 0, time.UTC),
		Country:      "Kenya",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Farmers().Create(context.Background(), farmer))
	return farmer
}

func seedCompany(t *testing.T, s store.Store, phone, email, password string) domain.Company {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	company := domain.Company{
		ID:           uuid.New(),
		CompanyName:  "Seed Produce Ltd",
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Companies().Create(context.Background(), company))
	return company
}

func seedFarm(t *testing.T, s store.Store, ownerID uuid.UUID) domain.Farm {
	t.Helper()

	farm := domain.Farm{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		TotalFarmArea:  8,
		NumberOfBlocks: 2,
		MainCropsGrown: "Tomato",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, s.Farms().Create(context.Background(), farm))
	return farm
}

// captureSender records issued passcodes instead of sending them.
type captureSender struct {
	mu   sync.Mutex
	sent []sentOTP
}

type sentOTP struct {
	Phone string
	Code  string
}

func (c *captureSender) SendOTP(_ context.Context, phone, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sentOTP{Phone: phone, Code: code})
	return nil
}

func (c *captureSender) last(t *testing.T) sentOTP {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.sent)
	return c.sent[len(c.sent)-1]
}
