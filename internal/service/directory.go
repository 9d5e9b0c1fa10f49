package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
)

// Directory resolves sign-in identifiers within one account population.
// Adding a new account kind means adding a directory, not touching the
// resolver.
type Directory interface {
	ByPhone(ctx context.Context, phone string) (domain.Credential, error)
	ByEmail(ctx context.Context, email string) (domain.Credential, error)
}

type farmerDirectory struct {
	repo store.FarmerRepo
}

func (d farmerDirectory) ByPhone(ctx context.Context, phone string) (domain.Credential, error) {
	farmer, err := d.repo.GetByPhone(ctx, phone)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.FarmerCredential(farmer), nil
}

func (d farmerDirectory) ByEmail(ctx context.Context, email string) (domain.Credential, error) {
	farmer, err := d.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.FarmerCredential(farmer), nil
}

type companyDirectory struct {
	repo store.CompanyRepo
}

func (d companyDirectory) ByPhone(ctx context.Context, phone string) (domain.Credential, error) {
	company, err := d.repo.GetByPhone(ctx, phone)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.CompanyCredential(company), nil
}

func (d companyDirectory) ByEmail(ctx context.Context, email string) (domain.Credential, error) {
	company, err := d.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.CompanyCredential(company), nil
}

// Resolver turns a raw sign-in identifier into a credential. An identifier
// containing '@' is treated as an email, anything else as a phone number.
// Directories are consulted in order; farmers take priority over companies
// when both hold the same identifier.
type Resolver struct {
	directories []Directory
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{
		directories: []Directory{
			farmerDirectory{repo: s.Farmers()},
			companyDirectory{repo: s.Companies()},
		},
	}
}

// Resolve finds the credential for identifier. Misses are reported as
// ErrEmailNotFound or ErrPhoneNotFound depending on the identifier form.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (domain.Credential, error) {
	byEmail := strings.Contains(identifier, "@")

	for _, dir := range r.directories {
		var (
			cred domain.Credential
			err  error
		)
		if byEmail {
			cred, err = dir.ByEmail(ctx, identifier)
		} else {
			cred, err = dir.ByPhone(ctx, identifier)
		}

		switch {
		case err == nil:
			return cred, nil
		case errors.Is(err, store.ErrNotFound):
			continue
		default:
			return domain.Credential{}, fmt.Errorf("resolve credential: %w", err)
		}
	}

	if byEmail {
		return domain.Credential{}, ErrEmailNotFound
	}
	return domain.Credential{}, ErrPhoneNotFound
}
