package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
)

type farmerRepo struct {
	q queryer
}

const farmerColumns = `id, full_name, email, phone, password_hash, date_of_birth,
	gender, preferred_language, national_id, country, city, region, created_at`

func (r farmerRepo) Create(ctx context.Context, farmer domain.Farmer) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO farmers (`+farmerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		farmer.ID.String(),
		farmer.FullName,
		farmer.Email,
		farmer.Phone,
		farmer.PasswordHash,
		farmer.DateOfBirth.UTC().Format("2006-01-02"),
		farmer.Gender,
		farmer.PreferredLanguage,
		farmer.NationalID,
		farmer.Country,
		farmer.City,
		farmer.Region,
		formatTime(farmer.CreatedAt),
	)
	return mapConstraint(err)
}

func (r farmerRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Farmer, error) {
	return r.get(ctx, "id = ?", id.String())
}

func (r farmerRepo) GetByPhone(ctx context.Context, phone string) (domain.Farmer, error) {
	return r.get(ctx, "phone = ?", phone)
}

func (r farmerRepo) GetByEmail(ctx context.Context, email string) (domain.Farmer, error) {
	return r.get(ctx, "email = ?", email)
}

func (r farmerRepo) get(ctx context.Context, where string, arg any) (domain.Farmer, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE `+where, arg)

	var (
		farmer           domain.Farmer
		id, dob, created string
	)
	err := row.Scan(
		&id, &farmer.FullName, &farmer.Email, &farmer.Phone, &farmer.PasswordHash,
		&dob, &farmer.Gender, &farmer.PreferredLanguage, &farmer.NationalID,
		&farmer.Country, &farmer.City, &farmer.Region, &created,
	)
	if err != nil {
		return domain.Farmer{}, mapNotFound(err)
	}

	if farmer.ID, err = uuid.Parse(id); err != nil {
		return domain.Farmer{}, fmt.Errorf("sqlite: farmer id: %w", err)
	}
	if farmer.DateOfBirth, err = time.Parse("2006-01-02", dob); err != nil {
		return domain.Farmer{}, fmt.Errorf("sqlite: farmer date of birth: %w", err)
	}
	if farmer.CreatedAt, err = parseTime(created); err != nil {
		return domain.Farmer{}, fmt.Errorf("sqlite: farmer created_at: %w", err)
	}
	return farmer, nil
}

func (r farmerRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return mustAffect(r.q.ExecContext(ctx,
		`UPDATE farmers SET password_hash = ? WHERE id = ?`,
		passwordHash, id.String(),
	))
}

type companyRepo struct {
	q queryer
}

const companyColumns = `id, company_name, mailing_address, email, phone, password_hash,
	year_of_establishment, registration_number, primary_commodity,
	preferred_language, country, city, region, created_at`

func (r companyRepo) Create(ctx context.Context, company domain.Company) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO companies (`+companyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		company.ID.String(),
		company.CompanyName,
		company.MailingAddress,
		company.Email,
		company.Phone,
		company.PasswordHash,
		company.YearOfEstablishment,
		company.RegistrationNumber,
		company.PrimaryCommodity,
		company.PreferredLanguage,
		company.Country,
		company.City,
		company.Region,
		formatTime(company.CreatedAt),
	)
	return mapConstraint(err)
}

func (r companyRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	return r.get(ctx, "id = ?", id.String())
}

func (r companyRepo) GetByPhone(ctx context.Context, phone string) (domain.Company, error) {
	return r.get(ctx, "phone = ?", phone)
}

func (r companyRepo) GetByEmail(ctx context.Context, email string) (domain.Company, error) {
	return r.get(ctx, "email = ?", email)
}

func (r companyRepo) get(ctx context.Context, where string, arg any) (domain.Company, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE `+where, arg)

	var (
		company     domain.Company
		id, created string
	)
	err := row.Scan(
		&id, &company.CompanyName, &company.MailingAddress, &company.Email,
		&company.Phone, &company.PasswordHash, &company.YearOfEstablishment,
		&company.RegistrationNumber, &company.PrimaryCommodity,
		&company.PreferredLanguage, &company.Country, &company.City,
		&company.Region, &created,
	)
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}

	if company.ID, err = uuid.Parse(id); err != nil {
		return domain.Company{}, fmt.Errorf("sqlite: company id: %w", err)
	}
	if company.CreatedAt, err = parseTime(created); err != nil {
		return domain.Company{}, fmt.Errorf("sqlite: company created_at: %w", err)
	}
	return company, nil
}
