// Package domain defines the entities shared between the store, the
// services and the HTTP layer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which account directory a credential came from.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleCompany Role = "company"
)

// Farmer is an individual grower account.
type Farmer struct {
	ID                uuid.UUID
	FullName          string
	Email             string
	Phone             string
	PasswordHash      string
	DateOfBirth       time.Time
	Gender            string
	PreferredLanguage string
	NationalID        string
	Country           string
	City              string
	Region            string
	CreatedAt         time.Time
}

// Company is an organisation account.
type Company struct {
	ID                  uuid.UUID
	CompanyName         string
	MailingAddress      string
	Email               string
	Phone               string
	PasswordHash        string
	YearOfEstablishment int
	RegistrationNumber  string
	PrimaryCommodity    string
	PreferredLanguage   string
	Country             string
	City                string
	Region              string
	CreatedAt           time.Time
}

// Credential is the directory-independent view of an account used for
// authentication: who they are, how they sign in, and which role they hold.
type Credential struct {
	ID           uuid.UUID
	Role         Role
	Email        string
	Phone        string
	PasswordHash string
}

// FarmerCredential projects a farmer into its credential view.
func FarmerCredential(f Farmer) Credential {
	return Credential{
		ID:           f.ID,
		Role:         RoleFarmer,
		Email:        f.Email,
		Phone:        f.Phone,
		PasswordHash: f.PasswordHash,
	}
}

// CompanyCredential projects a company into its credential view.
func CompanyCredential(c Company) Credential {
	return Credential{
		ID:           c.ID,
		Role:         RoleCompany,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
	}
}
