package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// RegisterHandler serves farmer, company and farm onboarding.
type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

type registerFarmerRequest struct {
	FullName          string      `json:"fullName"`
	Email             string      `json:"email"`
	PhoneNumber       string      `json:"phoneNumber"`
	Password          string      `json:"password"`
	ConfirmPassword   string      `json:"confirmPassword"`
	DateOfBirth       domain.Date `json:"dateOfBirth"`
	Gender            string      `json:"gender"`
	PreferredLanguage string      `json:"preferredLanguage"`
	NationalID        string      `json:"nationalId"`
	Country           string      `json:"country"`
	City              string      `json:"city"`
	Region            string      `json:"region"`
}

type registeredResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// missingField reports the first empty required field, mirroring the mobile
// client's expectation of a per-field error message.
func missingField(fields []struct{ name, value string }) (string, bool) {
	for _, f := range fields {
		if f.value == "" {
			return f.name, true
		}
	}
	return "", false
}

// Farmer godoc
//
//	@Summary	Register a farmer
//	@Tags		Onboarding
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerFarmerRequest	true	"Farmer details"
//	@Success	201		{object}	registeredResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/register/farmer [post]
func (h *RegisterHandler) Farmer(w http.ResponseWriter, r *http.Request) {
	var req registerFarmerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	required := []struct{ name, value string }{
		{"fullName", req.FullName},
		{"email", req.Email},
		{"phoneNumber", req.PhoneNumber},
		{"dateOfBirth", req.DateOfBirth.String()},
		{"gender", req.Gender},
		{"preferredLanguage", req.PreferredLanguage},
		{"nationalId", req.NationalID},
		{"password", req.Password},
		{"confirmPassword", req.ConfirmPassword},
		{"country", req.Country},
		{"city", req.City},
		{"region", req.Region},
	}
	if name, missing := missingField(required); missing {
		httpx.WriteError(w, r, http.StatusBadRequest, "Missing field: "+name)
		return
	}

	farmer, err := h.RegistrationService.RegisterFarmer(r.Context(), service.RegisterFarmerInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.PhoneNumber,
		Password:          req.Password,
		ConfirmPassword:   req.ConfirmPassword,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		PreferredLanguage: req.PreferredLanguage,
		NationalID:        req.NationalID,
		Country:           req.Country,
		City:              req.City,
		Region:            req.Region,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordsDiffer):
			httpx.WriteError(w, r, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, r, http.StatusBadRequest, "Email already exists. Please choose a different email.")
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteError(w, r, http.StatusBadRequest, "Account with this email or phone number already exists")
		default:
			slogx.FromContext(r.Context()).Error("register farmer", "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not register farmer")
		}
		return
	}

	httpx.WriteJSON(w, r, http.StatusCreated, registeredResponse{
		Message: "Farmer registered successfully",
		ID:      farmer.ID,
	})
}

type registerCompanyRequest struct {
	CompanyName         string `json:"companyName"`
	MailingAddress      string `json:"mailingAddress"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phoneNumber"`
	Password            string `json:"password"`
	YearOfEstablishment int    `json:"yearOfEstablishment"`
	RegistrationNumber  string `json:"registrationNumber"`
	PrimaryCommodity    string `json:"primaryCommodity"`
	PreferredLanguage   string `json:"preferredLanguage"`
	Country             string `json:"country"`
	City                string `json:"city"`
	Region              string `json:"region"`
}

// Company godoc
//
//	@Summary	Register a company
//	@Tags		Onboarding
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerCompanyRequest	true	"Company details"
//	@Success	201		{object}	registeredResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/register/company [post]
func (h *RegisterHandler) Company(w http.ResponseWriter, r *http.Request) {
	var req registerCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	required := []struct{ name, value string }{
		{"companyName", req.CompanyName},
		{"phoneNumber", req.PhoneNumber},
		{"password", req.Password},
	}
	if name, missing := missingField(required); missing {
		httpx.WriteError(w, r, http.StatusBadRequest, "Missing field: "+name)
		return
	}

	company, err := h.RegistrationService.RegisterCompany(r.Context(), service.RegisterCompanyInput{
		CompanyName:         req.CompanyName,
		MailingAddress:      req.MailingAddress,
		Email:               req.Email,
		Phone:               req.PhoneNumber,
		Password:            req.Password,
		YearOfEstablishment: req.YearOfEstablishment,
		RegistrationNumber:  req.RegistrationNumber,
		PrimaryCommodity:    req.PrimaryCommodity,
		PreferredLanguage:   req.PreferredLanguage,
		Country:             req.Country,
		City:                req.City,
		Region:              req.Region,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			httpx.WriteError(w, r, http.StatusBadRequest, "Account with this email or phone number already exists")
			return
		}
		slogx.FromContext(r.Context()).Error("register company", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not register company")
		return
	}

	httpx.WriteJSON(w, r, http.StatusCreated, registeredResponse{
		Message: "Company registered successfully",
		ID:      company.ID,
	})
}

type registerFarmRequest struct {
	FarmerID                 uuid.UUID `json:"farmer_id"`
	TotalFarmArea            float64   `json:"totalFarmArea"`
	NumberOfBlocks           int       `json:"numberOfBlocks"`
	MainCropsGrown           string    `json:"mainCropsGrown"`
	FarmingMethods           string    `json:"farmingMethods"`
	SoilType                 string    `json:"soilType"`
	IrrigationSystem         string    `json:"irrigationSystem"`
	AverageAnnualRainfall    float64   `json:"averageAnnualRainfall"`
	MajorChallengesFaced     string    `json:"majorChallengesFaced"`
	FarmEquipmentOwned       string    `json:"farmEquipmentOwned"`
	FarmLatitudeCoordinates  float64   `json:"farmLatitudeCoordinates"`
	FarmLongitudeCoordinates float64   `json:"farmLongitudeCoordinates"`
}

// Farm godoc
//
//	@Summary	Register a farm
//	@Description	Attaches a farm to an existing farmer account.
//	@Tags		Onboarding
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerFarmRequest	true	"Farm details"
//	@Success	201		{object}	registeredResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/register/farm [post]
func (h *RegisterHandler) Farm(w http.ResponseWriter, r *http.Request) {
	var req registerFarmRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	farm, err := h.RegistrationService.RegisterFarm(r.Context(), service.RegisterFarmInput{
		OwnerID:               req.FarmerID,
		TotalFarmArea:         req.TotalFarmArea,
		NumberOfBlocks:        req.NumberOfBlocks,
		MainCropsGrown:        req.MainCropsGrown,
		FarmingMethods:        req.FarmingMethods,
		SoilType:              req.SoilType,
		IrrigationSystem:      req.IrrigationSystem,
		AverageAnnualRainfall: req.AverageAnnualRainfall,
		MajorChallengesFaced:  req.MajorChallengesFaced,
		FarmEquipmentOwned:    req.FarmEquipmentOwned,
		Latitude:              req.FarmLatitudeCoordinates,
		Longitude:             req.FarmLongitudeCoordinates,
	})
	if err != nil {
		if errors.Is(err, service.ErrFarmerNotFound) {
			httpx.WriteError(w, r, http.StatusNotFound, "Farmer not found")
			return
		}
		slogx.FromContext(r.Context()).Error("register farm", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not register farm")
		return
	}

	httpx.WriteJSON(w, r, http.StatusCreated, registeredResponse{
		Message: "Farm registered successfully",
		ID:      farm.ID,
	})
}
