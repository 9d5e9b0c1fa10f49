package http

import (
	"errors"
	"net/http"

	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// AuthHandler serves sign-in, sign-out, token refresh and password reset.
type AuthHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
}

type signInRequest struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password"`
}

type signInResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
	Message string `json:"message"`
}

// SignIn godoc
//
//	@Summary	Sign in
//	@Description	Resolves the identifier (email when it contains '@',
//	@Description	otherwise phone, farmers before companies) and opens a session.
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		signInRequest	true	"Credentials"
//	@Success	200		{object}	signInResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	401		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/api/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if req.EmailOrPhone == "" || req.Password == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "Email/Phone number and password are required")
		return
	}

	pair, err := h.AuthService.SignIn(r.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			httpx.WriteError(w, r, http.StatusNotFound, "User with this email does not exist")
		case errors.Is(err, service.ErrPhoneNotFound):
			httpx.WriteError(w, r, http.StatusNotFound, "User with this phone number does not exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, r, http.StatusUnauthorized, "Invalid credentials")
		default:
			slogx.FromContext(r.Context()).Error("sign in", "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not sign in")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, r, http.StatusOK, signInResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		Message: "Login successful",
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// SignOut godoc
//
//	@Summary	Sign out
//	@Description	Blacklists the refresh token's session.
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		refreshRequest	true	"Refresh token"
//	@Success	205		{object}	httpx.MessageResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/signout [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if req.Refresh == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "Refresh token required")
		return
	}

	if err := h.AuthService.SignOut(r.Context(), req.Refresh); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			httpx.WriteError(w, r, http.StatusBadRequest, "Token is invalid or expired")
			return
		}
		slogx.FromContext(r.Context()).Error("sign out", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not sign out")
		return
	}

	httpx.WriteJSON(w, r, http.StatusResetContent, httpx.MessageResponse{Message: "Logout successful"})
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Refresh godoc
//
//	@Summary	Refresh access token
//	@Description	Mints a new access token from a live refresh token.
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		refreshRequest	true	"Refresh token"
//	@Success	200		{object}	refreshResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	401		{object}	httpx.ErrorResponse
//	@Router		/token/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if req.Refresh == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "Refresh token required")
		return
	}

	access, err := h.TokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			httpx.WriteError(w, r, http.StatusUnauthorized, "Token is invalid or expired")
			return
		}
		slogx.FromContext(r.Context()).Error("refresh token", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not refresh token")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, r, http.StatusOK, refreshResponse{Access: access})
}

type resetPasswordRequest struct {
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPassword godoc
//
//	@Summary	Reset a farmer's password
//	@Description	Replaces the password on the farmer account holding the
//	@Description	phone number. No OTP gate ties into this flow.
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		resetPasswordRequest	true	"New password"
//	@Success	200		{object}	httpx.MessageResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	err := h.AuthService.ResetPassword(r.Context(), req.PhoneNumber, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordsDiffer):
			httpx.WriteError(w, r, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, service.ErrPhoneNotFound):
			httpx.WriteError(w, r, http.StatusNotFound, "User with this phone number does not exist")
		default:
			slogx.FromContext(r.Context()).Error("reset password", "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not reset password")
		}
		return
	}

	httpx.WriteJSON(w, r, http.StatusOK, httpx.MessageResponse{Message: "Password reset successful"})
}
