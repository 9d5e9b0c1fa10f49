package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// OTPHandler serves the passcode lifecycle endpoints.
type OTPHandler struct {
	OTPService *service.OTPService
}

type otpPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type otpIssuedResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp"`
}

// Request godoc
//
//	@Summary	Request an OTP
//	@Description	Issues a six digit passcode for the given phone number. The
//	@Description	code is echoed in the response body.
//	@Tags		OTP
//	@Accept		json
//	@Produce	json
//	@Param		body	body		otpPhoneRequest	true	"Phone number"
//	@Success	200		{object}	otpIssuedResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/otp/request [post]
func (h *OTPHandler) Request(w http.ResponseWriter, r *http.Request) {
	h.issue(w, r, "OTP sent", h.OTPService.Request)
}

// Resend godoc
//
//	@Summary	Resend an OTP
//	@Description	Issues a fresh passcode; the previous one stays valid until
//	@Description	its own expiry.
//	@Tags		OTP
//	@Accept		json
//	@Produce	json
//	@Param		body	body		otpPhoneRequest	true	"Phone number"
//	@Success	200		{object}	otpIssuedResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/otp/resend [post]
func (h *OTPHandler) Resend(w http.ResponseWriter, r *http.Request) {
	h.issue(w, r, "OTP resent", h.OTPService.Resend)
}

func (h *OTPHandler) issue(w http.ResponseWriter, r *http.Request, message string,
	send func(context.Context, string) (string, error)) {
	var req otpPhoneRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if req.PhoneNumber == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "Phone number is required")
		return
	}

	code, err := send(r.Context(), req.PhoneNumber)
	if err != nil {
		slogx.FromContext(r.Context()).Error("issue otp", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not issue OTP")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, r, http.StatusOK, otpIssuedResponse{Message: message, OTP: code})
}

type otpVerifyRequest struct {
	OTP string `json:"otp"`
}

// Verify godoc
//
//	@Summary	Verify an OTP
//	@Description	Consumes a passcode. Verification matches on the code alone.
//	@Tags		OTP
//	@Accept		json
//	@Produce	json
//	@Param		body	body		otpVerifyRequest	true	"Passcode"
//	@Success	200		{object}	httpx.MessageResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/otp/verify [post]
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req otpVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if req.OTP == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "OTP is required")
		return
	}

	if err := h.OTPService.Verify(r.Context(), req.OTP); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			httpx.WriteError(w, r, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		slogx.FromContext(r.Context()).Error("verify otp", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not verify OTP")
		return
	}

	httpx.WriteJSON(w, r, http.StatusOK, httpx.MessageResponse{Message: "OTP verified successfully"})
}
