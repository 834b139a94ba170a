package handler

import (
	"demo-bank-api/common"
	"demo-bank-api/model"
	"demo-bank-api/service"
	"encoding/json"
	"errors"
	"net/http"
)

// AuthHandler serves the demo login endpoints.
type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login godoc
// @Summary      Log in as the demo user
// @Description  Issues a 24h bearer token for the demo account. No credentials are checked.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Demo user not provisioned"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	account, token, err := h.service.Login(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrDemoUserNotFound) {
			return common.NewAppError(http.StatusBadRequest, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Login failed", err)
	}

	common.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Success: true,
		Message: "Logged in successfully",
		User:    account.Profile(),
		Token:   token,
	})
	return nil
}

// FaceVerify godoc
// @Summary      Log in with a face capture
// @Description  Accepts any non-empty capture for the demo account and issues a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body model.FaceVerifyRequest true "Captured face image"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "No face data provided or demo user missing"
// @Failure      413  {object}  common.AppError "Request body too large"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/face-verify [post]
func (h *AuthHandler) FaceVerify(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.FaceVerifyRequest
	// Apart from an oversized body, an unreadable body is treated like a missing capture.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if appErr := common.BodyTooLarge(err); appErr != nil {
			return appErr
		}
	}

	account, token, err := h.service.VerifyFace(r.Context(), req.CapturedFace)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDemoUserNotFound):
			return common.NewAppError(http.StatusBadRequest, "User not found", nil)
		case errors.Is(err, service.ErrNoFaceData):
			return common.NewAppError(http.StatusBadRequest, "No face data provided", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Face verification failed", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Success: true,
		Message: "Face verified successfully",
		User:    account.Profile(),
		Token:   token,
	})
	return nil
}
