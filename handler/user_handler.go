package handler

import (
	"demo-bank-api/common"
	"demo-bank-api/model"
	"demo-bank-api/service"
	"errors"
	"net/http"
)

type UserHandler struct {
	service *service.AccountService
}

func NewUserHandler(s *service.AccountService) *UserHandler {
	return &UserHandler{service: s}
}

// GetProfile godoc
// @Summary      Get an account profile
// @Tags         user
// @Produce      json
// @Param        accountNumber path string true "Account number"
// @Success      200  {object}  model.ProfileResponse
// @Failure      404  {object}  common.AppError "User not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/user/profile/{accountNumber} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	profile, err := h.service.GetProfile(r.Context(), r.PathValue("accountNumber"))
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch profile", err)
	}

	common.WriteJSON(w, http.StatusOK, model.ProfileResponse{Success: true, User: *profile})
	return nil
}
