package http

import (
	"encoding/json"
	"net/http"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.profile").Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusForbidden)
		return
	}

	user, err := h.services.ProfileService.Profile(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateProfile").Msg("no user ID in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusForbidden)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateProfile(ctx, userID, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UpdateProfileResponse{
		Success: true,
		User:    updatedUser.Sanitized(),
	}, http.StatusOK)
}
