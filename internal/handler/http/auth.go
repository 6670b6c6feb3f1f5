package http

import (
	"encoding/json"
	"net/http"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RegisterUser(ctx, user); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserRegistered}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser.Sanitized(),
	}, http.StatusOK)
}
