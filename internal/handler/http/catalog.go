package http

import (
	"encoding/json"
	"net/http"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.services.CatalogService.ListServices(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, services, http.StatusOK)
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var svc models.CatalogService
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		log.Err(err).Str("func", "*Handler.createService").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	createdService, err := h.services.CatalogService.CreateService(ctx, svc)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdService, http.StatusCreated)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	serviceID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	svc, err := h.services.CatalogService.GetService(ctx, serviceID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, svc, http.StatusOK)
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serviceID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	var svc models.CatalogService
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		log.Err(err).Str("func", "*Handler.updateService").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}
	svc.ServiceID = serviceID

	updatedService, err := h.services.CatalogService.UpdateService(ctx, svc)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedService, http.StatusOK)
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	serviceID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteService(ctx, serviceID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgServiceDeleted}, http.StatusOK)
}
