package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := store.OrderFilter{
		Status: r.URL.Query().Get("status"),
	}
	if rawServiceID := r.URL.Query().Get("service"); rawServiceID != "" {
		serviceID, err := strconv.ParseInt(rawServiceID, 10, 64)
		if err != nil {
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
			return
		}
		filter.ServiceID = serviceID
	}

	orders, err := h.services.OrderService.ListOrders(ctx, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	createdOrder, err := h.services.OrderService.CreateOrder(ctx, order)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdOrder, http.StatusCreated)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.GetOrder(ctx, orderID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	orderID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Str("func", "*Handler.updateOrder").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}
	order.OrderID = orderID

	updatedOrder, err := h.services.OrderService.UpdateOrder(ctx, order)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedOrder, http.StatusOK)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := idURLParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	if err := h.services.OrderService.DeleteOrder(ctx, orderID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgOrderDeleted}, http.StatusOK)
}

// idURLParam parses the {id} chi route parameter.
func idURLParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
