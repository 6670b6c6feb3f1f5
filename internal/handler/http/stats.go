package http

import (
	"net/http"
	"strconv"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offsetMinutes, err := timezoneOffsetQueryParam(r)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	stats, err := h.services.StatsService.DashboardStats(ctx, offsetMinutes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) earnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	earnings, err := h.services.StatsService.Earnings(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, earnings, http.StatusOK)
}

// timezoneOffsetQueryParam parses the optional timezoneOffset query
// parameter: minutes in JS Date.getTimezoneOffset convention, positive
// west of UTC. An absent parameter means UTC.
func timezoneOffsetQueryParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("timezoneOffset")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
