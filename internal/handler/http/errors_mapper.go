package http

import (
	"errors"
	"net/http"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	store.ErrEmailAlreadyExists:      http.StatusBadRequest,
	store.ErrNoUserWasFound:          http.StatusNotFound,
	store.ErrOrderNotFound:           http.StatusNotFound,
	store.ErrCatalogServiceNotFound:  http.StatusNotFound,
	store.ErrTransactionNumberExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,

	store.ErrEmailAlreadyExists:      app.MsgEmailAlreadyExists,
	store.ErrNoUserWasFound:          app.MsgUserNotFound,
	store.ErrOrderNotFound:           app.MsgOrderNotFound,
	store.ErrCatalogServiceNotFound:  app.MsgServiceNotFound,
	store.ErrTransactionNumberExists: app.MsgTransactionNumberExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// respondError maps a service error to its HTTP status and a stable
// JSON message body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("request failed")

	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
}
