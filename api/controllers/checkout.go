package controllers

import (
	"net/http"

	"github.com/kamaubrian/sokolink-backend/api/responses"
	"github.com/kamaubrian/sokolink-backend/api/validators"
	checkoutsvc "github.com/kamaubrian/sokolink-backend/internal/checkout"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
	"github.com/kamaubrian/sokolink-backend/pkg/logger"
)

// Checkout submits the caller's active cart for payment and order creation.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutsvc.Request
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Execute(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
