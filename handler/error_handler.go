package handler

import (
	"demo-bank-api/common"
	"demo-bank-api/logger"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// ErrorHandlingMiddleware turns a returned *common.AppError into the JSON error envelope.
// Internal causes are logged against the request; clients only ever see the message.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appErr := next(w, r)
		if appErr == nil {
			return
		}

		if appErr.Err != nil {
			logger.Log.WithFields(logrus.Fields{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": appErr.Code,
			}).WithError(appErr.Err).Error(appErr.Message)
		}

		common.WriteJSON(w, appErr.Code, appErr)
	}
}
