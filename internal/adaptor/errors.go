package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a service error to its HTTP status by kind.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := usecase.KindOf(err)

	switch kind {
	case usecase.KindInvalidInput:
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			utils.ResponseBadRequest(w, "Validation failed", verr.Fields)
			return
		}
		utils.ResponseBadRequest(w, err.Error(), nil)

	case usecase.KindConflict:
		// duplicates keep the documented 400 status
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeConflict, err.Error(), nil)

	case usecase.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case usecase.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		message := "Could not validate credentials"
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			message = err.Error()
		}
		utils.ResponseUnauthorized(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeBody writes a 400 and returns false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
