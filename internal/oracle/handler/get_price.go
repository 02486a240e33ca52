package handler

import (
	"errors"
	"net/http"
	"net/url"

	"priceoracle/internal/domain"
	"priceoracle/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

const (
	tokenParam     = "token"
	clientKeyParam = "trustedClientKey"

	msgUnauthorized  = "Unauthorized"
	msgTokenRequired = "Token parameter is required"
	msgInternalError = "Internal Server Error: "
)

// SignedPriceResponse mirrors domain.SignedPrice for the API docs.
type SignedPriceResponse struct {
	Price     string `json:"price" example:"150123456"`
	Timestamp string `json:"timestamp" example:"1735830245"`
	Signature string `json:"signature" example:"9f1c...e04a"`
}

// GetPrice godoc
// @Summary Get a signed token price
// @Description Fetches the USD price of a token, scales it by 1e6 and signs keccak256(price_le64 || timestamp_le64) with Ed25519
// @Tags Oracle
// @Produce json
// @Param token query string true "Token id as known by the price source" example(solana)
// @Param trustedClientKey query string false "Client credential, required when trusted client keys are configured"
// @Success 200 {object} SignedPriceResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /price [get]
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	credential, present := lookupParam(query, clientKeyParam)
	if err := h.authorizer.Authorize(credential, present); err != nil {
		metrics.IncFailure("unauthorized")
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	token, err := extractToken(query)
	if err != nil {
		metrics.IncFailure("missing_token")
		writeError(w, http.StatusBadRequest, msgTokenRequired)
		return
	}

	signed, err := h.service.SignPrice(r.Context(), token)
	if err != nil {
		reason := failureReason(err)
		metrics.IncFailure(reason)
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPrice", "token": token, "reason": reason}).Error("price wasn't signed")
		writeError(w, http.StatusInternalServerError, msgInternalError+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, signed)
}

func extractToken(query url.Values) (string, error) {
	token, _ := lookupParam(query, tokenParam)
	if token == "" {
		return "", domain.ErrMissingToken
	}
	return token, nil
}

func lookupParam(query url.Values, name string) (string, bool) {
	values, ok := query[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPriceNotFound):
		return "price_not_found"
	case errors.Is(err, domain.ErrUpstreamFetchFailed):
		return "upstream_fetch_failed"
	case errors.Is(err, domain.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, domain.ErrSigningFailed):
		return "signing_failed"
	default:
		return "internal"
	}
}
