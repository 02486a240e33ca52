package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"priceoracle/internal/domain"
)

type Authorizer interface {
	Authorize(credential string, present bool) error
}

type PriceService interface {
	SignPrice(ctx context.Context, token string) (domain.SignedPrice, error)
	PublicKeyInfo() domain.PublicKeyInfo
}

type Handler struct {
	authorizer Authorizer
	service    PriceService
}

func NewPriceHandler(authorizer Authorizer, service PriceService) *Handler {
	return &Handler{authorizer: authorizer, service: service}
}

type errorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
