package handler

import "net/http"

type PublicKeyResponse struct {
	PublicKey string `json:"public_key" example:"3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"`
	Scheme    string `json:"scheme" example:"ed25519"`
	Hash      string `json:"hash" example:"keccak256"`
	Scale     string `json:"scale" example:"1000000"`
}

// GetPublicKey godoc
// @Summary Get the oracle verification key
// @Description Returns the Ed25519 public key and the parameters verifiers need to rebuild the signed message
// @Tags Oracle
// @Produce json
// @Success 200 {object} PublicKeyResponse
// @Router /oracle/public-key [get]
func (h *Handler) GetPublicKey(w http.ResponseWriter, _ *http.Request) {
	info := h.service.PublicKeyInfo()
	writeJSON(w, http.StatusOK, PublicKeyResponse{
		PublicKey: info.PublicKey,
		Scheme:    info.Scheme,
		Hash:      info.Hash,
		Scale:     info.Scale,
	})
}
