package domain

// SignedPrice is the payload handed back to callers. Both integers are decimal strings.
type SignedPrice struct {
	Price     string `json:"price"`
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}

// PublicKeyInfo describes how verifiers must reconstruct and check a SignedPrice.
type PublicKeyInfo struct {
	PublicKey string `json:"public_key"`
	Scheme    string `json:"scheme"`
	Hash      string `json:"hash"`
	Scale     string `json:"scale"`
}
