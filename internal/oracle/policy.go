package oracle

import "priceoracle/internal/domain"

// Policy is the set of credentials a caller may present. An empty policy lets every request through.
type Policy struct {
	credentials map[string]struct{} // read only copy
}

// NewPolicy builds a policy from the configured credentials. Empty strings are never accepted.
func NewPolicy(credentials []string) Policy {
	set := make(map[string]struct{}, len(credentials))
	for _, c := range credentials {
		if c == "" {
			continue
		}
		set[c] = struct{}{}
	}
	return Policy{credentials: set}
}

func (p Policy) Enabled() bool {
	return len(p.credentials) > 0
}

// Authorize checks the supplied credential with exact, case-sensitive equality.
func (p Policy) Authorize(credential string, present bool) error {
	if !p.Enabled() {
		return nil
	}
	if !present {
		return domain.ErrUnauthorized
	}
	if _, ok := p.credentials[credential]; !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (p Policy) Size() int {
	return len(p.credentials)
}
