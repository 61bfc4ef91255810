package model

import "fmt"

// GuardPolicy decides how the session guard treats a request that carries
// a refresh token but no access token.
type GuardPolicy int

const (
	// PolicySoftPass lets the request through so the refresh flow can recover the session.
	PolicySoftPass GuardPolicy = iota
	// PolicyRedirect sends the request to the login page.
	PolicyRedirect
)

func (p GuardPolicy) String() string {
	switch p {
	case PolicySoftPass:
		return "soft-pass"
	case PolicyRedirect:
		return "redirect"
	default:
		return fmt.Sprintf("GuardPolicy(%d)", int(p))
	}
}

// ParseGuardPolicy converts a configuration value into a GuardPolicy.
func ParseGuardPolicy(s string) (GuardPolicy, error) {
	switch s {
	case "", "soft-pass":
		return PolicySoftPass, nil
	case "redirect":
		return PolicyRedirect, nil
	default:
		return PolicySoftPass, fmt.Errorf("unknown guard policy %q", s)
	}
}
