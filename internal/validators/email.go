package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const domainLookupTimeout = 3 * time.Second

// NormalizeEmail trims and lower-cases an address before it is stored or compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resolver is the subset of *net.Resolver used by the domain check.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker returns a check that accepts an address when its domain
// has an MX record or, failing that, any A/AAAA record.
func EmailDomainChecker(r Resolver) func(ctx context.Context, email string) bool {
	return func(ctx context.Context, email string) bool {
		at := strings.LastIndex(email, "@")
		if at < 0 || at == len(email)-1 {
			return false
		}
		domain := email[at+1:]

		ctx, cancel := context.WithTimeout(ctx, domainLookupTimeout)
		defer cancel()

		if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
			return true
		}
		if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
			return true
		}
		return false
	}
}
