package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid checa se o domínio do e-mail resolve (MX ou A/AAAA).
// DNS lento não pode segurar o cadastro: as consultas têm deadline curto
// e, no timeout, o domínio passa (a validação é heurística).
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var resolver net.Resolver

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ctx.Err() != nil {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return ctx.Err() != nil
}
