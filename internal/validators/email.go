// Package validators holds request checks that need more than a binding
// tag, currently just the email domain lookup done at registration.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address has a domain that looks
// deliverable. A domain with MX records passes outright; one that only
// resolves to A/AAAA records also passes, since small domains sometimes
// receive mail on the bare host.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
