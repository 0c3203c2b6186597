package catalog

import (
	"sync"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *pattern.Registry
)

// Domains returns the catalogue in publication order.
func Domains() []pattern.Domain {
	return []pattern.Domain{
		emailDomain(),
		phoneDomain(),
		dateDomain(),
		timeDomain(),
		alphanumericDomain(),
		textLengthDomain(),
		numberOfLinesDomain(),
		affirmationDomain(),
		socialSecurityNumberDomain(),
		isbnDomain(),
		zipCodeDomain(),
		creditDebitCardNumberDomain(),
		numbersDomain(),
		domainDomain(),
		urlAndPathDomain(),
		ipAddressDomain(),
		unixPathDomain(),
		windowsPathDomain(),
	}
}

// Default returns the shared registry. It panics if the catalogue is malformed,
// which only a broken build can cause.
func Default() *pattern.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = pattern.MustRegistry(Domains()...)
	})
	return defaultRegistry
}
