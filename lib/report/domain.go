// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strings"
)

// Domain identifies one hardware area a report can cover.
type Domain string

const (
	DomainSummary     Domain = "summary"
	DomainCPU         Domain = "cpu"
	DomainRAM         Domain = "ram"
	DomainStorage     Domain = "storage"
	DomainNetwork     Domain = "network"
	DomainUSB         Domain = "usb"
	DomainPCI         Domain = "pci"
	DomainMotherboard Domain = "motherboard"
	DomainBattery     Domain = "battery"
)

// AllDomains returns every domain in report order. The order is the
// collection order and the serialization order.
func AllDomains() []Domain {
	return []Domain{
		DomainSummary,
		DomainCPU,
		DomainRAM,
		DomainStorage,
		DomainNetwork,
		DomainUSB,
		DomainPCI,
		DomainMotherboard,
		DomainBattery,
	}
}

// ParseDomain returns the domain named by s (case-insensitive).
func ParseDomain(s string) (Domain, error) {
	name := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, domain := range AllDomains() {
		if domain == name {
			return domain, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// Selection is the set of domains to collect.
type Selection map[Domain]bool

// SelectAll returns a selection containing every domain.
func SelectAll() Selection {
	return Select(AllDomains()...)
}

// Select returns a selection containing exactly the given domains.
func Select(domains ...Domain) Selection {
	selection := make(Selection, len(domains))
	for _, domain := range domains {
		selection[domain] = true
	}
	return selection
}

// Has reports whether domain is selected.
func (s Selection) Has(domain Domain) bool {
	return s[domain]
}

// Domains returns the selected domains in report order.
func (s Selection) Domains() []Domain {
	var domains []Domain
	for _, domain := range AllDomains() {
		if s[domain] {
			domains = append(domains, domain)
		}
	}
	return domains
}
