package domain

import (
	"github.com/shopspring/decimal"
)

// Budget holds the four cost buckets of a project. Amounts are decimals
// and must be non-negative; the total is always derived, never stored.
type Budget struct {
	PersonnelCosts  decimal.Decimal
	TechnologyTools decimal.Decimal
	MarketingLaunch decimal.Decimal
	Contingency     decimal.Decimal
}

// Total returns the sum of all budget buckets.
func (b Budget) Total() decimal.Decimal {
	return decimal.Sum(b.PersonnelCosts, b.TechnologyTools, b.MarketingLaunch, b.Contingency)
}

// Validate reports whether every amount is non-negative.
func (b Budget) Validate() bool {
	for _, amount := range []decimal.Decimal{b.PersonnelCosts, b.TechnologyTools, b.MarketingLaunch, b.Contingency} {
		if amount.IsNegative() {
			return false
		}
	}
	return true
}
