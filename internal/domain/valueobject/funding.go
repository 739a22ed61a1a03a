package valueobject

import "github.com/shopspring/decimal"

// PartnerContribution is one named partner's share of partner funding.
type PartnerContribution struct {
	Name   string
	Amount decimal.Decimal
}

// FundingBreakdown holds the funding sources committed to an activity or sub-activity.
type FundingBreakdown struct {
	Government   decimal.Decimal
	SDG          decimal.Decimal
	Partners     decimal.Decimal
	Other        decimal.Decimal
	PartnersList []PartnerContribution
}

// NewFundingBreakdown builds a FundingBreakdown from loosely typed amounts.
// The partner list is copied so the breakdown never aliases caller memory.
func NewFundingBreakdown(government, sdg, partners, other any, partnersList []PartnerContribution) FundingBreakdown {
	var list []PartnerContribution
	if len(partnersList) > 0 {
		list = make([]PartnerContribution, len(partnersList))
		for i, p := range partnersList {
			list[i] = PartnerContribution{Name: p.Name, Amount: CoerceNonNegativeDecimal(p.Amount)}
		}
	}

	return FundingBreakdown{
		Government:   CoerceNonNegativeDecimal(government),
		SDG:          CoerceNonNegativeDecimal(sdg),
		Partners:     CoerceNonNegativeDecimal(partners),
		Other:        CoerceNonNegativeDecimal(other),
		PartnersList: list,
	}
}

// TotalAvailable returns government + sdg + partners + other.
func (f FundingBreakdown) TotalAvailable() decimal.Decimal {
	return nonNegative(f.Government).
		Add(nonNegative(f.SDG)).
		Add(nonNegative(f.Partners)).
		Add(nonNegative(f.Other))
}

// PartnersListTotal sums the amounts of the partner list.
func (f FundingBreakdown) PartnersListTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range f.PartnersList {
		total = total.Add(nonNegative(p.Amount))
	}
	return total
}

// PartnersConsistent reports whether the partners figure agrees with the partner list.
// An empty list leaves the partners figure as a manually entered amount.
func (f FundingBreakdown) PartnersConsistent() bool {
	if len(f.PartnersList) == 0 {
		return true
	}
	return f.Partners.Equal(f.PartnersListTotal())
}

// Settled fills an unset partners figure from a non-empty partner list.
// A figure that was entered alongside the list is kept as is.
func (f FundingBreakdown) Settled() FundingBreakdown {
	if len(f.PartnersList) > 0 && f.Partners.IsZero() {
		f.Partners = f.PartnersListTotal()
	}
	return f
}
