package models

import (
	"time"

	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BillTotals is the aggregate over a list of bills.
type BillTotals struct {
	Total         decimal.Decimal            `json:"total" example:"80"`        // Sum over all bills, regardless of category
	Categories    map[string]decimal.Decimal `json:"categories"`                // Per-subscription sums, keyed by subscription name
	Uncategorized decimal.Decimal            `json:"uncategorized" example:"0"` // Sum of bills whose category is not configured on the home
}

// CalculateTotals sums the amounts of the given bills per electricity
// subscription of the home. Every configured subscription is present in the
// result, with a zero sum if no bill matched. Bills with a category that is
// not configured on the home count towards Total and Uncategorized only.
//
// Summation is commutative, the order of the bills does not matter.
func CalculateTotals(home Home, bills []Bill) BillTotals {
	totals := BillTotals{
		Total:         decimal.Zero,
		Categories:    make(map[string]decimal.Decimal),
		Uncategorized: decimal.Zero,
	}

	for _, sub := range home.Electricity.Subscriptions {
		totals.Categories[sub.Name] = decimal.Zero
	}

	for _, bill := range bills {
		totals.Total = totals.Total.Add(bill.Amount)

		sum, ok := totals.Categories[bill.Category]
		if !ok {
			totals.Uncategorized = totals.Uncategorized.Add(bill.Amount)
			continue
		}

		totals.Categories[bill.Category] = sum.Add(bill.Amount)
	}

	return totals
}

// FilterBills returns the bills dated in [from, until], inclusive of both
// endpoints. A zero from matches from the earliest bill on. A zero until is
// treated as "today", with today derived from the now parameter so that
// callers control the clock.
//
// The input slice is never modified.
func FilterBills(bills []Bill, from, until types.Date, now time.Time) []Bill {
	if until.IsZero() {
		until = types.DateOf(now)
	}

	filtered := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		if !from.IsZero() && bill.Date.Before(from) {
			continue
		}

		if bill.Date.After(until) {
			continue
		}

		filtered = append(filtered, bill)
	}

	return filtered
}
