package models

import (
	"encoding/json"
	"strings"

	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSubscription is the electricity subscription every home has.
const DefaultSubscription = "main"

// Default values applied by Normalize for blank optional fields.
const (
	DefaultRentCurrency         = "USD"
	DefaultRentInterval         = "Monthly"
	DefaultSubscriptionCurrency = "$"
)

// Home represents a managed property.
//
// A home is the highest level of organization in Home Ledger, all other
// resources reference it directly.
type Home struct {
	DefaultModel
	Name         string `gorm:"uniqueIndex"`
	Address      string
	Note         string
	Archived     bool
	Electricity  Electricity  `gorm:"serializer:json"`
	Shareholders Shareholders `gorm:"serializer:json"`
	Rent         *Rent        `gorm:"serializer:json"`
}

// Shareholder is a co-owner of a home. Shareholders have no identity of their
// own, they only exist as part of their home.
type Shareholder struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"` // "%" or a currency code
}

type Shareholders []Shareholder

// Rent holds the tenancy terms of a home. A home that is not rented out has
// no Rent at all.
type Rent struct {
	Tenant          Tenant          `json:"tenant"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Interval        string          `json:"interval"` // e.g. "Monthly", "Yearly"
	LastPaymentDate types.Date      `json:"lastPaymentDate"`
}

type Tenant struct {
	Name string `json:"name"`
}

// Electricity is the per-home electricity billing configuration.
type Electricity struct {
	MeterCode     string         `json:"meterCode"` // Identifier of the utility meter
	Subscriptions []Subscription `json:"subscriptions"`
}

// Subscription is a named electricity billing category, e.g. "main" or
// "motor".
type Subscription struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Normalize sanitizes a home in place: strings are trimmed and blank
// optional fields get their defaults. It is idempotent and the only place
// where defaults are applied, BeforeSave calls it so every persisted home is
// normalized.
func (h *Home) Normalize() {
	h.Name = strings.TrimSpace(h.Name)
	h.Address = strings.TrimSpace(h.Address)
	h.Note = strings.TrimSpace(h.Note)

	h.Electricity.MeterCode = strings.TrimSpace(h.Electricity.MeterCode)

	// Every home tracks at least the default subscription
	if len(h.Electricity.Subscriptions) == 0 {
		h.Electricity.Subscriptions = []Subscription{{Name: DefaultSubscription}}
	}

	for i, sub := range h.Electricity.Subscriptions {
		sub.Name = strings.TrimSpace(sub.Name)
		sub.Currency = strings.TrimSpace(sub.Currency)
		if sub.Currency == "" {
			sub.Currency = DefaultSubscriptionCurrency
		}
		h.Electricity.Subscriptions[i] = sub
	}

	// An empty shareholder list round-trips as an empty list, not as null
	if h.Shareholders == nil {
		h.Shareholders = Shareholders{}
	}

	for i, shareholder := range h.Shareholders {
		shareholder.Name = strings.TrimSpace(shareholder.Name)
		shareholder.Unit = strings.TrimSpace(shareholder.Unit)
		h.Shareholders[i] = shareholder
	}

	if h.Rent != nil {
		h.Rent.Tenant.Name = strings.TrimSpace(h.Rent.Tenant.Name)
		h.Rent.Currency = strings.TrimSpace(h.Rent.Currency)
		if h.Rent.Currency == "" {
			h.Rent.Currency = DefaultRentCurrency
		}

		h.Rent.Interval = strings.TrimSpace(h.Rent.Interval)
		if h.Rent.Interval == "" {
			h.Rent.Interval = DefaultRentInterval
		}
	}
}

// Validate checks the home against its schema and returns every violated
// field constraint. It expects a normalized home, callers go through
// Normalize first (or let BeforeSave do it).
//
// Validation is all-or-nothing: a home with any violation must not be
// persisted.
func (h Home) Validate() Violations {
	var violations Violations

	if h.Name == "" {
		violations = append(violations, Violation{Field: "name", Message: "name must not be empty"})
	}

	seen := make(map[string]bool)
	for _, sub := range h.Electricity.Subscriptions {
		if sub.Name == "" {
			violations = append(violations, Violation{Field: "electricity.subscriptions", Message: "subscription names must not be empty"})
			continue
		}

		if seen[sub.Name] {
			violations = append(violations, Violation{Field: "electricity.subscriptions", Message: "subscription names must be unique, \"" + sub.Name + "\" is configured twice"})
		}
		seen[sub.Name] = true
	}

	for _, shareholder := range h.Shareholders {
		if shareholder.Name == "" {
			violations = append(violations, Violation{Field: "shareholders", Message: "shareholder names must not be empty"})
		}

		if shareholder.Amount.IsNegative() {
			violations = append(violations, Violation{Field: "shareholders", Message: "shareholder amounts must not be negative"})
		}
	}

	if h.Rent != nil && h.Rent.Amount.IsNegative() {
		violations = append(violations, Violation{Field: "rent.amount", Message: "rent amounts must not be negative"})
	}

	return violations
}

// HasSubscription reports whether the home has an electricity subscription
// with the given name.
func (h Home) HasSubscription(name string) bool {
	for _, sub := range h.Electricity.Subscriptions {
		if sub.Name == name {
			return true
		}
	}

	return false
}

func (h *Home) BeforeSave(_ *gorm.DB) error {
	h.Normalize()
	return nil
}

// Bills returns all bills for the home.
func (h Home) Bills(db *gorm.DB) ([]Bill, error) {
	var bills []Bill

	err := db.
		Where(&Bill{HomeID: h.ID}).
		Order("datetime(bills.date) ASC, datetime(bills.created_at) ASC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// DeleteHome removes a home and all bills referencing it in a single
// transaction. Bills go first so that a failure can never leave orphaned
// bills behind.
func DeleteHome(db *gorm.DB, home *Home) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Bill{HomeID: home.ID}).Delete(&Bill{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(home).Error
	})
}

// Export returns all homes on this instance for export
func (Home) Export() (json.RawMessage, error) {
	var homes []Home
	err := DB.Unscoped().Where(&Home{}).Find(&homes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&homes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
