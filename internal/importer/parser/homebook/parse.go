// Package homebook parses backups of the homebook app so that they can be
// imported.
package homebook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/homeledger/backend/internal/importer"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

// Parse reads a homebook backup and returns all homes and bills it contains,
// mapped onto Home Ledger resources.
func Parse(f io.Reader) (importer.ParsedResources, error) {
	var backup Backup

	err := json.NewDecoder(f).Decode(&backup)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("not a valid homebook backup: %w", err)
	}

	// Homes are keyed by name in the backup, sort the names so that the
	// result is deterministic
	names := make([]string, 0, len(backup.Homes))
	for name := range backup.Homes {
		names = append(names, name)
	}
	slices.Sort(names)

	var resources importer.ParsedResources
	for _, name := range names {
		legacy := backup.Homes[name]

		home := parseHome(name, legacy)

		bills, err := parseBills(home, legacy.ElectricityBills)
		if err != nil {
			return importer.ParsedResources{}, fmt.Errorf("error parsing bills for home %q: %w", name, err)
		}

		resources.Homes = append(resources.Homes, importer.Home{
			Model: home,
			Bills: bills,
		})
	}

	return resources, nil
}

// parseHome maps a legacy home onto the Home Ledger schema. Share values are
// free form in homebook, values that do not parse as a number become 0.
func parseHome(name string, legacy Home) models.Home {
	home := models.Home{
		Name:     name,
		Address:  legacy.Address,
		Note:     legacy.Note,
		Archived: legacy.Archived,
		Electricity: models.Electricity{
			MeterCode: legacy.MeterCode,
		},
	}

	for _, sub := range legacy.Subscriptions {
		home.Electricity.Subscriptions = append(home.Electricity.Subscriptions, models.Subscription{
			Name:     strings.TrimSpace(sub.Label),
			Currency: symbol(sub.Currency),
		})
	}

	for _, shareholder := range legacy.Shareholders {
		amount, err := decimal.NewFromString(strings.TrimSpace(shareholder.ShareValue))
		if err != nil {
			amount = decimal.Zero
		}

		home.Shareholders = append(home.Shareholders, models.Shareholder{
			Name:   shareholder.Name,
			Amount: amount,
			Unit:   shareholder.Unit,
		})
	}

	if legacy.Rent != nil {
		amount, err := decimal.NewFromString(legacy.Rent.Amount.String())
		if err != nil {
			amount = decimal.Zero
		}

		// Unparsable legacy dates mean there is no last payment
		var lastPayment types.Date
		_ = lastPayment.UnmarshalParam(legacy.Rent.LastPaymentDate)

		home.Rent = &models.Rent{
			Tenant:          models.Tenant{Name: legacy.Rent.TenantName},
			Amount:          amount,
			Currency:        symbol(legacy.Rent.Currency),
			Interval:        legacy.Rent.Interval,
			LastPaymentDate: lastPayment,
		}
	}

	home.Normalize()
	return home
}

// parseBills maps the legacy bills onto the Home Ledger schema. The home ID
// is set by the creator once the home exists.
func parseBills(home models.Home, legacy []Bill) ([]models.Bill, error) {
	var bills []models.Bill

	for _, legacyBill := range legacy {
		var date types.Date
		err := date.UnmarshalParam(legacyBill.Date)
		if err != nil || date.IsZero() {
			return nil, fmt.Errorf("bill %q has no usable date", legacyBill.ID)
		}

		amount, err := decimal.NewFromString(legacyBill.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("bill %q has no usable amount: %w", legacyBill.ID, err)
		}

		bills = append(bills, models.Bill{
			Date:     date,
			Amount:   amount,
			Category: category(home, legacyBill.Label),
			Note:     legacyBill.Note,
		})
	}

	return bills, nil
}

// category maps a free form legacy bill label to one of the home's
// subscriptions. Labels that match no subscription go to the first one.
func category(home models.Home, label string) string {
	label = strings.ToLower(strings.TrimSpace(label))

	for _, sub := range home.Electricity.Subscriptions {
		if glob.Glob("*"+strings.ToLower(sub.Name)+"*", label) {
			return sub.Name
		}
	}

	return home.Electricity.Subscriptions[0].Name
}

// symbol converts an ISO 4217 code to its currency symbol. Anything that is
// not an ISO code is already a symbol in homebook and kept as is.
func symbol(s string) string {
	s = strings.TrimSpace(s)

	cur, err := currency.ParseISO(s)
	if err != nil {
		return s
	}

	return fmt.Sprintf("%s", currency.Symbol(cur))
}
