package homebook

import "encoding/json"

// This is the backup format written by the homebook app, which stores the
// whole home graph as one key-object document keyed by home name.
//
// Unused fields have been removed to keep the structs as small as possible.
type Backup struct {
	Version int             `json:"version"`
	Homes   map[string]Home `json:"homes"`
}

type Home struct {
	Address          string         `json:"address"`
	Note             string         `json:"note"`
	Archived         bool           `json:"archived"`
	MeterCode        string         `json:"meterCode"`
	Subscriptions    []Subscription `json:"subscriptions"`
	Shareholders     []Shareholder  `json:"shareholders"`
	Rent             *Rent          `json:"rent"`
	ElectricityBills []Bill         `json:"electricityBills"`
}

type Subscription struct {
	Label    string `json:"label"`
	Currency string `json:"currency"` // Either a symbol or an ISO 4217 code
}

type Shareholder struct {
	Name string `json:"name"`
	// The share value is free form in homebook, anything that does not
	// parse as a number is imported as 0.
	ShareValue string `json:"shareValue"`
	Unit       string `json:"unit"`
}

type Rent struct {
	TenantName      string      `json:"tenantName"`
	Amount          json.Number `json:"amount"`
	Currency        string      `json:"currency"`
	Interval        string      `json:"interval"`
	LastPaymentDate string      `json:"lastPaymentDate"`
}

type Bill struct {
	ID     string      `json:"id"` // Timestamp plus random string, not carried over
	Date   string      `json:"date"`
	Amount json.Number `json:"amount"`
	Label  string      `json:"label"` // Free form category label
	Note   string      `json:"note"`
}
