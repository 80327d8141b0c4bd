package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/homeledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// importHomebook imports a backup file from the testdata directory.
func importHomebook(t *testing.T, file string, expectedStatus int) v1.HomeCreateResponse {
	body, headers := test.LoadTestFile(t, file)

	r := test.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.HomeCreateResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestImportHomebook() {
	t := suite.T()

	response := importHomebook(t, "importer/homebook.json", http.StatusCreated)
	require.Len(t, response.Data, 2, "Both homes from the backup have to be imported")

	// Homes are sorted by name
	fir := response.Data[0].Data
	cottage := response.Data[1].Data
	require.NotNil(t, fir)
	require.NotNil(t, cottage)

	assert.Equal(t, "Fir Street 12", fir.Name)
	assert.Equal(t, "12 Fir Street, Springfield", fir.Address)
	assert.Equal(t, "EL-449217", fir.Electricity.MeterCode)

	require.Len(t, fir.Electricity.Subscriptions, 2)
	assert.Equal(t, "Main", fir.Electricity.Subscriptions[0].Name)
	assert.Equal(t, "€", fir.Electricity.Subscriptions[0].Currency, "ISO codes have to be converted to symbols")
	assert.Equal(t, "Motor", fir.Electricity.Subscriptions[1].Name)

	require.Len(t, fir.Shareholders, 2)
	assert.True(t, fir.Shareholders[0].Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, fir.Shareholders[1].Amount.IsZero(), "Free form share values have to fall back to 0")

	require.NotNil(t, fir.Rent)
	assert.Equal(t, "The Tenants", fir.Rent.Tenant.Name)
	assert.True(t, fir.Rent.Amount.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, "€", fir.Rent.Currency)
	assert.Equal(t, types.NewDate(2024, 2, 1), fir.Rent.LastPaymentDate)

	assert.Equal(t, "Seaside Cottage", cottage.Name)
	assert.True(t, cottage.Archived)
	require.Len(t, cottage.Electricity.Subscriptions, 1, "Homes without subscriptions get the default subscription")
	assert.Equal(t, models.DefaultSubscription, cottage.Electricity.Subscriptions[0].Name)

	// Verify the bills, including the mapping of free form labels
	// to subscriptions
	var bills v1.BillListResponse
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bills?home=%s", fir.ID), "")
	test.DecodeResponse(t, &r, &bills)
	require.Len(t, bills.Data, 2)
	assert.Equal(t, "Main", bills.Data[0].Category)
	assert.True(t, bills.Data[0].Amount.Equal(decimal.NewFromFloat(52.1)))
	assert.Equal(t, "Motor", bills.Data[1].Category)

	r = test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bills?home=%s", cottage.ID), "")
	test.DecodeResponse(t, &r, &bills)
	require.Len(t, bills.Data, 1)
	assert.Equal(t, models.DefaultSubscription, bills.Data[0].Category, "Bills without a matching label go to the first subscription")
	assert.Equal(t, types.NewDate(2023, 7, 1), bills.Data[0].Date)
}

// TestImportHomebookDuplicate verifies that importing a backup twice skips
// the homes that already exist.
func (suite *TestSuiteStandard) TestImportHomebookDuplicate() {
	t := suite.T()

	_ = importHomebook(t, "importer/homebook.json", http.StatusCreated)
	response := importHomebook(t, "importer/homebook.json", http.StatusBadRequest)

	require.Len(t, response.Data, 2)
	for _, home := range response.Data {
		require.NotNil(t, home.Error)
		assert.Contains(t, *home.Error, models.ErrHomeNameNotUnique.Error())
	}

	// The first import has to survive untouched
	var homes v1.HomeListResponse
	r := test.Request(t, http.MethodGet, "http://example.com/v1/homes", "")
	test.DecodeResponse(t, &r, &homes)
	assert.Len(t, homes.Data, 2)
}

func (suite *TestSuiteStandard) TestImportHomebookErrors() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Corrupt backup",
			func(t *testing.T) {
				response := importHomebook(t, "importer/corrupt.json", http.StatusBadRequest)
				assert.Contains(t, *response.Error, "not a valid homebook backup")
			},
		},
		{
			"Wrong file suffix",
			func(t *testing.T) {
				_ = importHomebook(t, "importer/homebook.csv", http.StatusBadRequest)
			},
		},
		{
			"No file",
			func(t *testing.T) {
				r := test.Request(t, http.MethodPost, "http://example.com/v1/import", "")
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, tt.test)
	}
}

func (suite *TestSuiteStandard) TestImportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}
