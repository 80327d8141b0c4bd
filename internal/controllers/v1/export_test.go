package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	home := createTestHome(t, v1.HomeEditable{})
	_ = createTestBill(t, v1.BillEditable{HomeID: home.Data.ID})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(t, &r, &response)

	assert.Equal(t, "GNU Terry Pratchett", response.Clacks)
	assert.False(t, response.CreationTime.IsZero())
	assert.Len(t, response.Data, len(models.Registry), "All registered models have to be exported")

	var homes []models.Home
	require.NoError(t, json.Unmarshal(response.Data["Home"], &homes))
	require.Len(t, homes, 1)
	assert.Equal(t, home.Data.ID, homes[0].ID)

	var bills []models.Bill
	require.NoError(t, json.Unmarshal(response.Data["Bill"], &bills))
	assert.Len(t, bills, 1)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
