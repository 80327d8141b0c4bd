package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHome(t *testing.T, h v1.HomeEditable, expectedStatus ...int) v1.HomeResponse {
	if h.Name == "" {
		h.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.HomeEditable{h}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/homes", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.HomeCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.HomeResponse{}
}

// TestHomesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestHomesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestHome(t, v1.HomeEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/homes", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.HomeListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestHomesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestHomesOptions() {
	tests := []struct {
		name   string
		id     string // path at the homes endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Home with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Home exists", createTestHome(suite.T(), v1.HomeEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/homes", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestHomesCreate verifies that homes are created correctly and that
// normalization and validation are applied.
func (suite *TestSuiteStandard) TestHomesCreate() {
	t := suite.T()

	home := createTestHome(t, v1.HomeEditable{
		Name:    "  Fir Street 12\t",
		Address: "12 Fir Street, Springfield",
	})

	require.NotNil(t, home.Data)
	assert.Equal(t, "Fir Street 12", home.Data.Name, "Name is not trimmed")

	// The default subscription is configured
	require.Len(t, home.Data.Electricity.Subscriptions, 1)
	assert.Equal(t, models.DefaultSubscription, home.Data.Electricity.Subscriptions[0].Name)

	// Shareholders round-trip as an empty list, not null
	assert.NotNil(t, home.Data.Shareholders)
	assert.Len(t, home.Data.Shareholders, 0)

	assert.Contains(t, home.Data.Links.Self, "/v1/homes/"+home.Data.ID.String())
	assert.Contains(t, home.Data.Links.Totals, "/totals")
}

func (suite *TestSuiteStandard) TestHomesCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Not an array", `{ "name": "Single object" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/homes", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestHomesCreateViolations verifies that invalid homes are rejected with
// the violated field constraints.
func (suite *TestSuiteStandard) TestHomesCreateViolations() {
	t := suite.T()

	body := []v1.HomeEditable{
		{
			Name: "",
			Shareholders: models.Shareholders{
				{Name: "", Amount: decimal.NewFromInt(-1), Unit: "%"},
			},
		},
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/homes", body)
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.HomeCreateResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 1)
	require.NotNil(t, response.Data[0].Error)

	fields := make([]string, 0)
	for _, violation := range response.Data[0].Violations {
		fields = append(fields, violation.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "shareholders")

	// Nothing may be persisted when validation fails
	list := test.Request(t, http.MethodGet, "http://example.com/v1/homes", "")
	var homes v1.HomeListResponse
	test.DecodeResponse(t, &list, &homes)
	assert.Len(t, homes.Data, 0)
}

// TestHomesCreateDuplicateName verifies that the name stays unique.
func (suite *TestSuiteStandard) TestHomesCreateDuplicateName() {
	t := suite.T()

	_ = createTestHome(t, v1.HomeEditable{Name: "Unique home"})

	r := test.Request(t, http.MethodPost, "http://example.com/v1/homes", []v1.HomeEditable{{Name: "Unique home"}})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.HomeCreateResponse
	test.DecodeResponse(t, &r, &response)
	require.Len(t, response.Data, 1)
	assert.Equal(t, models.ErrHomeNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestHomesGetFilter() {
	t := suite.T()

	_ = createTestHome(t, v1.HomeEditable{Name: "Fir Street 12", Address: "12 Fir Street", Note: "Inherited"})
	_ = createTestHome(t, v1.HomeEditable{Name: "Seaside Cottage", Address: "1 Shore Road", Archived: true})
	_ = createTestHome(t, v1.HomeEditable{Name: "Mountain Cabin", Address: "99 Summit Path"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name single", "name=Fir", 1},
		{"Name no match", "name=Palace", 0},
		{"Address", "address=Shore", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Search in name", "search=cottage", 1},
		{"Search in note", "search=inherited", 1},
		{"Limit", "limit=2", 2},
		{"Limit and Offset", "limit=2&offset=2", 1},
		{"Limit negative", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/homes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.HomeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Wrong number of homes for query %q", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestHomesPagination() {
	t := suite.T()

	for i := 0; i < 3; i++ {
		_ = createTestHome(t, v1.HomeEditable{})
	}

	r := test.Request(t, http.MethodGet, "http://example.com/v1/homes?limit=2", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.HomeListResponse
	test.DecodeResponse(t, &r, &response)

	require.NotNil(t, response.Pagination)
	assert.Equal(t, 2, response.Pagination.Count)
	assert.Equal(t, int64(3), response.Pagination.Total)
	assert.Equal(t, 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestHomesGetSingle() {
	h := createTestHome(suite.T(), v1.HomeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Home", h.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "5b95e1a9-fail", http.StatusBadRequest, http.MethodGet},
		{"DELETE Existing Home", h.Data.ID.String(), http.StatusNoContent, http.MethodDelete},
		{"DELETE Non-existing Home", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/homes/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestHomesUpdate() {
	t := suite.T()

	home := createTestHome(t, v1.HomeEditable{Name: "Before the rename"})

	r := test.Request(t, http.MethodPatch, home.Data.Links.Self, map[string]any{
		"name": "After the rename",
		"note": "  now with a note ",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var updated v1.HomeResponse
	test.DecodeResponse(t, &r, &updated)

	assert.Equal(t, "After the rename", updated.Data.Name)
	assert.Equal(t, "now with a note", updated.Data.Note, "Note is not trimmed")
}

// TestHomesUpdateInvalid verifies that a PATCH that would make the home
// invalid is rejected and does not change the resource.
func (suite *TestSuiteStandard) TestHomesUpdateInvalid() {
	t := suite.T()

	home := createTestHome(t, v1.HomeEditable{Name: "Keep me valid"})

	r := test.Request(t, http.MethodPatch, home.Data.Links.Self, map[string]any{
		"name": "",
	})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.HomeResponse
	test.DecodeResponse(t, &r, &response)
	assert.NotEmpty(t, response.Violations)

	// The home is unchanged
	r = test.Request(t, http.MethodGet, home.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "Keep me valid", response.Data.Name)
}

func (suite *TestSuiteStandard) TestHomesUpdateBrokenJSON() {
	home := createTestHome(suite.T(), v1.HomeEditable{})

	r := test.Request(suite.T(), http.MethodPatch, home.Data.Links.Self, `{ "name": 2" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestHomesDeleteCascade verifies that deleting a home deletes its bills.
func (suite *TestSuiteStandard) TestHomesDeleteCascade() {
	t := suite.T()

	home := createTestHome(t, v1.HomeEditable{})
	_ = createTestBill(t, v1.BillEditable{HomeID: home.Data.ID})
	_ = createTestBill(t, v1.BillEditable{HomeID: home.Data.ID})

	r := test.Request(t, http.MethodDelete, home.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)

	r = test.Request(t, http.MethodGet, "http://example.com/v1/bills", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var bills v1.BillListResponse
	test.DecodeResponse(t, &r, &bills)
	assert.Len(t, bills.Data, 0, "Deleting a home must delete its bills")
}
