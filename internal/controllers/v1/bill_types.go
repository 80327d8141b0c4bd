package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	hl_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BillEditable struct {
	Date types.Date `json:"date" example:"2024-03-17T00:00:00Z"` // The day the bill was paid

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"52.10" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount that was paid

	HomeID   uuid.UUID `json:"homeId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the home this bill was paid for
	Category string    `json:"category" example:"main" default:""`                    // Name of the electricity subscription the bill belongs to
	Note     string    `json:"note" example:"Paid at the post office" default:""`     // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable BillEditable) model() models.Bill {
	return models.Bill{
		Date:     editable.Date,
		Amount:   editable.Amount,
		HomeID:   editable.HomeID,
		Category: editable.Category,
		Note:     editable.Note,
	}
}

type BillLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bills/d430d7c3-d14c-4712-9336-ee56965a6673"`  // The bill itself
	Home string `json:"home" example:"https://example.com/api/v1/homes/3b1ea324-d438-4419-882a-2fc91d71772f"` // The home this bill was paid for
}

// Bill is the representation of an electricity bill in API v1.
type Bill struct {
	models.DefaultModel
	BillEditable
	Links BillLinks `json:"links"`
}

// newBill returns the API v1 representation of the resource
func newBill(c *gin.Context, model models.Bill) Bill {
	url := c.GetString(string(models.DBContextURL))

	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			Date:     model.Date,
			Amount:   model.Amount,
			HomeID:   model.HomeID,
			Category: model.Category,
			Note:     model.Note,
		},
		Links: BillLinks{
			Self: fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
			Home: fmt.Sprintf("%s/v1/homes/%s", url, model.HomeID),
		},
	}
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of bills
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                                          // List of created bills
}

func (b *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this bill
	Data       *Bill             `json:"data"`                                                          // The bill data, if creation was successful
	Violations models.Violations `json:"violations,omitempty"`                                          // Failed field constraints, set when validation failed
}

// BillDeleteResponse is the response for a range delete of bills.
type BillDeleteResponse struct {
	Count int64   `json:"count" example:"7"`                                             // Number of bills that were deleted
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BillQueryFilter struct {
	Date              types.Date      `form:"date" filterField:"false"`              // Bills paid on this exact day
	FromDate          types.Date      `form:"fromDate" filterField:"false"`          // Bills at and after this day
	UntilDate         types.Date      `form:"untilDate" filterField:"false"`         // Bills before and at this day
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note              string          `form:"note" filterField:"false"`              // Note contains this string
	HomeID            hl_uuid.UUID    `form:"home"`                                  // ID of the home
	Category          string          `form:"category"`                              // Name of the electricity subscription
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first bill returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of bills to return. Defaults to 50.
}

func (f BillQueryFilter) model() models.Bill {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return BillEditable{
		Amount:   f.Amount,
		HomeID:   f.HomeID.UUID,
		Category: f.Category,
	}.model()
}

// BillRangeFilter is the date range for range deletes and totals calculations.
// A zero untilDate means the current day, a zero fromDate does not restrict
// the start of the range.
type BillRangeFilter struct {
	HomeID    hl_uuid.UUID `form:"home"`      // ID of the home
	FromDate  types.Date   `form:"fromDate"`  // First day of the range
	UntilDate types.Date   `form:"untilDate"` // Last day of the range. Defaults to the current day.
}
