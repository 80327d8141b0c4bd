package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	hl_uuid "github.com/homeledger/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterBillRoutes registers the routes for bills with
// the RouterGroup that is passed.
//
// Bills are append only. Instead of updating a bill, it is deleted and
// recorded again.
func RegisterBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBillList)
		r.GET("", GetBills)
		r.POST("", CreateBills)
		r.DELETE("", DeleteBills)
	}

	// Bill with ID
	{
		r.OPTIONS("/:id", OptionsBillDetail)
		r.GET("/:id", GetBill)
		r.DELETE("/:id", DeleteBill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills [options]
func OptionsBillList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [options]
func OptionsBillDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Bill{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create bills
// @Description	Creates new bills
// @Tags			Bills
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		404		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			bills	body		[]BillEditable	true	"Bills"
// @Router			/v1/bills [post]
func CreateBills(c *gin.Context) {
	var editables []BillEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, editable := range editables {
		bill := editable.model()

		if violations := bill.Validate(); !violations.Empty() {
			s := violations.Error()
			r.Data = append(r.Data, BillResponse{Error: &s, Violations: violations})
			if http.StatusBadRequest > status {
				status = http.StatusBadRequest
			}
			continue
		}

		err = models.DB.Create(&bill).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBill(c, bill)
		r.Data = append(r.Data, BillResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get bills
// @Description	Returns a list of bills
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillListResponse
// @Failure		400	{object}	BillListResponse
// @Failure		500	{object}	BillListResponse
// @Router			/v1/bills [get]
// @Param			date				query	string	false	"Bills paid on this day"
// @Param			fromDate			query	string	false	"Bills at and after this day"
// @Param			untilDate			query	string	false	"Bills before and at this day"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			note				query	string	false	"Filter by note"
// @Param			home				query	string	false	"Filter by home ID"
// @Param			category			query	string	false	"Filter by subscription name"
// @Param			offset				query	uint	false	"The offset of the first bill returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of bills to return. Defaults to 50."
func GetBills(c *gin.Context) {
	var filter BillQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var q *gorm.DB
	q = models.DB.Order("datetime(bills.date) ASC, datetime(bills.created_at) ASC").Where(&model, queryFields...)

	// Filter for the bill being paid on the same day
	if !filter.Date.IsZero() {
		date := time.Time(filter.Date)
		q = q.Where("bills.date >= date(?)", date).Where("bills.date < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("bills.date >= date(?)", time.Time(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("bills.date < date(?)", time.Time(filter.UntilDate).AddDate(0, 0, 1))
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("bills.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("bills.amount >= ?", filter.AmountMoreOrEqual)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 bills and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var bills []models.Bill
	err := q.Find(&bills).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Bill, 0)
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	c.JSON(http.StatusOK, BillListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bill
// @Description	Returns a specific bill
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [get]
func GetBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	data := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &data})
}

// @Summary		Delete bill
// @Description	Deletes a bill
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var bill models.Bill
	err = models.DB.First(&bill, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bill).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete bills
// @Description	Deletes all bills of a home within a date range and returns how many were deleted
// @Tags			Bills
// @Produce		json
// @Success		200			{object}	BillDeleteResponse
// @Failure		400			{object}	BillDeleteResponse
// @Failure		404			{object}	BillDeleteResponse
// @Failure		500			{object}	BillDeleteResponse
// @Param			home		query		string	true	"ID of the home"
// @Param			fromDate	query		string	false	"First day of the range"
// @Param			untilDate	query		string	false	"Last day of the range. Defaults to the current day."
// @Router			/v1/bills [delete]
func DeleteBills(c *gin.Context) {
	var filter BillRangeFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillDeleteResponse{
			Error: &s,
		})
		return
	}

	if filter.HomeID == hl_uuid.Nil {
		s := errHomeParameterRequired.Error()
		c.JSON(http.StatusBadRequest, BillDeleteResponse{
			Error: &s,
		})
		return
	}

	err := models.DB.First(&models.Home{}, filter.HomeID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillDeleteResponse{
			Error: &s,
		})
		return
	}

	// An unset end of the range means everything up to the current day
	until := filter.UntilDate
	if until.IsZero() {
		until = types.DateOf(time.Now())
	}

	count, err := models.DeleteBillsInRange(models.DB, filter.HomeID.UUID, filter.FromDate, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillDeleteResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BillDeleteResponse{Count: count})
}
