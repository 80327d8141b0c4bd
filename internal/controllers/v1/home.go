package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterHomeRoutes registers the routes for homes with
// the RouterGroup that is passed.
func RegisterHomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHomeList)
		r.GET("", GetHomes)
		r.POST("", CreateHomes)
	}

	// Home with ID
	{
		r.OPTIONS("/:id", OptionsHomeDetail)
		r.GET("/:id", GetHome)
		r.PATCH("/:id", UpdateHome)
		r.DELETE("/:id", DeleteHome)
	}

	// Calculated data for a home
	{
		r.OPTIONS("/:id/totals", OptionsHomeTotals)
		r.GET("/:id/totals", GetHomeTotals)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Homes
// @Success		204
// @Router			/v1/homes [options]
func OptionsHomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Homes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/homes/{id} [options]
func OptionsHomeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Home{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create homes
// @Description	Creates new homes
// @Tags			Homes
// @Produce		json
// @Success		201		{object}	HomeCreateResponse
// @Failure		400		{object}	HomeCreateResponse
// @Failure		500		{object}	HomeCreateResponse
// @Param			homes	body		[]HomeEditable	true	"Homes"
// @Router			/v1/homes [post]
func CreateHomes(c *gin.Context) {
	var editables []HomeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := HomeCreateResponse{}

	for _, editable := range editables {
		home := editable.model()

		home.Normalize()
		if violations := home.Validate(); !violations.Empty() {
			s := violations.Error()
			r.Data = append(r.Data, HomeResponse{Error: &s, Violations: violations})
			if http.StatusBadRequest > status {
				status = http.StatusBadRequest
			}
			continue
		}

		err = models.DB.Create(&home).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newHome(c, home)
		r.Data = append(r.Data, HomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get homes
// @Description	Returns a list of homes
// @Tags			Homes
// @Produce		json
// @Success		200	{object}	HomeListResponse
// @Failure		400	{object}	HomeListResponse
// @Failure		500	{object}	HomeListResponse
// @Router			/v1/homes [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			address		query	string	false	"Filter by address"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the home archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Home returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Homes to return. Defaults to 50."
func GetHomes(c *gin.Context) {
	var filter HomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if filter.Address != "" {
		q = q.Where("address LIKE ?", fmt.Sprintf("%%%s%%", filter.Address))
	} else if slices.Contains(setFields, "Address") {
		q = q.Where("address = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Homes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var homes []models.Home
	err := q.Find(&homes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HomeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Home, 0)
	for _, home := range homes {
		data = append(data, newHome(c, home))
	}

	c.JSON(http.StatusOK, HomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get home
// @Description	Returns a specific home
// @Tags			Homes
// @Produce		json
// @Success		200	{object}	HomeResponse
// @Failure		400	{object}	HomeResponse
// @Failure		404	{object}	HomeResponse
// @Failure		500	{object}	HomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/homes/{id} [get]
func GetHome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	var home models.Home
	err = models.DB.First(&home, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	data := newHome(c, home)
	c.JSON(http.StatusOK, HomeResponse{Data: &data})
}

// @Summary		Update home
// @Description	Update an existing home. Only values to be updated need to be specified.
// @Tags			Homes
// @Accept			json
// @Produce		json
// @Success		200		{object}	HomeResponse
// @Failure		400		{object}	HomeResponse
// @Failure		404		{object}	HomeResponse
// @Failure		500		{object}	HomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			home	body		HomeEditable	true	"Home"
// @Router			/v1/homes/{id} [patch]
func UpdateHome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	var home models.Home
	err = models.DB.First(&home, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	var data HomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	// Normalize the incoming values. The BeforeSave hook only sees the
	// pre-merge home, not the update data.
	m := data.model()
	m.Normalize()

	// The update is done in a transaction so that it can be rolled
	// back when the resulting home would be invalid.
	tx := models.DB.Begin()
	err = tx.Model(&home).Select("", updateFields...).Updates(m).Error
	if err != nil {
		tx.Rollback()
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	if violations := home.Validate(); !violations.Empty() {
		tx.Rollback()
		s := violations.Error()
		c.JSON(http.StatusBadRequest, HomeResponse{
			Error:      &s,
			Violations: violations,
		})
		return
	}

	err = tx.Commit().Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeResponse{
			Error: &s,
		})
		return
	}

	r := newHome(c, home)
	c.JSON(http.StatusOK, HomeResponse{Data: &r})
}

// @Summary		Delete home
// @Description	Deletes a home and all bills recorded for it
// @Tags			Homes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/homes/{id} [delete]
func DeleteHome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var home models.Home
	err = models.DB.First(&home, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteHome(models.DB, &home)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Homes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/homes/{id}/totals [options]
func OptionsHomeTotals(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Home{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get bill totals
// @Description	Returns the bill totals for a home, aggregated over all bills in the requested date range
// @Tags			Homes
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	TotalsResponse
// @Failure		404	{object}	TotalsResponse
// @Failure		500	{object}	TotalsResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			fromDate	query	string	false	"Only aggregate bills at and after this date"
// @Param			untilDate	query	string	false	"Only aggregate bills before and at this date. Defaults to the current day."
// @Router			/v1/homes/{id}/totals [get]
func GetHomeTotals(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	var filter BillRangeFilter
	err = c.Bind(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	var home models.Home
	err = models.DB.First(&home, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	bills, err := home.Bills(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	bills = models.FilterBills(bills, filter.FromDate, filter.UntilDate, time.Now())
	totals := models.CalculateTotals(home, bills)

	c.JSON(http.StatusOK, TotalsResponse{Data: &totals})
}
