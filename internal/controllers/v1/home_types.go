package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/models"
)

// HomeEditable represents all user configurable parameters of a home
type HomeEditable struct {
	Name         string              `json:"name" example:"Fir Street 12" default:""`              // Name of the home
	Address      string              `json:"address" example:"12 Fir Street, Springfield" default:""` // Address of the home
	Note         string              `json:"note" example:"Inherited from grandma" default:""`     // Notes about the home
	Archived     bool                `json:"archived" example:"true" default:"false"`              // Is the home archived?
	Electricity  models.Electricity  `json:"electricity"`                                          // Electricity billing configuration
	Shareholders models.Shareholders `json:"shareholders"`                                         // Co-owners of the home
	Rent         *models.Rent        `json:"rent"`                                                 // Tenancy terms. Null when the home is not rented out.
}

func (editable HomeEditable) model() models.Home {
	return models.Home{
		Name:         editable.Name,
		Address:      editable.Address,
		Note:         editable.Note,
		Archived:     editable.Archived,
		Electricity:  editable.Electricity,
		Shareholders: editable.Shareholders,
		Rent:         editable.Rent,
	}
}

type HomeLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/homes/3b1ea324-d438-4419-882a-2fc91d71772f"`         // The home itself
	Bills  string `json:"bills" example:"https://example.com/api/v1/bills?home=3b1ea324-d438-4419-882a-2fc91d71772f"`   // Bills for this home
	Totals string `json:"totals" example:"https://example.com/api/v1/homes/3b1ea324-d438-4419-882a-2fc91d71772f/totals"` // Aggregated bill totals for this home
}

type Home struct {
	models.DefaultModel
	HomeEditable
	Links HomeLinks `json:"links"`
}

func newHome(c *gin.Context, model models.Home) Home {
	url := c.GetString(string(models.DBContextURL))

	return Home{
		DefaultModel: model.DefaultModel,
		HomeEditable: HomeEditable{
			Name:         model.Name,
			Address:      model.Address,
			Note:         model.Note,
			Archived:     model.Archived,
			Electricity:  model.Electricity,
			Shareholders: model.Shareholders,
			Rent:         model.Rent,
		},
		Links: HomeLinks{
			Self:   fmt.Sprintf("%s/v1/homes/%s", url, model.ID),
			Bills:  fmt.Sprintf("%s/v1/bills?home=%s", url, model.ID),
			Totals: fmt.Sprintf("%s/v1/homes/%s/totals", url, model.ID),
		},
	}
}

type HomeListResponse struct {
	Data       []Home      `json:"data"`                                                          // List of homes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type HomeCreateResponse struct {
	Data  []HomeResponse `json:"data"`                                                          // List of the created homes or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (h *HomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	h.Data = append(h.Data, HomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HomeResponse struct {
	Data       *Home             `json:"data"`                                                          // Data for the home
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Violations models.Violations `json:"violations,omitempty"`                                          // Failed field constraints, set when validation failed
}

type HomeQueryFilter struct {
	Name     string `form:"name" filterField:"false"`    // By name
	Address  string `form:"address" filterField:"false"` // By address
	Note     string `form:"note" filterField:"false"`    // By note
	Archived bool   `form:"archived"`                    // Is the home archived?
	Search   string `form:"search" filterField:"false"`  // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"`  // The offset of the first home returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`   // Maximum number of homes to return. Defaults to 50.
}

func (f HomeQueryFilter) model() models.Home {
	return models.Home{
		Archived: f.Archived,
	}
}

// TotalsResponse is the response for the bill totals of a home.
type TotalsResponse struct {
	Data  *models.BillTotals `json:"data"`                                                          // The calculated totals
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
