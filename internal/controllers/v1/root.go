package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Homes  string `json:"homes" example:"https://example.com/api/v1/homes"`   // URL of the home list endpoint
	Bills  string `json:"bills" example:"https://example.com/api/v1/bills"`   // URL of the bill list endpoint
	Export string `json:"export" example:"https://example.com/api/v1/export"` // URL of the export endpoint
	Import string `json:"import" example:"https://example.com/api/v1/import"` // URL of the import endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Homes:  url + "/v1/homes",
			Bills:  url + "/v1/bills",
			Export: url + "/v1/export",
			Import: url + "/v1/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
