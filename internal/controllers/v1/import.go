package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/importer"
	"github.com/homeledger/backend/internal/importer/parser/homebook"
	"github.com/homeledger/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", ImportHomebook)
	}
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import homebook backup
// @Description	Imports homes and bills from a homebook backup file. Homes that already exist are skipped with an error, all other homes are imported.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	HomeCreateResponse
// @Failure		400		{object}	HomeCreateResponse
// @Failure		500		{object}	HomeCreateResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportHomebook(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HomeCreateResponse{
			Error: &s,
		})
		return
	}

	resources, err := homebook.Parse(f)
	if err != nil {
		// homebook.Parse returns a usable error already, no wrapping necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, HomeCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := HomeCreateResponse{}

	// Homes are created one by one so that a name collision only skips the
	// one home that collides
	for _, resource := range resources.Homes {
		home, err := importer.Create(models.DB, resource)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newHome(c, home)
		r.Data = append(r.Data, HomeResponse{Data: &data})
	}

	c.JSON(status, r)
}
