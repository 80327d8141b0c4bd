package importer

import (
	"github.com/homeledger/backend/internal/models"
)

// ParsedResources contains all resources a parser extracted from a backup
// file. Homes are in the order they appeared in the backup.
type ParsedResources struct {
	Homes []Home
}

// Home is a home to be created together with the bills recorded for it.
type Home struct {
	Model models.Home
	Bills []models.Bill
}
