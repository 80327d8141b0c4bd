package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is one recorded electricity payment for a home.
//
// Bills are append-only: they are created and deleted, never updated.
type Bill struct {
	DefaultModel
	Home     Home `json:"-"`
	HomeID   uuid.UUID
	Date     types.Date
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category string          // Name of one of the home's electricity subscriptions
	Note     string
}

func (b *Bill) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Bill)
	return b.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources: the home must exist,
// the category must be one of its subscriptions.
func (b *Bill) checkIntegrity(tx *gorm.DB, toSave Bill) error {
	var home Home
	err := tx.First(&home, toSave.HomeID).Error
	if err != nil {
		return err
	}

	if !home.HasSubscription(toSave.Category) {
		return ErrBillCategoryUnknown
	}

	return nil
}

func (b *Bill) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrBillAmountNotPositive
	}

	if b.Date.IsZero() {
		return ErrBillDateRequired
	}

	return nil
}

// Validate checks the bill against its schema and returns every violated
// field constraint.
func (b Bill) Validate() Violations {
	var violations Violations

	if b.HomeID == uuid.Nil {
		violations = append(violations, Violation{Field: "homeId", Message: "bills must reference a home"})
	}

	if b.Date.IsZero() {
		violations = append(violations, Violation{Field: "date", Message: "date must not be empty"})
	}

	if !b.Amount.IsPositive() {
		violations = append(violations, Violation{Field: "amount", Message: "amount must be larger than zero"})
	}

	if strings.TrimSpace(b.Category) == "" {
		violations = append(violations, Violation{Field: "category", Message: "category must not be empty"})
	}

	return violations
}

// DeleteBillsInRange removes all bills of a home dated in [from, until],
// inclusive of both endpoints, and returns how many were removed. Removing
// nothing is not an error.
func DeleteBillsInRange(db *gorm.DB, homeID uuid.UUID, from, until types.Date) (int64, error) {
	// Dates are stored with a time component, so the upper bound is the
	// start of the following day
	q := db.
		Where(&Bill{HomeID: homeID}).
		Where("bills.date >= date(?)", from).
		Where("bills.date < date(?)", time.Time(until).AddDate(0, 0, 1)).
		Delete(&Bill{})

	return q.RowsAffected, q.Error
}

// Export returns all bills on this instance for export
func (Bill) Export() (json.RawMessage, error) {
	var bills []Bill
	err := DB.Unscoped().Where(&Bill{}).Find(&bills).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&bills)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
