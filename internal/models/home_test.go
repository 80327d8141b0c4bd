package models_test

import (
	"testing"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHomeTrimWhitespace() {
	name := "  Fir Street 12  \t"
	address := " 12 Fir Street, Springfield   "

	home := suite.createTestHome(models.Home{
		Name:    name,
		Address: address,
		Electricity: models.Electricity{
			MeterCode: " 104-221 ",
		},
		Shareholders: models.Shareholders{
			{Name: "  Maha ", Amount: decimal.NewFromFloat(50), Unit: " % "},
		},
	})

	assert.Equal(suite.T(), "Fir Street 12", home.Name)
	assert.Equal(suite.T(), "12 Fir Street, Springfield", home.Address)
	assert.Equal(suite.T(), "104-221", home.Electricity.MeterCode)
	assert.Equal(suite.T(), "Maha", home.Shareholders[0].Name)
	assert.Equal(suite.T(), "%", home.Shareholders[0].Unit)
}

func (suite *TestSuiteStandard) TestHomeDefaults() {
	home := suite.createTestHome(models.Home{
		Name: "Defaults",
		Rent: &models.Rent{
			Tenant: models.Tenant{Name: "Sam"},
			Amount: decimal.NewFromFloat(700),
		},
	})

	// A fresh home always tracks the "main" subscription
	if assert.Len(suite.T(), home.Electricity.Subscriptions, 1) {
		assert.Equal(suite.T(), models.DefaultSubscription, home.Electricity.Subscriptions[0].Name)
		assert.Equal(suite.T(), models.DefaultSubscriptionCurrency, home.Electricity.Subscriptions[0].Currency)
	}

	assert.Equal(suite.T(), models.DefaultRentCurrency, home.Rent.Currency)
	assert.Equal(suite.T(), models.DefaultRentInterval, home.Rent.Interval)
}

func (suite *TestSuiteStandard) TestHomeNormalizeIdempotent() {
	home := models.Home{
		Name:    "  Idempotence \t",
		Address: " Somewhere ",
		Rent:    &models.Rent{Amount: decimal.NewFromFloat(100)},
		Shareholders: models.Shareholders{
			{Name: " A ", Amount: decimal.NewFromFloat(30)},
		},
	}

	home.Normalize()
	once := home
	home.Normalize()

	assert.Equal(suite.T(), once, home)
}

func (suite *TestSuiteStandard) TestHomeNameUnique() {
	_ = suite.createTestHome(models.Home{Name: "Unique"})

	home := models.Home{Name: "Unique"}
	err := models.DB.Create(&home).Error

	assert.ErrorIs(suite.T(), err, models.ErrHomeNameNotUnique)
}

func (suite *TestSuiteStandard) TestHomeValidate() {
	tests := []struct {
		name   string
		home   models.Home
		fields []string // Fields with violations. Empty means the home is valid.
	}{
		{
			"valid with all optional fields absent",
			models.Home{Name: "Valid"},
			nil,
		},
		{
			"missing name",
			models.Home{Address: "Somewhere"},
			[]string{"name"},
		},
		{
			"negative shareholder amount",
			models.Home{
				Name:         "Negative share",
				Shareholders: models.Shareholders{{Name: "B", Amount: decimal.NewFromFloat(-1)}},
			},
			[]string{"shareholders"},
		},
		{
			"shareholder without name",
			models.Home{
				Name:         "Anonymous share",
				Shareholders: models.Shareholders{{Amount: decimal.NewFromFloat(10)}},
			},
			[]string{"shareholders"},
		},
		{
			"negative rent",
			models.Home{
				Name: "Negative rent",
				Rent: &models.Rent{Amount: decimal.NewFromFloat(-500)},
			},
			[]string{"rent.amount"},
		},
		{
			"duplicate subscription",
			models.Home{
				Name: "Duplicate subscriptions",
				Electricity: models.Electricity{
					Subscriptions: []models.Subscription{{Name: "main"}, {Name: "main"}},
				},
			},
			[]string{"electricity.subscriptions"},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			home := tt.home
			home.Normalize()
			violations := home.Validate()

			if len(tt.fields) == 0 {
				assert.True(t, violations.Empty(), "Unexpected violations: %s", violations.Error())
				return
			}

			assert.Len(t, violations, len(tt.fields), "Violations: %s", violations.Error())
			for i, field := range tt.fields {
				assert.Equal(t, field, violations[i].Field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestHomeRoundTrip() {
	tests := []struct {
		name string
		home models.Home
	}{
		{"no shareholders, no rent", models.Home{Name: "Empty"}},
		{
			"one shareholder",
			models.Home{
				Name:         "One",
				Shareholders: models.Shareholders{{Name: "Ada", Amount: decimal.NewFromFloat(100), Unit: "%"}},
			},
		},
		{
			"multiple shareholders and rent",
			models.Home{
				Name: "Full",
				Shareholders: models.Shareholders{
					{Name: "Ada", Amount: decimal.NewFromFloat(60), Unit: "%"},
					{Name: "Grace", Amount: decimal.NewFromFloat(40), Unit: "%"},
				},
				Rent: &models.Rent{
					Tenant:          models.Tenant{Name: "Sam"},
					Amount:          decimal.NewFromFloat(950.50),
					Currency:        "EUR",
					Interval:        "Monthly",
					LastPaymentDate: types.NewDate(2024, 2, 1),
				},
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			created := suite.createTestHome(tt.home)

			var loaded models.Home
			err := models.DB.First(&loaded, created.ID).Error
			assert.Nil(t, err)

			assert.Equal(t, created.Name, loaded.Name)
			assert.Equal(t, created.Electricity, loaded.Electricity)

			// Decimals are compared by value, the JSON round trip does
			// not preserve their internal representation
			if assert.Len(t, loaded.Shareholders, len(created.Shareholders)) {
				for i, shareholder := range created.Shareholders {
					assert.Equal(t, shareholder.Name, loaded.Shareholders[i].Name)
					assert.Equal(t, shareholder.Unit, loaded.Shareholders[i].Unit)
					assert.True(t, shareholder.Amount.Equal(loaded.Shareholders[i].Amount), "Amount changed in the round trip: %s != %s", shareholder.Amount, loaded.Shareholders[i].Amount)
				}
			}

			if created.Rent == nil {
				assert.Nil(t, loaded.Rent)
			} else {
				if assert.NotNil(t, loaded.Rent) {
					assert.Equal(t, created.Rent.Tenant, loaded.Rent.Tenant)
					assert.Equal(t, created.Rent.Currency, loaded.Rent.Currency)
					assert.Equal(t, created.Rent.Interval, loaded.Rent.Interval)
					assert.True(t, created.Rent.Amount.Equal(loaded.Rent.Amount))
					assert.True(t, created.Rent.LastPaymentDate.Equal(loaded.Rent.LastPaymentDate))
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteHomeCascades() {
	home := suite.createTestHome(models.Home{Name: "Cascade"})
	bill := suite.createTestBill(models.Bill{
		HomeID:   home.ID,
		Date:     types.NewDate(2024, 1, 15),
		Amount:   decimal.NewFromFloat(42),
		Category: models.DefaultSubscription,
	})

	err := models.DeleteHome(models.DB, &home)
	assert.Nil(suite.T(), err)

	var count int64
	models.DB.Model(&models.Bill{}).Where("home_id = ?", home.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "Bill %s still exists after its home was deleted", bill.ID)

	err = models.DB.First(&models.Home{}, home.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
