// Package currency handles display-currency detection and conversion
// between the four currencies the site prices in.
package currency

import (
	"math"

	"globehunters/models"
)

// countryCurrency maps geo-IP country codes to a display currency.
// US deliberately maps to GBP: the site is UK-focused.
var countryCurrency = map[string]models.Currency{
	"GB": models.GBP,
	"UK": models.GBP,
	"US": models.GBP,
	"AU": models.AUD,
	"DE": models.EUR,
	"FR": models.EUR,
	"IT": models.EUR,
	"ES": models.EUR,
	"NL": models.EUR,
	"BE": models.EUR,
	"AT": models.EUR,
	"PT": models.EUR,
	"IE": models.EUR,
}

// Detect picks the display currency from the strongest available signal:
// explicit URL parameter, then stored cookie preference, then geo-IP
// country, then GBP.
func Detect(urlParam, cookieValue, countryCode string) models.Currency {
	if c := models.Currency(urlParam); c.Valid() {
		return c
	}
	if c := models.Currency(cookieValue); c.Valid() {
		return c
	}
	if c, ok := countryCurrency[countryCode]; ok {
		return c
	}
	return models.GBP
}

// RateProvider supplies the cross rate from one currency to another.
type RateProvider interface {
	Rate(from, to models.Currency) (float64, error)
}

// Convert applies the provider's rate and rounds to two decimal places.
// A provider error leaves the amount unconverted.
func Convert(p RateProvider, amount float64, from, to models.Currency) float64 {
	if from == to {
		return amount
	}
	rate, err := p.Rate(from, to)
	if err != nil {
		return amount
	}
	return math.Round(amount*rate*100) / 100
}
