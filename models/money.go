package models

// Currency is an ISO 4217 code limited to the currencies the site sells in.
type Currency string

const (
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	USD Currency = "USD"
	AUD Currency = "AUD"
)

var SupportedCurrencies = []Currency{GBP, EUR, USD, AUD}

func (c Currency) Valid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

func (c Currency) Symbol() string {
	switch c {
	case GBP:
		return "£"
	case EUR:
		return "€"
	case USD:
		return "$"
	case AUD:
		return "A$"
	}
	return string(c)
}

type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}
