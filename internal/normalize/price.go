package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is the canonical {amount, currency} pair.
type Price struct {
	Amount   float64
	Currency string
}

// PriceObject is the nested upstream shape {total: "1500", currency: "ZAR"}.
type PriceObject struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// ParsePrice normalizes the price representations observed across adapters:
//
//   - "ZAR 1500" / "USD 850.50"  (currency-prefixed string)
//   - "$850" / "$1,250"          (symbol-prefixed string)
//   - 850 / 850.5                (bare numeric)
//   - PriceObject                (nested total/currency object)
//
// Unparseable input returns an error; callers sorting by price treat it as
// +Inf so bad records sink to the end instead of crashing the batch.
func ParsePrice(raw any) (Price, error) {
	switch v := raw.(type) {
	case nil:
		return Price{}, fmt.Errorf("parse price: nil value")
	case float64:
		return Price{Amount: v}, nil
	case int:
		return Price{Amount: float64(v)}, nil
	case PriceObject:
		return parsePriceObject(v)
	case map[string]any:
		return parsePriceMap(v)
	case *PriceObject:
		if v == nil {
			return Price{}, fmt.Errorf("parse price: nil object")
		}
		return parsePriceObject(*v)
	case string:
		return parsePriceString(v)
	default:
		return Price{}, fmt.Errorf("parse price: unsupported type %T", raw)
	}
}

// AmountOrInf returns a sortable amount for a price string, with +Inf for
// anything unparseable.
func AmountOrInf(raw string) float64 {
	p, err := parsePriceString(raw)
	if err != nil {
		return math.Inf(1)
	}
	return p.Amount
}

// parsePriceMap handles the object form as decoded into a generic JSON map,
// where total may itself be a string or a number.
func parsePriceMap(m map[string]any) (Price, error) {
	currency, _ := m["currency"].(string)
	switch total := m["total"].(type) {
	case string:
		amount, err := strconv.ParseFloat(strings.TrimSpace(total), 64)
		if err != nil {
			return Price{}, fmt.Errorf("parse price total %q: %w", total, err)
		}
		return Price{Amount: amount, Currency: currency}, nil
	case float64:
		return Price{Amount: total, Currency: currency}, nil
	default:
		return Price{}, fmt.Errorf("parse price: object missing total")
	}
}

func parsePriceObject(obj PriceObject) (Price, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(obj.Total), 64)
	if err != nil {
		return Price{}, fmt.Errorf("parse price total %q: %w", obj.Total, err)
	}
	return Price{Amount: amount, Currency: obj.Currency}, nil
}

func parsePriceString(raw string) (Price, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Price{}, fmt.Errorf("parse price: empty string")
	}

	// "$850" or "$1,250.00"
	if strings.HasPrefix(s, "$") {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(s[1:], ",", ""), 64)
		if err != nil {
			return Price{}, fmt.Errorf("parse price %q: %w", raw, err)
		}
		return Price{Amount: amount, Currency: "USD"}, nil
	}

	// "ZAR 1500"
	if fields := strings.Fields(s); len(fields) == 2 {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(fields[1], ",", ""), 64)
		if err != nil {
			return Price{}, fmt.Errorf("parse price %q: %w", raw, err)
		}
		return Price{Amount: amount, Currency: fields[0]}, nil
	}

	// Bare number in a string
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return Price{Amount: amount}, nil
}
