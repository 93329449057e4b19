// Package pricing computes and validates charges for paid boosting orders.
package pricing

import (
	"errors"
	"fmt"

	"github.com/instaboost/apiserver/types"
	"github.com/shopspring/decimal"
)

// MinQuantity is the smallest quantity accepted on the paid path, inclusive.
const MinQuantity = 100

// Per-unit rates in USD. followers_likes has no rate: it exists only on
// the free-trial path and is rejected here.
var (
	rateFollowers = decimal.RequireFromString("0.002")
	rateLikes     = decimal.RequireFromString("0.001")
)

// ErrInvalidServiceOrQuantity is returned when the service type is not a
// paid service or the quantity is below the minimum.
var ErrInvalidServiceOrQuantity = errors.New("service must be followers or likes with quantity of at least 100")

// AmountMismatchError is returned when the client-supplied amount does not
// match the computed charge. Expected carries the two-decimal string the
// client should have sent.
type AmountMismatchError struct {
	Expected string
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: expected $%s", e.Expected)
}

// Quote is a validated (service type, quantity, amount) triple ready to be
// persisted as an order.
type Quote struct {
	ServiceType string
	Quantity    int
	AmountUSD   string
}

// NewQuote validates a paid order request against the price table.
//
// The comparison between clientAmount and the computed charge is exact
// string equality. A client sending "0.2" where the charge is "0.20" is
// rejected even though the values are numerically equal; the deployed
// service behaves this way and callers depend on the error message, so it
// is preserved rather than normalized.
func NewQuote(serviceType string, quantity int, clientAmount string) (Quote, error) {
	expected, err := ExpectedAmount(serviceType, quantity)
	if err != nil {
		return Quote{}, err
	}

	if clientAmount != expected {
		return Quote{}, &AmountMismatchError{Expected: expected}
	}

	return Quote{
		ServiceType: serviceType,
		Quantity:    quantity,
		AmountUSD:   expected,
	}, nil
}

// ExpectedAmount returns the charge for a paid service as a fixed
// two-decimal string, rounding half to even.
func ExpectedAmount(serviceType string, quantity int) (string, error) {
	if quantity < MinQuantity {
		return "", ErrInvalidServiceOrQuantity
	}

	var rate decimal.Decimal
	switch serviceType {
	case types.ServiceFollowers:
		rate = rateFollowers
	case types.ServiceLikes:
		rate = rateLikes
	default:
		return "", ErrInvalidServiceOrQuantity
	}

	amount := decimal.NewFromInt(int64(quantity)).Mul(rate).RoundBank(2)
	return amount.StringFixed(2), nil
}
