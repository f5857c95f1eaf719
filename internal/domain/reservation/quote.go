package reservation

import "errors"

var ErrInvalidQuoteInput = errors.New("invalid quote input")

// Quote is a derived price estimate. It is never persisted and never feeds
// back into admission.
type Quote struct {
	HourlyRate    Money
	DurationHours int
	ResourceCount int
	Total         Money
}

// ComputeQuote multiplies in integer cents: rate * hours * count.
func ComputeQuote(hourlyRate Money, durationHours, resourceCount int) (Quote, error) {
	if durationHours <= 0 || resourceCount <= 0 {
		return Quote{}, ErrInvalidQuoteInput
	}
	total := hourlyRate.Cents() * int64(durationHours) * int64(resourceCount)
	totalMoney, err := NewMoney(total)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		HourlyRate:    hourlyRate,
		DurationHours: durationHours,
		ResourceCount: resourceCount,
		Total:         totalMoney,
	}, nil
}
