package service

import (
	"fmt"
	"time"
)

const (
	orderIDDigits  = 6
	orderIDSpace   = 1_000_000
	maxOrderIDSize = 10
)

// OrderIDGenerator derives display ids like "VV-482913" from the last six
// digits of the epoch millisecond.
type OrderIDGenerator struct {
	prefix string
}

func NewOrderIDGenerator(storeCode string) (*OrderIDGenerator, error) {
	if storeCode == "" {
		return nil, fmt.Errorf("store code is required")
	}
	if len(storeCode)+1+orderIDDigits > maxOrderIDSize {
		return nil, fmt.Errorf("store code %q makes order ids longer than %d characters", storeCode, maxOrderIDSize)
	}
	return &OrderIDGenerator{prefix: storeCode}, nil
}

// Next returns the id for now, stepping forward past ids reported as taken.
// It returns an error only when every id in the space is taken.
func (g *OrderIDGenerator) Next(now time.Time, taken func(id string) bool) (string, error) {
	base := now.UnixMilli() % orderIDSpace
	if base < 0 {
		base += orderIDSpace
	}
	for i := int64(0); i < orderIDSpace; i++ {
		id := fmt.Sprintf("%s-%0*d", g.prefix, orderIDDigits, (base+i)%orderIDSpace)
		if !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("order id space exhausted")
}
