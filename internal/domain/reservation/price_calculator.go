package reservation

import (
	"errors"
	"strings"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/stay"
)

var ErrInvalidPricingPolicy = errors.New("invalid pricing policy")

type PricingPolicy string

const (
	PricingPerNight PricingPolicy = "per_night"
	PricingFlat     PricingPolicy = "flat"
)

// Quote is the price of a stay. Total is what gets snapshotted on the reservation.
type Quote struct {
	Nights   int
	Subtotal money.Money
	Tax      money.Money
	Total    money.Money
}

type PriceCalculator interface {
	Quote(rates roomtype.Rates, period stay.Period) Quote
}

// PerNightPriceCalculator charges each night at the weekday or weekend rate.
type PerNightPriceCalculator struct {
	TaxBasisPoints int64
	WeekendNights  map[time.Weekday]bool
}

func NewPerNightPriceCalculator(taxBasisPoints int64, weekendNights []time.Weekday) *PerNightPriceCalculator {
	wk := make(map[time.Weekday]bool, len(weekendNights))
	for _, d := range weekendNights {
		wk[d] = true
	}
	return &PerNightPriceCalculator{TaxBasisPoints: taxBasisPoints, WeekendNights: wk}
}

func (pc *PerNightPriceCalculator) Quote(rates roomtype.Rates, period stay.Period) Quote {
	subtotal := money.Zero()
	period.EachNight(func(night time.Time) {
		if pc.WeekendNights[night.Weekday()] {
			subtotal = subtotal.Add(rates.Weekend)
		} else {
			subtotal = subtotal.Add(rates.Weekday)
		}
	})
	return withTax(period.Nights(), subtotal, pc.TaxBasisPoints)
}

// FlatRateCalculator charges every night at the weekday rate.
type FlatRateCalculator struct {
	TaxBasisPoints int64
}

func NewFlatRateCalculator(taxBasisPoints int64) *FlatRateCalculator {
	return &FlatRateCalculator{TaxBasisPoints: taxBasisPoints}
}

func (pc *FlatRateCalculator) Quote(rates roomtype.Rates, period stay.Period) Quote {
	subtotal := money.FromMinor(rates.Weekday.Minor() * int64(period.Nights()))
	return withTax(period.Nights(), subtotal, pc.TaxBasisPoints)
}

func withTax(nights int, subtotal money.Money, bp int64) Quote {
	total := subtotal.WithBasisPoints(bp)
	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      total.Sub(subtotal),
		Total:    total,
	}
}

// MaxTaxBasisPoints is 100% tax.
const MaxTaxBasisPoints = 10000

// NewPriceCalculator picks the calculator for policy.
func NewPriceCalculator(policy string, taxBasisPoints int64, weekendNights []string) (PriceCalculator, error) {
	if taxBasisPoints < 0 || taxBasisPoints > MaxTaxBasisPoints {
		return nil, ErrInvalidPricingPolicy
	}
	switch PricingPolicy(strings.ToLower(strings.TrimSpace(policy))) {
	case PricingPerNight, "":
		days, err := ParseWeekdays(weekendNights)
		if err != nil {
			return nil, err
		}
		return NewPerNightPriceCalculator(taxBasisPoints, days), nil
	case PricingFlat:
		return NewFlatRateCalculator(taxBasisPoints), nil
	default:
		return nil, ErrInvalidPricingPolicy
	}
}

var weekdayNames = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

func ParseWeekdays(names []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		key := strings.ToUpper(strings.TrimSpace(n))
		if len(key) > 3 {
			key = key[:3]
		}
		d, ok := weekdayNames[key]
		if !ok {
			return nil, ErrInvalidPricingPolicy
		}
		out = append(out, d)
	}
	return out, nil
}
