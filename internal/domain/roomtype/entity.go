package roomtype

import (
	"errors"
	"strings"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("room type name is required")
	ErrInvalidCapacity = errors.New("room type capacity must be at least 1")
	ErrInvalidRate     = errors.New("nightly rate must be between 0 and 10,000,000,000.00")
)

// MaxRateMinor keeps a full year at the top rate well inside int64 after tax.
const MaxRateMinor int64 = 1_000_000_000_000

// Rates are nightly prices before tax.
type Rates struct {
	Weekday money.Money
	Weekend money.Money
}

func NewRates(weekdayMinor, weekendMinor int64) (Rates, error) {
	if weekdayMinor > MaxRateMinor || weekendMinor > MaxRateMinor {
		return Rates{}, ErrInvalidRate
	}
	wd, err := money.New(weekdayMinor)
	if err != nil {
		return Rates{}, ErrInvalidRate
	}
	we, err := money.New(weekendMinor)
	if err != nil {
		return Rates{}, ErrInvalidRate
	}
	return Rates{Weekday: wd, Weekend: we}, nil
}

type RoomType struct {
	id        uuid.UUID
	name      string
	rates     Rates
	capacity  int
	amenities []string
	imageURL  string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoomType(name string, rates Rates, capacity int, amenities []string, imageURL string) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &RoomType{
		id:        uuid.New(),
		name:      name,
		rates:     rates,
		capacity:  capacity,
		amenities: normalizeAmenities(amenities),
		imageURL:  strings.TrimSpace(imageURL),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	rates Rates,
	capacity int,
	amenities []string,
	imageURL string,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:        id,
		name:      name,
		rates:     rates,
		capacity:  capacity,
		amenities: amenities,
		imageURL:  imageURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeRates replaces the nightly rates. Reservations already made keep the
// total they were quoted.
func (rt *RoomType) ChangeRates(weekday, weekend *int64) error {
	rates, err := NewRates(
		patch.Coalesce(weekday, rt.rates.Weekday.Minor()),
		patch.Coalesce(weekend, rt.rates.Weekend.Minor()),
	)
	if err != nil {
		return err
	}
	rt.rates = rates
	return nil
}

func (rt *RoomType) Accommodates(guests int) bool {
	return guests <= rt.capacity
}

func (rt *RoomType) ID() uuid.UUID        { return rt.id }
func (rt *RoomType) Name() string         { return rt.name }
func (rt *RoomType) Rates() Rates         { return rt.rates }
func (rt *RoomType) Capacity() int        { return rt.capacity }
func (rt *RoomType) Amenities() []string  { return rt.amenities }
func (rt *RoomType) ImageURL() string     { return rt.imageURL }
func (rt *RoomType) CreatedAt() time.Time { return rt.createdAt }
func (rt *RoomType) UpdatedAt() time.Time { return rt.updatedAt }

func normalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
