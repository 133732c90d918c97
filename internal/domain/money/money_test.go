//go:build unit

package money_test

import (
	"testing"

	"hotel-reservation/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		minor   int64
		wantErr bool
	}{
		{in: "12345.50", minor: 1_234_550},
		{in: "12345.5", minor: 1_234_550},
		{in: "12345", minor: 1_234_500},
		{in: " 0.07 ", minor: 7},
		{in: "0", minor: 0},
		{in: "1.234", wantErr: true},
		{in: "-1.00", wantErr: true},
		{in: "1,000.00", wantErr: true},
		{in: ".50", wantErr: true},
		{in: "12.", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := money.ParseDecimal(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minor, m.Minor())
		})
	}
}

func TestMoney_Decimal(t *testing.T) {
	assert.Equal(t, "12345.50", money.FromMinor(1_234_550).Decimal())
	assert.Equal(t, "0.05", money.FromMinor(5).Decimal())
	assert.Equal(t, "-1.25", money.FromMinor(-125).String())
}

func TestMoney_WithBasisPoints(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		bp    int64
		want  int64
	}{
		{name: "no tax", minor: 1000, bp: 0, want: 1000},
		{name: "ten percent", minor: 3_000_000, bp: 1000, want: 3_300_000},
		{name: "rounds half up", minor: 1, bp: 5000, want: 2},
		{name: "rounds down below half", minor: 101, bp: 2000, want: 121},
		{name: "rounds up above half", minor: 105, bp: 250, want: 108},
		{name: "large amount does not overflow", minor: 900_000_000_000_000_000, bp: 250, want: 922_500_000_000_000_000},
		{name: "large amount with remainder", minor: 800_000_000_000_001_234, bp: 1000, want: 880_000_000_000_001_357},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FromMinor(tt.minor).WithBasisPoints(tt.bp).Minor())
		})
	}
}

func TestNew(t *testing.T) {
	_, err := money.New(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)

	m, err := money.New(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())
	assert.True(t, money.FromMinor(10).Add(money.FromMinor(5)).GreaterThanOrEqual(money.FromMinor(15)))
}
