package production

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/purchase"
)

func TestYieldPercent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		want   string
	}{
		{"typical milling run", "1000", "650", "65"},
		{"full conversion", "500", "500", "100"},
		{"rounds to two decimals", "3", "1", "33.33"},
		{"rounds half up", "800", "500", "62.5"},
		{"repeating fraction", "700", "466.69", "66.67"},
		{"zero output", "1000", "0", "0"},
		{"zero input never divides", "0", "650", "0"},
		{"both zero", "0", "0", "0"},
		{"negative input treated as not positive", "-10", "5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YieldPercent(types.Dec(tt.input), types.Dec(tt.output))
			assert.True(t, got.Equal(types.Dec(tt.want)),
				"yield(%s, %s) = %s, want %s", tt.input, tt.output, got, tt.want)
		})
	}
}

func TestYieldPercent_NeverExplodes(t *testing.T) {
	// yield(0, x) and yield(x, 0) are defined as 0 for any x.
	for _, x := range []string{"0", "0.01", "1", "999999.99"} {
		assert.True(t, YieldPercent(decimal.Zero, types.Dec(x)).IsZero(), "yield(0, %s)", x)
		assert.True(t, YieldPercent(types.Dec(x), decimal.Zero).IsZero(), "yield(%s, 0)", x)
	}
}

func TestNewRun_DerivesYield(t *testing.T) {
	r := New(types.NewDate(2025, time.March, 10), purchase.PaddyNadu, types.Dec("1000"), types.Dec("650"))

	assert.NotNil(t, r.YieldPercent)
	assert.True(t, r.YieldPercent.Equal(types.Dec("65")))
	assert.False(t, r.ID.String() == "")
}

func TestRun_YieldRecomputesWhenStoredFieldAbsent(t *testing.T) {
	r := Run{
		InputPaddy: types.Dec("400"),
		RiceOutput: types.Dec("260"),
	}
	// Stored rows may lack the derived column.
	r.YieldPercent = nil

	assert.True(t, r.Yield().Equal(types.Dec("65")))
}

func TestRun_YieldPrefersStoredValue(t *testing.T) {
	stored := types.Dec("64.5")
	r := Run{
		InputPaddy:   types.Dec("400"),
		RiceOutput:   types.Dec("260"),
		YieldPercent: &stored,
	}

	assert.True(t, r.Yield().Equal(stored))
}

func TestRun_Validate(t *testing.T) {
	valid := New(types.NewDate(2025, time.March, 10), purchase.PaddySamba, types.Dec("100"), types.Dec("60"))
	assert.NoError(t, valid.Validate(t.Context()))

	bad := New(types.NewDate(2025, time.March, 10), "Wheat", types.Dec("100"), types.Dec("60"))
	assert.Error(t, bad.Validate(t.Context()))

	negative := New(types.NewDate(2025, time.March, 10), purchase.PaddySamba, types.Dec("-1"), types.Dec("60"))
	assert.Error(t, negative.Validate(t.Context()))
}
