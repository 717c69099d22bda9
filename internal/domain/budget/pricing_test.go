package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"orcado/internal/core/id"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name                  string
		length, height, width string
		want                  string
	}{
		{"area from length and height", "1.5", "2", "0", "3"},
		{"volume when all three set", "2", "3", "0.5", "3"},
		{"zero length yields zero", "0", "2", "0", "0"},
		{"zero height yields zero", "2", "0", "0", "0"},
		{"all zero yields zero", "0", "0", "0", "0"},
		{"width alone is ignored", "0", "0", "5", "0"},
		{"fractional area", "0.5", "0.5", "0", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDimensions(d(tt.length), d(tt.height), d(tt.width))
			if !got.Equal(d(tt.want)) {
				t.Errorf("ResolveDimensions(%s, %s, %s) = %s, want %s",
					tt.length, tt.height, tt.width, got, tt.want)
			}
		})
	}
}

func TestPriceLine_ZeroUnitPrice(t *testing.T) {
	// An unpriced item contributes nothing regardless of other fields.
	for _, price := range []string{"0", "-10"} {
		lp := PriceLine(d(price), d("5"), d("3"), d("50"), d("25"))
		assert.True(t, lp.Subtotal.IsZero(), "subtotal for unit price %s", price)
		assert.True(t, lp.FinalPrice.IsZero(), "final price for unit price %s", price)
	}
}

func TestPriceLine_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    string
		quantity     string
		areaOrVolume string
		printPct     string
		discountPct  string
		wantSubtotal string
		wantFinal    string
	}{
		{
			// quantity=2, 1.5m x 2m, price 100
			name:      "dimensional line, no adjustments",
			unitPrice: "100", quantity: "2", areaOrVolume: "3",
			printPct: "0", discountPct: "0",
			wantSubtotal: "600", wantFinal: "600",
		},
		{
			// print percentage replaces the subtotal with its billed share
			name:      "print percentage halves the billed amount",
			unitPrice: "100", quantity: "2", areaOrVolume: "3",
			printPct: "50", discountPct: "0",
			wantSubtotal: "600", wantFinal: "300",
		},
		{
			name:      "print percentage then item discount",
			unitPrice: "100", quantity: "2", areaOrVolume: "3",
			printPct: "50", discountPct: "10",
			wantSubtotal: "600", wantFinal: "270",
		},
		{
			name:      "non-dimensional service line",
			unitPrice: "50", quantity: "3", areaOrVolume: "0",
			printPct: "0", discountPct: "0",
			wantSubtotal: "150", wantFinal: "150",
		},
		{
			name:      "discount only",
			unitPrice: "10", quantity: "1", areaOrVolume: "0",
			printPct: "0", discountPct: "25",
			wantSubtotal: "10", wantFinal: "7.5",
		},
		{
			name:      "full print percentage keeps subtotal",
			unitPrice: "10", quantity: "2", areaOrVolume: "0",
			printPct: "100", discountPct: "0",
			wantSubtotal: "20", wantFinal: "20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp := PriceLine(d(tt.unitPrice), d(tt.quantity), d(tt.areaOrVolume), d(tt.printPct), d(tt.discountPct))
			if !lp.Subtotal.Equal(d(tt.wantSubtotal)) {
				t.Errorf("subtotal = %s, want %s", lp.Subtotal, tt.wantSubtotal)
			}
			if !lp.FinalPrice.Equal(d(tt.wantFinal)) {
				t.Errorf("final price = %s, want %s", lp.FinalPrice, tt.wantFinal)
			}
		})
	}
}

func TestPriceLine_Idempotent(t *testing.T) {
	// Same inputs, same outputs: the engine holds no hidden state.
	first := PriceLine(d("123.45"), d("2.5"), d("1.2"), d("80"), d("5"))
	second := PriceLine(d("123.45"), d("2.5"), d("1.2"), d("80"), d("5"))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.FinalPrice.Equal(second.FinalPrice))
}

func TestPriceLine_DiscountMonotonicity(t *testing.T) {
	// Increasing the item discount never increases the final price.
	prev := PriceLine(d("100"), d("2"), d("3"), d("0"), d("0")).FinalPrice
	for _, pct := range []string{"5", "10", "25", "50", "75", "100"} {
		cur := PriceLine(d("100"), d("2"), d("3"), d("0"), d(pct)).FinalPrice
		if cur.GreaterThan(prev) {
			t.Fatalf("final price rose from %s to %s at discount %s%%", prev, cur, pct)
		}
		prev = cur
	}
}

func TestPriceLine_PrintPercentageReduces(t *testing.T) {
	// Any print percentage below 100 strictly reduces the billed amount
	// relative to the no-print baseline.
	baseline := PriceLine(d("100"), d("2"), d("3"), d("0"), d("0")).FinalPrice
	for _, pct := range []string{"1", "25", "50", "99"} {
		got := PriceLine(d("100"), d("2"), d("3"), d(pct), d("0")).FinalPrice
		if !got.LessThan(baseline) {
			t.Errorf("print %s%% gave %s, expected less than %s", pct, got, baseline)
		}
	}
}

func TestPriceLine_NeverExceedsSubtotal(t *testing.T) {
	cases := [][5]string{
		{"100", "2", "3", "0", "0"},
		{"100", "2", "3", "100", "100"},
		{"37.90", "1.5", "0", "60", "15"},
		{"0.01", "1000", "2.5", "99", "1"},
	}
	for _, c := range cases {
		lp := PriceLine(d(c[0]), d(c[1]), d(c[2]), d(c[3]), d(c[4]))
		if lp.FinalPrice.GreaterThan(lp.Subtotal) {
			t.Errorf("final %s exceeds subtotal %s for %v", lp.FinalPrice, lp.Subtotal, c)
		}
		if lp.FinalPrice.IsNegative() {
			t.Errorf("negative final price %s for %v", lp.FinalPrice, c)
		}
	}
}

func TestComputeTotals(t *testing.T) {
	line := func(final string) Line {
		return Line{ItemID: id.New(), FinalPrice: d(final), Subtotal: d(final)}
	}

	t.Run("two lines with global discount", func(t *testing.T) {
		totals := ComputeTotals([]Line{line("270"), line("100")}, d("10"))
		assert.True(t, totals.Subtotal.Equal(d("370")), "subtotal %s", totals.Subtotal)
		assert.True(t, totals.DiscountAmount.Equal(d("37")), "discount %s", totals.DiscountAmount)
		assert.True(t, totals.Total.Equal(d("333")), "total %s", totals.Total)
	})

	t.Run("empty line list", func(t *testing.T) {
		totals := ComputeTotals(nil, d("10"))
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("unselected lines contribute nothing", func(t *testing.T) {
		totals := ComputeTotals([]Line{line("100"), {Quantity: d("1")}}, d("0"))
		assert.True(t, totals.Subtotal.Equal(d("100")))
	})

	t.Run("falls back to subtotal when final price never computed", func(t *testing.T) {
		l := Line{ItemID: id.New(), Subtotal: d("80")}
		totals := ComputeTotals([]Line{l}, d("0"))
		assert.True(t, totals.Subtotal.Equal(d("80")))
	})

	t.Run("no fallback when adjustments zeroed the price", func(t *testing.T) {
		// 100% item discount legitimately zeroes the final price.
		l := Line{ItemID: id.New(), Subtotal: d("80"), ItemDiscountPercentage: d("100")}
		totals := ComputeTotals([]Line{l}, d("0"))
		assert.True(t, totals.Subtotal.IsZero(), "got %s", totals.Subtotal)
	})

	t.Run("total stays within bounds", func(t *testing.T) {
		lines := []Line{line("10.50"), line("99.99"), line("0")}
		for _, pct := range []string{"0", "15", "50", "100"} {
			totals := ComputeTotals(lines, d(pct))
			if totals.Total.IsNegative() || totals.Total.GreaterThan(totals.Subtotal) {
				t.Errorf("discount %s%%: total %s out of [0, %s]", pct, totals.Total, totals.Subtotal)
			}
		}
	})
}

func TestCatalogResolve(t *testing.T) {
	entryID := id.New()
	catalog := NewCatalog([]CatalogEntry{
		{ID: entryID, Code: "LON-01", Name: "Lona frontlight", Unit: "m²", UnitPrice: d("45.90")},
	})

	t.Run("known item", func(t *testing.T) {
		entry, ok := catalog.Resolve(entryID)
		assert.True(t, ok)
		assert.Equal(t, "Lona frontlight", entry.Name)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, ok := catalog.Resolve(id.New())
		assert.False(t, ok)
	})

	t.Run("nil item id", func(t *testing.T) {
		_, ok := catalog.Resolve(id.Nil())
		assert.False(t, ok)
	})
}

func TestLineApplySelection(t *testing.T) {
	entryID := id.New()
	catalog := NewCatalog([]CatalogEntry{
		{ID: entryID, Name: "Adesivo recorte", UnitPrice: d("12")},
	})

	t.Run("match overwrites snapshot", func(t *testing.T) {
		l := NewLine()
		l.ItemID = entryID
		l.ApplySelection(catalog)
		assert.Equal(t, "Adesivo recorte", l.ItemName)
		assert.True(t, l.UnitPrice.Equal(d("12")))
	})

	t.Run("miss leaves prior values untouched", func(t *testing.T) {
		l := NewLine()
		l.ItemID = id.New()
		l.ItemName = "previous"
		l.UnitPrice = d("7")
		l.ApplySelection(catalog)
		assert.Equal(t, "previous", l.ItemName)
		assert.True(t, l.UnitPrice.Equal(d("7")))
	})
}
