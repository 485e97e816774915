package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/model"
)

func TestClassify_CatalogRecordsResolveToThemselves(t *testing.T) {
	c := NewDefault()

	// latte_macchiato's own tuple satisfies the earlier, weaker latte rule
	// (unconstrained on preparation), so it resolves to "latte". That is
	// pinned here deliberately; see DefaultRules.
	expected := map[string]string{
		"espresso":        "espresso",
		"bica":            "bica",
		"americano":       "americano",
		"latte":           "latte",
		"caffe_macchiato": "caffe_macchiato",
		"cappuccino":      "cappuccino",
		"flat_white":      "flat_white",
		"latte_macchiato": "latte",
		"kopi_tubruk":     "kopi_tubruk",
		"greek_coffee":    "greek_coffee",
		"cafe_mocha":      "cafe_mocha",
	}

	records := c.Catalog().Records()
	require.Len(t, records, 11)

	for _, record := range records {
		t.Run(record.Name, func(t *testing.T) {
			want, ok := expected[record.Name]
			require.True(t, ok, "catalog record without expectation: %s", record.Name)
			assert.Equal(t, want, c.Classify(record.Attributes))
		})
	}
}

func TestClassify_LatteMacchiatoTupleShadowedByLatte(t *testing.T) {
	c := NewDefault()

	got := c.Classify(model.Attributes{
		Base:        model.BaseEspresso,
		Milk:        model.MilkSteamed,
		Additive:    model.AdditiveNone,
		Preparation: model.PreparationCombined,
		Serving:     model.ServingTallGlass,
		Origin:      model.OriginItaly,
	})
	assert.Equal(t, "latte", got)
}

func TestClassify_Unknown(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name  string
		attrs model.Attributes
	}{
		{
			name: "no rule matches",
			attrs: model.Attributes{
				Base:        model.BaseBrewedCoffee,
				Milk:        model.MilkCold,
				Additive:    model.AdditiveSugar,
				Preparation: model.PreparationDiluted,
				Serving:     model.ServingCup,
				Origin:      model.OriginItaly,
			},
		},
		{
			name:  "zero value tuple",
			attrs: model.Attributes{},
		},
		{
			// Invalid enum members are not validated; they fall through.
			name: "values outside the enums",
			attrs: model.Attributes{
				Base:        "tea",
				Milk:        "oat_milk",
				Additive:    "cinnamon",
				Preparation: "microwaved",
				Serving:     "thermos",
				Origin:      "mars",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, LabelUnknown, c.Classify(tt.attrs))
		})
	}
}

func TestClassify_PartialMatchRules(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name  string
		want  string
		attrs model.Attributes
	}{
		{
			name: "americano ignores serving and origin",
			want: "americano",
			attrs: model.Attributes{
				Base:        model.BaseEspresso,
				Milk:        model.MilkNone,
				Additive:    model.AdditiveHotWater,
				Preparation: model.PreparationDiluted,
				Serving:     model.ServingTallGlass,
				Origin:      model.OriginGreece,
			},
		},
		{
			name: "cappuccino ignores preparation serving origin",
			want: "cappuccino",
			attrs: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkSteamedAndFoamed,
				Additive: model.AdditiveNone,
			},
		},
		{
			name: "flat white anywhere in the world",
			want: "flat_white",
			attrs: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkMicrofoam,
				Additive: model.AdditiveNone,
				Origin:   model.OriginPortugal,
			},
		},
		{
			name: "latte macchiato reachable when additive is not none",
			want: "latte_macchiato",
			attrs: model.Attributes{
				Base:        model.BaseEspresso,
				Milk:        model.MilkSteamed,
				Additive:    model.AdditiveHotWater,
				Preparation: model.PreparationCombined,
				Serving:     model.ServingTallGlass,
				Origin:      model.OriginItaly,
			},
		},
		{
			name: "mocha in any cup",
			want: "cafe_mocha",
			attrs: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkSteamed,
				Additive: model.AdditiveChocolate,
				Serving:  model.ServingCup,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.attrs))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewDefault()
	attrs := model.Attributes{
		Base:        model.BaseBrewedCoffee,
		Milk:        model.MilkNone,
		Additive:    model.AdditiveSugar,
		Preparation: model.PreparationBoiled,
		Serving:     model.ServingCup,
		Origin:      model.OriginIndonesia,
	}

	first := c.Classify(attrs)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.Classify(attrs))
	}
	assert.Equal(t, "kopi_tubruk", first)
}

func TestLookup(t *testing.T) {
	c := NewDefault()

	record, ok := c.Lookup("espresso")
	require.True(t, ok)
	assert.Equal(t, model.BaseEspresso, record.Attributes.Base)
	assert.Equal(t, model.CaffeineHigh, record.CaffeineLevel)

	_, ok = c.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestDerivedPredicates(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"has_milk espresso", c.HasMilk("espresso"), false},
		{"has_milk latte", c.HasMilk("latte"), true},
		{"is_boiled greek_coffee", c.IsBoiled("greek_coffee"), true},
		{"is_boiled espresso", c.IsBoiled("espresso"), false},
		{"origin bica portugal", c.IsFromOrigin("bica", model.OriginPortugal), true},
		{"origin bica italy", c.IsFromOrigin("bica", model.OriginItaly), false},
		{"espresso base cappuccino", c.HasEspressoBase("cappuccino"), true},
		{"espresso base kopi_tubruk", c.HasEspressoBase("kopi_tubruk"), false},
		{"unknown name has_milk", c.HasMilk("nonexistent"), false},
		{"unknown name is_boiled", c.IsBoiled("nonexistent"), false},
		{"unknown name origin", c.IsFromOrigin("nonexistent", model.OriginItaly), false},
		{"unknown name espresso base", c.HasEspressoBase("nonexistent"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestClassify_EmptyRuleList(t *testing.T) {
	c := New(model.DefaultCatalog(), nil)
	assert.Equal(t, LabelUnknown, c.Classify(model.Attributes{Base: model.BaseEspresso}))
}
