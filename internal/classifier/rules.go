package classifier

import "github.com/kopigraph/kopigraph/internal/model"

// DefaultRules returns the canonical ordered rule list. Order is load-bearing
// and must not change: the latte rule leaves preparation unconstrained, so a
// latte_macchiato tuple (preparation=combined) also satisfies it and resolves
// to "latte" before its own rule is reached. That shadowing is long-standing
// behavior and is pinned by tests rather than reordered away.
func DefaultRules() []Rule {
	return []Rule{
		{
			Label: "espresso",
			Constraints: model.Attributes{
				Base:        model.BaseEspresso,
				Milk:        model.MilkNone,
				Additive:    model.AdditiveHotWater,
				Preparation: model.PreparationPressure,
				Serving:     model.ServingSmallCup,
				Origin:      model.OriginItaly,
			},
		},
		{
			Label: "bica",
			Constraints: model.Attributes{
				Base:        model.BaseEspresso,
				Milk:        model.MilkNone,
				Additive:    model.AdditiveHotWater,
				Preparation: model.PreparationPressure,
				Serving:     model.ServingDemitasse,
				Origin:      model.OriginPortugal,
			},
		},
		{
			Label: "americano",
			Constraints: model.Attributes{
				Base:        model.BaseEspresso,
				Additive:    model.AdditiveHotWater,
				Preparation: model.PreparationDiluted,
			},
		},
		{
			Label: "latte",
			Constraints: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkSteamed,
				Additive: model.AdditiveNone,
				Serving:  model.ServingTallGlass,
				Origin:   model.OriginItaly,
			},
		},
		{
			Label: "caffe_macchiato",
			Constraints: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkFoamed,
				Additive: model.AdditiveNone,
				Serving:  model.ServingSmallCup,
				Origin:   model.OriginItaly,
			},
		},
		{
			Label: "cappuccino",
			Constraints: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkSteamedAndFoamed,
				Additive: model.AdditiveNone,
			},
		},
		{
			Label: "flat_white",
			Constraints: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkMicrofoam,
				Additive: model.AdditiveNone,
			},
		},
		{
			// Shadowed by the latte rule for any tuple with additive=none,
			// including the catalog's own latte_macchiato record.
			Label: "latte_macchiato",
			Constraints: model.Attributes{
				Base:        model.BaseEspresso,
				Milk:        model.MilkSteamed,
				Preparation: model.PreparationCombined,
				Serving:     model.ServingTallGlass,
				Origin:      model.OriginItaly,
			},
		},
		{
			Label: "kopi_tubruk",
			Constraints: model.Attributes{
				Base:        model.BaseBrewedCoffee,
				Additive:    model.AdditiveSugar,
				Preparation: model.PreparationBoiled,
				Origin:      model.OriginIndonesia,
			},
		},
		{
			Label: "greek_coffee",
			Constraints: model.Attributes{
				Base:        model.BaseBrewedCoffee,
				Preparation: model.PreparationBoiled,
				Serving:     model.ServingUnfiltered,
				Origin:      model.OriginGreece,
			},
		},
		{
			Label: "cafe_mocha",
			Constraints: model.Attributes{
				Base:     model.BaseEspresso,
				Milk:     model.MilkSteamed,
				Additive: model.AdditiveChocolate,
			},
		},
		{
			// Terminal wildcard: keeps Classify total.
			Label: LabelUnknown,
		},
	}
}
