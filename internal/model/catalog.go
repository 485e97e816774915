package model

// Catalog is the fixed set of named coffee records. It is loaded once and
// never mutated, so it is safe for unrestricted concurrent reads.
type Catalog struct {
	byName  map[string]CoffeeRecord
	records []CoffeeRecord
}

// NewCatalog builds a catalog from the given records. Later duplicates of a
// name are ignored; names are unique by construction in the default data.
func NewCatalog(records []CoffeeRecord) *Catalog {
	byName := make(map[string]CoffeeRecord, len(records))
	kept := make([]CoffeeRecord, 0, len(records))
	for _, r := range records {
		if _, exists := byName[r.Name]; exists {
			continue
		}
		byName[r.Name] = r
		kept = append(kept, r)
	}
	return &Catalog{byName: byName, records: kept}
}

// DefaultCatalog returns the canonical 11-beverage catalog. The graph layer
// seeds Neo4j from these same records, so the classifier and the graph share
// one ground truth.
func DefaultCatalog() *Catalog {
	return NewCatalog([]CoffeeRecord{
		{
			Name:        "espresso",
			Description: "Concentrated shot brewed by forcing hot water through finely ground beans",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkNone,
				Additive:    AdditiveHotWater,
				Preparation: PreparationPressure,
				Serving:     ServingSmallCup,
				Origin:      OriginItaly,
			},
			VolumeML:      30,
			CaffeineLevel: CaffeineHigh,
		},
		{
			Name:        "bica",
			Description: "Portuguese espresso, slightly longer and smoother than the Italian shot",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkNone,
				Additive:    AdditiveHotWater,
				Preparation: PreparationPressure,
				Serving:     ServingDemitasse,
				Origin:      OriginPortugal,
			},
			VolumeML:      40,
			CaffeineLevel: CaffeineHigh,
		},
		{
			Name:        "americano",
			Description: "Espresso diluted with hot water to a longer, milder drink",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkNone,
				Additive:    AdditiveHotWater,
				Preparation: PreparationDiluted,
				Serving:     ServingLargeCup,
				Origin:      OriginItaly,
			},
			VolumeML:      150,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "latte",
			Description: "Espresso with a generous amount of steamed milk",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkSteamed,
				Additive:    AdditiveNone,
				Preparation: PreparationPressure,
				Serving:     ServingTallGlass,
				Origin:      OriginItaly,
			},
			VolumeML:      240,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "caffe_macchiato",
			Description: "Espresso marked with a small dollop of foamed milk",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkFoamed,
				Additive:    AdditiveNone,
				Preparation: PreparationPressure,
				Serving:     ServingSmallCup,
				Origin:      OriginItaly,
			},
			VolumeML:      60,
			CaffeineLevel: CaffeineHigh,
		},
		{
			Name:        "cappuccino",
			Description: "Equal parts espresso, steamed milk, and milk foam",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkSteamedAndFoamed,
				Additive:    AdditiveNone,
				Preparation: PreparationPressure,
				Serving:     ServingLargeCup,
				Origin:      OriginItaly,
			},
			VolumeML:      180,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "flat_white",
			Description: "Espresso under a thin layer of velvety microfoam",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkMicrofoam,
				Additive:    AdditiveNone,
				Preparation: PreparationPressure,
				Serving:     ServingCup,
				Origin:      OriginAustraliaNewZealand,
			},
			VolumeML:      160,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "latte_macchiato",
			Description: "Steamed milk stained with espresso, built in layers",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkSteamed,
				Additive:    AdditiveNone,
				Preparation: PreparationCombined,
				Serving:     ServingTallGlass,
				Origin:      OriginItaly,
			},
			VolumeML:      250,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "kopi_tubruk",
			Description: "Indonesian coffee boiled together with sugar, grounds and all",
			Attributes: Attributes{
				Base:        BaseBrewedCoffee,
				Milk:        MilkNone,
				Additive:    AdditiveSugar,
				Preparation: PreparationBoiled,
				Serving:     ServingCup,
				Origin:      OriginIndonesia,
			},
			VolumeML:      200,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "greek_coffee",
			Description: "Finely ground coffee boiled in a briki and served unfiltered",
			Attributes: Attributes{
				Base:        BaseBrewedCoffee,
				Milk:        MilkNone,
				Additive:    AdditiveNone,
				Preparation: PreparationBoiled,
				Serving:     ServingUnfiltered,
				Origin:      OriginGreece,
			},
			VolumeML:      100,
			CaffeineLevel: CaffeineMedium,
		},
		{
			Name:        "cafe_mocha",
			Description: "Espresso and steamed milk sweetened with chocolate",
			Attributes: Attributes{
				Base:        BaseEspresso,
				Milk:        MilkSteamed,
				Additive:    AdditiveChocolate,
				Preparation: PreparationCombined,
				Serving:     ServingLargeCup,
				Origin:      OriginItaly,
			},
			VolumeML:      240,
			CaffeineLevel: CaffeineMedium,
		},
	})
}

// Lookup returns the record for name. The second return is false when the
// name is absent; absence is an expected outcome, not an error.
func (c *Catalog) Lookup(name string) (CoffeeRecord, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Records returns the catalog in its fixed order. Callers must not modify
// the returned slice.
func (c *Catalog) Records() []CoffeeRecord {
	return c.records
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
