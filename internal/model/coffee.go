// Package model defines the core domain models used throughout the application.
package model

// Base is the brewing base a coffee is built on.
type Base string

// Base constants.
const (
	BaseEspresso     Base = "espresso"
	BaseBrewedCoffee Base = "brewed_coffee"
)

// MilkType describes the milk treatment used in a coffee.
type MilkType string

// MilkType constants.
const (
	MilkNone             MilkType = "none"
	MilkSteamed          MilkType = "steamed_milk"
	MilkFoamed           MilkType = "foamed_milk"
	MilkSteamedAndFoamed MilkType = "steamed_and_foamed"
	MilkMicrofoam        MilkType = "microfoam"
	MilkCold             MilkType = "cold_milk"
)

// Additive is an extra ingredient added to the drink.
type Additive string

// Additive constants.
const (
	AdditiveNone      Additive = "none"
	AdditiveHotWater  Additive = "hot_water"
	AdditiveSugar     Additive = "sugar"
	AdditiveChocolate Additive = "chocolate"
)

// Preparation is the brewing method.
type Preparation string

// Preparation constants.
const (
	PreparationPressure Preparation = "pressure"
	PreparationBoiled   Preparation = "boiled"
	PreparationDiluted  Preparation = "diluted"
	PreparationCombined Preparation = "combined"
)

// Serving is the vessel or style a coffee is served in.
type Serving string

// Serving constants.
const (
	ServingSmallCup   Serving = "small_cup"
	ServingTallGlass  Serving = "tall_glass"
	ServingLargeCup   Serving = "large_cup"
	ServingDemitasse  Serving = "demitasse"
	ServingUnfiltered Serving = "unfiltered"
	ServingCup        Serving = "cup"
)

// Origin is the country or region a coffee style comes from.
type Origin string

// Origin constants.
const (
	OriginItaly               Origin = "italy"
	OriginPortugal            Origin = "portugal"
	OriginIndonesia           Origin = "indonesia"
	OriginGreece              Origin = "greece"
	OriginAustraliaNewZealand Origin = "australia_new_zealand"
)

// CaffeineLevel is a rough caffeine strength bucket.
type CaffeineLevel string

// CaffeineLevel constants.
const (
	CaffeineHigh   CaffeineLevel = "high"
	CaffeineMedium CaffeineLevel = "medium"
	CaffeineLow    CaffeineLevel = "low"
)

// Attributes is the six-axis categorical description of a coffee. It is
// the input shape of the classifier; a zero value on any axis acts as an
// unconstrained (and unmatchable) field.
type Attributes struct {
	Base        Base
	Milk        MilkType
	Additive    Additive
	Preparation Preparation
	Serving     Serving
	Origin      Origin
}

// CoffeeRecord is one entry in the fixed beverage catalog. Records are
// immutable reference data; nothing mutates a record after process start.
type CoffeeRecord struct {
	Name          string
	Description   string
	Attributes    Attributes
	VolumeML      int
	CaffeineLevel CaffeineLevel
}
