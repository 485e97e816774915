// Package graph mirrors the coffee catalog into a Neo4j knowledge graph and
// runs Cypher queries against it.
package graph

import (
	"fmt"
	"strings"

	"github.com/kopigraph/kopigraph/internal/model"
)

// Node labels.
const (
	LabelCoffee            = "Coffee"
	LabelBase              = "Base"
	LabelMilkType          = "MilkType"
	LabelAdditive          = "Additive"
	LabelPreparationMethod = "PreparationMethod"
	LabelServingStyle      = "ServingStyle"
	LabelOrigin            = "Origin"
)

// Relationship types.
const (
	RelHasBase         = "HAS_BASE"
	RelHasMilk         = "HAS_MILK"
	RelHasAdditive     = "HAS_ADDITIVE"
	RelUsesPreparation = "USES_PREPARATION"
	RelServedIn        = "SERVED_IN"
	RelOriginatesFrom  = "ORIGINATES_FROM"
)

// Statement is one parameterized Cypher statement.
type Statement struct {
	Params map[string]any
	Cypher string
}

// displayName turns an enum code like "steamed_and_foamed" into a human
// readable node name.
func displayName(code string) string {
	words := strings.Split(code, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// axis binds one attribute axis to its node label and relationship type.
type axis struct {
	value func(model.Attributes) string
	label string
	rel   string
}

func axes() []axis {
	return []axis{
		{label: LabelBase, rel: RelHasBase, value: func(a model.Attributes) string { return string(a.Base) }},
		{label: LabelMilkType, rel: RelHasMilk, value: func(a model.Attributes) string { return string(a.Milk) }},
		{label: LabelAdditive, rel: RelHasAdditive, value: func(a model.Attributes) string { return string(a.Additive) }},
		{label: LabelPreparationMethod, rel: RelUsesPreparation, value: func(a model.Attributes) string { return string(a.Preparation) }},
		{label: LabelServingStyle, rel: RelServedIn, value: func(a model.Attributes) string { return string(a.Serving) }},
		{label: LabelOrigin, rel: RelOriginatesFrom, value: func(a model.Attributes) string { return string(a.Origin) }},
	}
}

// SeedStatements generates the full MERGE sequence that mirrors the catalog
// into the graph: one node per distinct axis value, one node per coffee, and
// six relationships per coffee. The statements are idempotent.
func SeedStatements(catalog *model.Catalog) []Statement {
	var statements []Statement

	// Axis value nodes, deduplicated, in catalog order.
	for _, ax := range axes() {
		seen := make(map[string]bool)
		for _, record := range catalog.Records() {
			code := ax.value(record.Attributes)
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			statements = append(statements, Statement{
				Cypher: fmt.Sprintf("MERGE (n:%s {code: $code}) SET n.name = $name", ax.label),
				Params: map[string]any{"code": code, "name": displayName(code)},
			})
		}
	}

	// Coffee nodes with their properties.
	for _, record := range catalog.Records() {
		statements = append(statements, Statement{
			Cypher: "MERGE (c:Coffee {code: $code}) " +
				"SET c.name = $name, c.description = $description, " +
				"c.volume_ml = $volume_ml, c.caffeine_level = $caffeine_level",
			Params: map[string]any{
				"code":           record.Name,
				"name":           displayName(record.Name),
				"description":    record.Description,
				"volume_ml":      record.VolumeML,
				"caffeine_level": string(record.CaffeineLevel),
			},
		})
	}

	// Relationships from each coffee to its six axis nodes.
	for _, record := range catalog.Records() {
		for _, ax := range axes() {
			statements = append(statements, Statement{
				Cypher: fmt.Sprintf(
					"MATCH (c:Coffee {code: $coffee}), (n:%s {code: $code}) MERGE (c)-[:%s]->(n)",
					ax.label, ax.rel),
				Params: map[string]any{"coffee": record.Name, "code": ax.value(record.Attributes)},
			})
		}
	}

	return statements
}

// SchemaDescription returns the graph schema in the form the translation
// prompt embeds. It enumerates labels, relationships, properties, and the
// catalog names so the model grounds its Cypher in real identifiers.
func SchemaDescription(catalog *model.Catalog) string {
	names := make([]string, 0, catalog.Len())
	for _, record := range catalog.Records() {
		names = append(names, record.Name)
	}

	var b strings.Builder
	b.WriteString("Coffee Knowledge Graph Schema:\n\n")
	b.WriteString("Node Types:\n")
	b.WriteString("- Coffee: Individual coffee beverages\n")
	b.WriteString("- Base: Coffee base type (espresso, brewed_coffee)\n")
	b.WriteString("- MilkType: Milk treatment (none, steamed_milk, foamed_milk, steamed_and_foamed, microfoam, cold_milk)\n")
	b.WriteString("- Additive: Extra ingredients (none, hot_water, sugar, chocolate)\n")
	b.WriteString("- PreparationMethod: Brewing method (pressure, boiled, diluted, combined)\n")
	b.WriteString("- ServingStyle: Serving vessel (small_cup, tall_glass, large_cup, demitasse, unfiltered, cup)\n")
	b.WriteString("- Origin: Country of origin (italy, portugal, indonesia, greece, australia_new_zealand)\n\n")
	b.WriteString("Relationship Types:\n")
	b.WriteString("- HAS_BASE: Coffee -> Base\n")
	b.WriteString("- HAS_MILK: Coffee -> MilkType\n")
	b.WriteString("- HAS_ADDITIVE: Coffee -> Additive\n")
	b.WriteString("- USES_PREPARATION: Coffee -> PreparationMethod\n")
	b.WriteString("- SERVED_IN: Coffee -> ServingStyle\n")
	b.WriteString("- ORIGINATES_FROM: Coffee -> Origin\n\n")
	b.WriteString("Coffee Properties:\n")
	b.WriteString("- code (string): stable identifier, used for filtering\n")
	b.WriteString("- name (string): display name, used in results\n")
	b.WriteString("- description (string)\n")
	b.WriteString("- volume_ml (integer)\n")
	b.WriteString("- caffeine_level (string): high, medium, or low\n\n")
	fmt.Fprintf(&b, "Available Coffees (%d total):\n%s\n", catalog.Len(), strings.Join(names, ", "))

	return b.String()
}
