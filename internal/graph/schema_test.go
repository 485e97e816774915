package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/model"
)

func TestSeedStatements_Shape(t *testing.T) {
	catalog := model.DefaultCatalog()
	statements := SeedStatements(catalog)

	var coffeeNodes, relationships, axisNodes int
	for _, s := range statements {
		switch {
		case strings.HasPrefix(s.Cypher, "MERGE (c:Coffee"):
			coffeeNodes++
		case strings.HasPrefix(s.Cypher, "MATCH (c:Coffee"):
			relationships++
		case strings.HasPrefix(s.Cypher, "MERGE (n:"):
			axisNodes++
		default:
			t.Fatalf("unexpected statement shape: %s", s.Cypher)
		}
	}

	assert.Equal(t, catalog.Len(), coffeeNodes)
	assert.Equal(t, catalog.Len()*6, relationships)
	// Distinct axis values actually used by the catalog.
	assert.Positive(t, axisNodes)
	assert.Equal(t, coffeeNodes+relationships+axisNodes, len(statements))
}

func TestSeedStatements_AxisNodesDeduplicated(t *testing.T) {
	statements := SeedStatements(model.DefaultCatalog())

	seen := make(map[string]bool)
	for _, s := range statements {
		if !strings.HasPrefix(s.Cypher, "MERGE (n:") {
			continue
		}
		key := s.Cypher + "|" + s.Params["code"].(string)
		assert.False(t, seen[key], "duplicate axis node statement: %s", key)
		seen[key] = true
	}

	// Two bases are in use: espresso and brewed_coffee.
	baseCount := 0
	for key := range seen {
		if strings.Contains(key, ":Base ") {
			baseCount++
		}
	}
	assert.Equal(t, 2, baseCount)
}

func TestSeedStatements_CoffeeProperties(t *testing.T) {
	statements := SeedStatements(model.DefaultCatalog())

	var espresso *Statement
	for i := range statements {
		if strings.HasPrefix(statements[i].Cypher, "MERGE (c:Coffee") &&
			statements[i].Params["code"] == "espresso" {
			espresso = &statements[i]
			break
		}
	}
	require.NotNil(t, espresso)

	assert.Equal(t, "Espresso", espresso.Params["name"])
	assert.Equal(t, 30, espresso.Params["volume_ml"])
	assert.Equal(t, "high", espresso.Params["caffeine_level"])
	assert.NotEmpty(t, espresso.Params["description"])
}

func TestSeedStatements_RelationshipTypes(t *testing.T) {
	statements := SeedStatements(model.DefaultCatalog())

	wantRels := []string{
		RelHasBase, RelHasMilk, RelHasAdditive,
		RelUsesPreparation, RelServedIn, RelOriginatesFrom,
	}

	joined := make([]string, 0, len(statements))
	for _, s := range statements {
		joined = append(joined, s.Cypher)
	}
	all := strings.Join(joined, "\n")

	for _, rel := range wantRels {
		assert.Contains(t, all, "[:"+rel+"]")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"espresso", "Espresso"},
		{"steamed_and_foamed", "Steamed And Foamed"},
		{"australia_new_zealand", "Australia New Zealand"},
		{"kopi_tubruk", "Kopi Tubruk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, displayName(tt.in))
	}
}

func TestSchemaDescription(t *testing.T) {
	description := SchemaDescription(model.DefaultCatalog())

	assert.Contains(t, description, "HAS_BASE")
	assert.Contains(t, description, "ORIGINATES_FROM")
	assert.Contains(t, description, "PreparationMethod")
	assert.Contains(t, description, "Available Coffees (11 total)")
	assert.Contains(t, description, "latte_macchiato")
	assert.Contains(t, description, "caffeine_level")
}
