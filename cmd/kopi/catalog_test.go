package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/common"
)

func TestCatalogCmd_ListsAllDrinks(t *testing.T) {
	out, err := execute(t, catalogCmd())
	require.NoError(t, err)

	for _, name := range []string{"espresso", "bica", "americano", "latte", "caffe_macchiato",
		"cappuccino", "flat_white", "latte_macchiato", "kopi_tubruk", "greek_coffee", "cafe_mocha"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "11 drinks")
}

func TestCatalogCmd_ShowsOneDrink(t *testing.T) {
	out, err := execute(t, catalogCmd(), "flat_white")
	require.NoError(t, err)

	assert.Contains(t, out, "Flat White")
	assert.Contains(t, out, "microfoam")
	assert.Contains(t, out, "australia_new_zealand")
}

func TestCatalogCmd_UnknownDrink(t *testing.T) {
	_, err := execute(t, catalogCmd(), "chai")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "unknown coffee")
}
