package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	velvetSherwani = Product{ID: "1", Name: "Royal Velvet Sherwani", Category: CategorySherwani, Variety: "Embroidered Velvet", Price: 24999}
	linenKurta     = Product{ID: "5", Name: "Cotton Linen Kurta", Category: CategoryKurtaPajama, Variety: "Summer Collection", Price: 2999}
	bandhgala      = Product{ID: "9", Name: "Imperial Bandhgala", Category: CategoryJodhpuri, Variety: "Royal Cut", Price: 15999}
)

func TestCart_AddItem_OneLinePerProduct(t *testing.T) {
	var cart Cart
	for _, p := range []Product{velvetSherwani, linenKurta, velvetSherwani, bandhgala, velvetSherwani, linenKurta} {
		cart.AddItem(p)
	}

	require.Len(t, cart.Lines, 3)
	assert.Equal(t, "1", cart.Lines[0].ID)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, "5", cart.Lines[1].ID)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
	assert.Equal(t, "9", cart.Lines[2].ID)
	assert.Equal(t, 1, cart.Lines[2].Quantity)
}

func TestCart_SetQuantity_NeverBelowOne(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{name: "increment", delta: 2, want: 4},
		{name: "decrement", delta: -1, want: 1},
		{name: "zero delta", delta: 0, want: 2},
		{name: "large negative", delta: -1000, want: 1},
		{name: "min int", delta: math.MinInt, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart Cart
			cart.AddItem(linenKurta)
			cart.AddItem(linenKurta)

			cart.SetQuantity(linenKurta.ID, tt.delta)

			assert.Equal(t, tt.want, cart.Lines[0].Quantity)
		})
	}
}

func TestCart_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	var cart Cart
	cart.AddItem(linenKurta)

	cart.SetQuantity("missing", 5)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem(velvetSherwani)
	cart.AddItem(linenKurta)
	cart.AddItem(bandhgala)

	cart.RemoveItem(linenKurta.ID)
	cart.RemoveItem("missing")

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, velvetSherwani.ID, cart.Lines[0].ID)
	assert.Equal(t, bandhgala.ID, cart.Lines[1].ID)
}

func TestCart_Total(t *testing.T) {
	var empty Cart
	assert.Equal(t, int64(0), empty.Total())

	var forward, backward Cart
	products := []Product{velvetSherwani, linenKurta, linenKurta, bandhgala}
	for i := range products {
		forward.AddItem(products[i])
		backward.AddItem(products[len(products)-1-i])
	}

	want := int64(24999 + 2*2999 + 15999)
	assert.Equal(t, want, forward.Total())
	assert.Equal(t, want, backward.Total())
}

func TestCart_SnapshotIsIndependent(t *testing.T) {
	var cart Cart
	cart.AddItem(velvetSherwani)
	cart.AddItem(linenKurta)

	snapshot := cart.Snapshot()
	cart.SetQuantity(velvetSherwani.ID, 4)
	cart.RemoveItem(velvetSherwani.ID)

	require.Len(t, snapshot, 2)
	assert.Equal(t, velvetSherwani.ID, snapshot[0].ID)
	assert.Equal(t, 1, snapshot[0].Quantity)
}

func TestCart_ClearAndDescriptors(t *testing.T) {
	cart := Cart{CustomerName: "Arjun", CustomerPhone: "98200", Notes: "slim fit"}
	cart.AddItem(velvetSherwani)
	cart.AddItem(bandhgala)

	assert.Equal(t, []string{"Royal Velvet Sherwani (Sherwani)", "Imperial Bandhgala (Jodhpuri)"}, cart.Descriptors())

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.CustomerName)
	assert.Empty(t, cart.CustomerPhone)
	assert.Empty(t, cart.Notes)
	assert.Empty(t, cart.Descriptors())
}
