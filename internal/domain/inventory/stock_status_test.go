package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ihuza-inventory/internal/domain/inventory"
)

func TestCheckQuantityStatus_Umbrales(t *testing.T) {
	cases := []struct {
		qty  int
		want string
	}{
		{-3, inventory.StatusOutOfStock},
		{0, inventory.StatusOutOfStock},
		{1, inventory.StatusLowStock},
		{5, inventory.StatusLowStock},
		{10, inventory.StatusLowStock},
		{11, inventory.StatusInStock},
		{500, inventory.StatusInStock},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inventory.CheckQuantityStatus(c.qty), "cantidad %d", c.qty)
	}
}

// Un agotado cuenta también como stock bajo (las métricas del dashboard dependen de esto).
func TestIsLowStock_IncluyeAgotados(t *testing.T) {
	assert.True(t, inventory.IsLowStock(0))
	assert.True(t, inventory.IsLowStock(-1))
	assert.True(t, inventory.IsOutOfStock(0))
	assert.False(t, inventory.IsOutOfStock(1))
	assert.False(t, inventory.IsLowStock(11))
}
