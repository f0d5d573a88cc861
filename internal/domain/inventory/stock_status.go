package inventory

// LowStockThreshold cantidad máxima considerada "stock bajo" (incluye agotados).
const LowStockThreshold = 10

// Etiquetas de estado de stock.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// IsOutOfStock cantidad <= 0.
func IsOutOfStock(quantity int) bool {
	return quantity <= 0
}

// IsLowStock cantidad <= LowStockThreshold; un producto agotado también cuenta como stock bajo.
func IsLowStock(quantity int) bool {
	return quantity <= LowStockThreshold
}

// CheckQuantityStatus clasifica una cantidad (servicio de dominio).
func CheckQuantityStatus(quantity int) string {
	switch {
	case IsOutOfStock(quantity):
		return StatusOutOfStock
	case IsLowStock(quantity):
		return StatusLowStock
	default:
		return StatusInStock
	}
}
