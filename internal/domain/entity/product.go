package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. CreatedBy es el email del dueño y no cambia tras la creación.
// CategoryID no se valida contra Category: puede apuntar a una categoría eliminada.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// Value devuelve price × quantity.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// MarshalJSON escribe price como número JSON (decimal.Decimal lo serializa entre comillas).
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.RawMessage `json:"price"`
	}{plain: plain(p), Price: json.RawMessage(p.Price.String())})
}
