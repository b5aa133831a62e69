package entity

import "github.com/shopspring/decimal"

// CartLine línea efímera de carrito (scope de sesión, nunca se persiste por sí sola).
// EditableDP/EditableTP arrancan como salida del motor de promociones y el operador
// puede sobreescribirlas antes de enviar la transacción.
type CartLine struct {
	Barcode     string
	ProductName string
	Quantity    int64
	EditableDP  decimal.Decimal
	EditableTP  decimal.Decimal
}
