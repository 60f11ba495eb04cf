package entity

import "github.com/shopspring/decimal"

// OptionKind discrimina las dos tablas de opciones de producto, que comparten
// forma y reglas: addons y sizes.
type OptionKind string

const (
	KindAddon OptionKind = "addon"
	KindSize  OptionKind = "size"
)

// Table devuelve el nombre de tabla de la opción.
func (k OptionKind) Table() string {
	if k == KindSize {
		return "sizes"
	}
	return "addons"
}

// Option es un addon o un size de producto: nombre, precio y categoría a la
// que pertenece (referencia por nombre).
type Option struct {
	ID       int64
	Name     string
	Price    decimal.Decimal // no negativo; cero es válido
	Category string          // referencia Category.Name
}
