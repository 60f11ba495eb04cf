package entity

// Category agrupa productos, addons y sizes. Otras entidades la referencian
// por nombre (soft reference, sin foreign key en la DB).
type Category struct {
	ID   int64
	Name string
}
