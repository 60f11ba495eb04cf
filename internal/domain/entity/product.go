package entity

import "encoding/json"

// Product es un producto del catálogo. Size y Addons se exponen siempre como
// JSON estructurado; en filas legacy pueden venir serializados como texto y se
// normalizan al leer (ver NormalizeJSON).
type Product struct {
	ID       int64
	Name     string
	Category string // referencia Category.Name (soft reference)
	Image    string // nombre de archivo bajo el directorio de uploads; vacío si no hay imagen
	Size     json.RawMessage
	Addons   json.RawMessage
}

// NormalizeJSON normaliza un campo que puede venir de la DB como JSON nativo o
// como texto JSON doblemente serializado (filas legacy). Si el valor es un
// string JSON cuyo contenido a su vez parsea como JSON, se desenvuelve; si el
// contenido no parsea, se devuelve el valor crudo tal cual en vez de fallar la
// lectura completa.
func NormalizeJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		// Ya es estructurado (objeto, arreglo, número...): passthrough.
		return raw
	}
	if json.Valid([]byte(inner)) {
		return json.RawMessage(inner)
	}
	return raw
}
