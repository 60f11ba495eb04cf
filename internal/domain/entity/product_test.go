package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

func TestNormalizeJSON_EstructuradoPassthrough(t *testing.T) {
	raw := json.RawMessage(`{"small": 0, "large": 1.5}`)
	assert.Equal(t, raw, entity.NormalizeJSON(raw))

	arr := json.RawMessage(`[{"name": "extra shot"}]`)
	assert.Equal(t, arr, entity.NormalizeJSON(arr))
}

func TestNormalizeJSON_DesenvuelveTextoDobleSerializado(t *testing.T) {
	// Fila legacy: el objeto quedó guardado como string JSON.
	raw := json.RawMessage(`"{\"small\": 0, \"large\": 1.5}"`)

	got := entity.NormalizeJSON(raw)
	assert.JSONEq(t, `{"small": 0, "large": 1.5}`, string(got))
}

func TestNormalizeJSON_ContenidoInvalidoPassthrough(t *testing.T) {
	// Un string que no parsea como JSON se devuelve crudo, nunca falla la lectura.
	raw := json.RawMessage(`"esto no es json {"`)
	assert.Equal(t, raw, entity.NormalizeJSON(raw))
}

func TestNormalizeJSON_Vacio(t *testing.T) {
	assert.Empty(t, entity.NormalizeJSON(nil))
}
