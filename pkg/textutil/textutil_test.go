package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "tornilleria", Normalize("Tornillería"))
	assert.Equal(t, "nino", Normalize("NIÑO"))
	assert.Equal(t, "almacen central", Normalize("Almacén Central"))
}

func TestNormalize_TextoPlano(t *testing.T) {
	assert.Equal(t, "sku-123", Normalize("SKU-123"))
	assert.Equal(t, "", Normalize(""))
}
