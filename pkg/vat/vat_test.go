package vat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pedidos-api/pkg/vat"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidateBE
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateBE_NumeroValido(t *testing.T) {
	// 0417.497.106: 4174971 mod 97 = 4174971 - 43040*97 = 91 → control 97-91 = 06
	for _, in := range []string{
		"BE0417497106",
		"BE 0417.497.106",
		"0417497106",
		"417497106", // forma antigua de 9 dígitos
	} {
		assert.NoError(t, vat.ValidateBE(in), "debe aceptar %q", in)
	}
}

func TestValidateBE_DigitoDeControlIncorrecto(t *testing.T) {
	err := vat.ValidateBE("BE0417497107")
	assert.Error(t, err, "control alterado debe rechazarse")
	assert.Contains(t, err.Error(), "dígito de control")
}

func TestValidateBE_LongitudIncorrecta(t *testing.T) {
	assert.Error(t, vat.ValidateBE("BE04174971"))
	assert.Error(t, vat.ValidateBE(""))
}

func TestValidateBE_PrimerDigitoInvalido(t *testing.T) {
	assert.Error(t, vat.ValidateBE("BE9417497106"))
}

func TestNormalize_FormaCanonica(t *testing.T) {
	assert.Equal(t, "BE0417497106", vat.Normalize("be 0417.497.106"))
	assert.Equal(t, "BE0417497106", vat.Normalize("417497106"))
}
