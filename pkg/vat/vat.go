// Package vat valida números de IVA belgas (formato BE 0XXX.XXX.XXX).
package vat

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateBE valida un número de IVA belga, con o sin prefijo "BE" y con o
// sin puntos/espacios. Los dos últimos dígitos son el dígito de control:
// 97 - (los 8 primeros dígitos mod 97).
func ValidateBE(vatNumber string) error {
	digits := extractDigits(vatNumber)
	// Los números antiguos de 9 dígitos llevan un 0 inicial implícito.
	if len(digits) == 9 {
		digits = append([]byte{'0'}, digits...)
	}
	if len(digits) != 10 {
		return fmt.Errorf("vat: número de IVA belga debe tener 10 dígitos, se encontraron %d", len(digits))
	}
	if digits[0] != '0' && digits[0] != '1' {
		return fmt.Errorf("vat: número de IVA belga debe comenzar por 0 o 1")
	}
	var base int
	for _, d := range digits[:8] {
		base = base*10 + int(d-'0')
	}
	check := (int(digits[8]-'0'))*10 + int(digits[9]-'0')
	expected := 97 - base%97
	if check != expected {
		return fmt.Errorf("vat: dígito de control inválido: esperado %02d, recibido %02d", expected, check)
	}
	return nil
}

// Normalize devuelve el número en la forma canónica "BE0XXXXXXXXX" sin
// separadores. No valida el dígito de control.
func Normalize(vatNumber string) string {
	digits := extractDigits(vatNumber)
	if len(digits) == 9 {
		digits = append([]byte{'0'}, digits...)
	}
	return "BE" + string(digits)
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range strings.ToUpper(s) {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
