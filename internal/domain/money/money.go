// Package money implementa la aritmética monetaria de los pedidos.
//
// Todos los cálculos de dinero del sistema pasan por estas funciones para
// garantizar consistencia con los totales ya persistidos: el redondeo es
// round-half-away-from-zero vía multiplicar-redondear-dividir
// (math.Round(v * 10^d) / 10^d) y se aplica en CADA etapa (línea, subtotal,
// impuesto, total), no solo al final. Cambiar el método o el orden de
// redondeo rompe la igualdad bit a bit con los valores históricos.
//
// Las funciones son puras y no validan entradas: NaN e Inf se propagan.
// Si el caller necesita validación estricta debe usar IsValidAmount antes.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LineItem una línea de pedido para efectos de cálculo.
type LineItem struct {
	Quantity  float64
	UnitPrice float64
}

// Totals agregado derivado de las líneas y la tasa de impuesto.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// Validation resultado de ValidateOrderTotals. Nunca se retorna como error:
// el caller decide si rechaza, corrige o solo advierte.
type Validation struct {
	IsValid    bool
	Errors     []string
	Calculated Totals
}

// RoundTo redondea a la cantidad de decimales indicada (half away from zero).
func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// Round redondea a 2 decimales, la precisión monetaria del sistema.
// No se soportan monedas de 0 o 3 decimales.
func Round(value float64) float64 {
	return RoundTo(value, 2)
}

// ItemSubtotal subtotal de una línea: round2(cantidad * precio unitario).
func ItemSubtotal(quantity, unitPrice float64) float64 {
	return Round(quantity * unitPrice)
}

// TaxAmount impuesto sobre un subtotal dada la tasa en porcentaje (21 = 21%).
func TaxAmount(subtotal, taxRatePercent float64) float64 {
	return Round(subtotal * taxRatePercent / 100)
}

// Total total a pagar: round2(subtotal + impuesto).
func Total(subtotal, taxAmount float64) float64 {
	return Round(subtotal + taxAmount)
}

// OrderTotals deriva los totales de un pedido a partir de sus líneas.
// Cada subtotal de línea se redondea ANTES de sumar; ese orden es el que
// produjo los valores almacenados y debe conservarse.
// Lista vacía produce {0, 0, 0}. taxRatePercent 0 es válido (impuesto cero).
func OrderTotals(items []LineItem, taxRatePercent float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += ItemSubtotal(it.Quantity, it.UnitPrice)
	}
	subtotal = Round(subtotal)
	taxAmount := TaxAmount(subtotal, taxRatePercent)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     Total(subtotal, taxAmount),
	}
}

// tolerancia absoluta al comparar totales enviados contra el recálculo.
const tolerance = 0.01

// ValidateOrderTotals recalcula los totales y compara campo a campo contra
// los valores enviados por el cliente. Detecta manipulación o divergencia
// cliente/servidor. Siempre retorna un resultado, nunca falla.
func ValidateOrderTotals(items []LineItem, subtotal, taxRatePercent, taxAmount, total float64) Validation {
	calc := OrderTotals(items, taxRatePercent)
	var errs []string

	if math.Abs(calc.Subtotal-subtotal) > tolerance {
		errs = append(errs, fmt.Sprintf("Subtotal mismatch: expected %v, got %v", calc.Subtotal, subtotal))
	}
	if math.Abs(calc.TaxAmount-taxAmount) > tolerance {
		errs = append(errs, fmt.Sprintf("Tax amount mismatch: expected %v, got %v", calc.TaxAmount, taxAmount))
	}
	if math.Abs(calc.Total-total) > tolerance {
		errs = append(errs, fmt.Sprintf("Total mismatch: expected %v, got %v", calc.Total, total))
	}

	return Validation{
		IsValid:    len(errs) == 0,
		Errors:     errs,
		Calculated: calc,
	}
}

// IsValidAmount reporta si value es un monto monetario utilizable:
// finito y no negativo.
func IsValidAmount(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}

// Percentage calcula el porcentaje de un valor, redondeado a 2 decimales.
func Percentage(value, percent float64) float64 {
	return Round(value * percent / 100)
}

// Discount monto de descuento sobre un valor dada la tasa en porcentaje.
func Discount(amount, discountRatePercent float64) float64 {
	return Percentage(amount, discountRatePercent)
}

// ApplyDiscount valor después de aplicar el descuento.
func ApplyDiscount(amount, discountRatePercent float64) float64 {
	return Round(amount - Discount(amount, discountRatePercent))
}

// ProfitMargin margen de ganancia en porcentaje sobre el costo.
// Costo cero retorna 0 para evitar división por cero.
func ProfitMargin(sellingPrice, costPrice float64) float64 {
	if costPrice == 0 {
		return 0
	}
	return Round((sellingPrice - costPrice) / costPrice * 100)
}

// Markup porcentaje de markup sobre el precio de venta.
func Markup(sellingPrice, costPrice float64) float64 {
	if sellingPrice == 0 {
		return 0
	}
	return Round((sellingPrice - costPrice) / sellingPrice * 100)
}

// ParseAmount extrae el valor numérico de un string con símbolos de moneda
// ("€ 1.234,50" no se soporta; el separador decimal esperado es el punto).
// Strings no parseables retornan 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
