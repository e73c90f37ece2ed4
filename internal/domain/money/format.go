package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// localeByLanguage idiomas soportados por la aplicación y su locale de formato.
var localeByLanguage = map[string]language.Tag{
	"en": language.MustParse("en-US"),
	"ar": language.MustParse("ar-SA"),
	"fr": language.MustParse("fr-FR"),
	"nl": language.MustParse("nl-NL"),
}

// FormatCurrency formatea un monto con símbolo de moneda según el locale.
// Siempre 2 decimales. Códigos de moneda desconocidos caen a número plano.
func FormatCurrency(amount float64, currencyCode string, tag language.Tag) string {
	p := message.NewPrinter(tag)
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return p.Sprintf("%v", number.Decimal(amount, number.Scale(2)))
	}
	return p.Sprintf("%v%v", currency.Symbol(unit), number.Decimal(amount, number.Scale(2)))
}

// FormatCurrencyForLanguage formatea según el idioma de la aplicación
// (en, ar, fr, nl). Idiomas desconocidos usan en-US.
func FormatCurrencyForLanguage(amount float64, currencyCode, lang string) string {
	tag, ok := localeByLanguage[lang]
	if !ok {
		tag = localeByLanguage["en"]
	}
	return FormatCurrency(amount, currencyCode, tag)
}

// FormatNumber formatea un número con 2 decimales según el idioma, sin moneda.
func FormatNumber(value float64, lang string) string {
	tag, ok := localeByLanguage[lang]
	if !ok {
		tag = localeByLanguage["en"]
	}
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(value, number.Scale(2)))
}
