package entity

import "time"

// Company configuración de la empresa (tenant). Una fila por empresa; los
// campos *_AR/_FR/_NL son las variantes localizadas que usa la factura.
type Company struct {
	ID                 string
	Name               string
	NameAR             string
	NameFR             string
	NameNL             string
	LogoURL            string
	Address            string
	AddressAR          string
	AddressFR          string
	AddressNL          string
	Phone              string
	Email              string
	Website            string
	TaxNumber          string
	RegistrationNumber string
	DefaultLanguage    string  // en, ar, fr, nl
	DefaultCurrency    string  // código ISO 4217, ej. EUR
	Timezone           string
	DateFormat         string
	TaxRate            float64 // porcentaje por defecto para pedidos nuevos (21.0 = 21%)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LocalizedName nombre de la empresa en el idioma dado, con fallback al nombre base.
func (c *Company) LocalizedName(lang string) string {
	switch lang {
	case "ar":
		if c.NameAR != "" {
			return c.NameAR
		}
	case "fr":
		if c.NameFR != "" {
			return c.NameFR
		}
	case "nl":
		if c.NameNL != "" {
			return c.NameNL
		}
	}
	return c.Name
}

// LocalizedAddress dirección en el idioma dado, con fallback a la base.
func (c *Company) LocalizedAddress(lang string) string {
	switch lang {
	case "ar":
		if c.AddressAR != "" {
			return c.AddressAR
		}
	case "fr":
		if c.AddressFR != "" {
			return c.AddressFR
		}
	case "nl":
		if c.AddressNL != "" {
			return c.AddressNL
		}
	}
	return c.Address
}
