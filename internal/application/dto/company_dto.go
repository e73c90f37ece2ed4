package dto

import "time"

// CompanyResponse configuración de la empresa en respuestas.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NameAR             string    `json:"name_ar,omitempty"`
	NameFR             string    `json:"name_fr,omitempty"`
	NameNL             string    `json:"name_nl,omitempty"`
	LogoURL            string    `json:"logo_url,omitempty"`
	Address            string    `json:"address"`
	AddressAR          string    `json:"address_ar,omitempty"`
	AddressFR          string    `json:"address_fr,omitempty"`
	AddressNL          string    `json:"address_nl,omitempty"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Website            string    `json:"website,omitempty"`
	TaxNumber          string    `json:"tax_number,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	DefaultLanguage    string    `json:"default_language"`
	DefaultCurrency    string    `json:"default_currency"`
	Timezone           string    `json:"timezone"`
	DateFormat         string    `json:"date_format"`
	TaxRate            float64   `json:"tax_rate"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateCompanyRequest body para PUT /api/company. Punteros: nil = sin cambio.
type UpdateCompanyRequest struct {
	Name               *string  `json:"name,omitempty"`
	NameAR             *string  `json:"name_ar,omitempty"`
	NameFR             *string  `json:"name_fr,omitempty"`
	NameNL             *string  `json:"name_nl,omitempty"`
	LogoURL            *string  `json:"logo_url,omitempty" validate:"omitempty,url"`
	Address            *string  `json:"address,omitempty"`
	AddressAR          *string  `json:"address_ar,omitempty"`
	AddressFR          *string  `json:"address_fr,omitempty"`
	AddressNL          *string  `json:"address_nl,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	Website            *string  `json:"website,omitempty"`
	TaxNumber          *string  `json:"tax_number,omitempty"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	DefaultLanguage    *string  `json:"default_language,omitempty" validate:"omitempty,oneof=en ar fr nl"`
	DefaultCurrency    *string  `json:"default_currency,omitempty" validate:"omitempty,len=3"`
	Timezone           *string  `json:"timezone,omitempty"`
	DateFormat         *string  `json:"date_format,omitempty"`
	TaxRate            *float64 `json:"tax_rate,omitempty" validate:"omitempty,min=0"`
}
