package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/pkg/vat"
)

// CompanyUseCase configuración de la empresa (tenant): lectura y
// actualización parcial.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve la configuración de la empresa del token.
func (uc *CompanyUseCase) Get(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update actualización parcial de la configuración (punteros nil = sin cambio).
func (uc *CompanyUseCase) Update(companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&company.Name, in.Name)
	applyString(&company.NameAR, in.NameAR)
	applyString(&company.NameFR, in.NameFR)
	applyString(&company.NameNL, in.NameNL)
	applyString(&company.LogoURL, in.LogoURL)
	applyString(&company.Address, in.Address)
	applyString(&company.AddressAR, in.AddressAR)
	applyString(&company.AddressFR, in.AddressFR)
	applyString(&company.AddressNL, in.AddressNL)
	applyString(&company.Phone, in.Phone)
	applyString(&company.Email, in.Email)
	applyString(&company.Website, in.Website)
	if in.TaxNumber != nil && *in.TaxNumber != "" {
		if err := vat.ValidateBE(*in.TaxNumber); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		company.TaxNumber = vat.Normalize(*in.TaxNumber)
	}
	applyString(&company.RegistrationNumber, in.RegistrationNumber)
	applyString(&company.DefaultLanguage, in.DefaultLanguage)
	applyString(&company.DefaultCurrency, in.DefaultCurrency)
	applyString(&company.Timezone, in.Timezone)
	applyString(&company.DateFormat, in.DateFormat)
	if in.TaxRate != nil {
		if *in.TaxRate < 0 {
			return nil, domain.ErrInvalidInput
		}
		company.TaxRate = *in.TaxRate
	}
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		NameAR:             c.NameAR,
		NameFR:             c.NameFR,
		NameNL:             c.NameNL,
		LogoURL:            c.LogoURL,
		Address:            c.Address,
		AddressAR:          c.AddressAR,
		AddressFR:          c.AddressFR,
		AddressNL:          c.AddressNL,
		Phone:              c.Phone,
		Email:              c.Email,
		Website:            c.Website,
		TaxNumber:          c.TaxNumber,
		RegistrationNumber: c.RegistrationNumber,
		DefaultLanguage:    c.DefaultLanguage,
		DefaultCurrency:    c.DefaultCurrency,
		Timezone:           c.Timezone,
		DateFormat:         c.DateFormat,
		TaxRate:            c.TaxRate,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
