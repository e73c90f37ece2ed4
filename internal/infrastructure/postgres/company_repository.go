package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, name_ar, name_fr, name_nl, logo_url, address, address_ar,
	address_fr, address_nl, phone, email, website, tax_number, registration_number,
	default_language, default_currency, timezone, date_format, tax_rate, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, name_ar, name_fr, name_nl, logo_url, address, address_ar,
			address_fr, address_nl, phone, email, website, tax_number, registration_number,
			default_language, default_currency, timezone, date_format, tax_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.NameAR, company.NameFR, company.NameNL,
		company.LogoURL, company.Address, company.AddressAR, company.AddressFR, company.AddressNL,
		company.Phone, company.Email, company.Website, company.TaxNumber, company.RegistrationNumber,
		company.DefaultLanguage, company.DefaultCurrency, company.Timezone, company.DateFormat,
		company.TaxRate, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.NameAR, &c.NameFR, &c.NameNL,
		&c.LogoURL, &c.Address, &c.AddressAR, &c.AddressFR, &c.AddressNL,
		&c.Phone, &c.Email, &c.Website, &c.TaxNumber, &c.RegistrationNumber,
		&c.DefaultLanguage, &c.DefaultCurrency, &c.Timezone, &c.DateFormat,
		&c.TaxRate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza la configuración de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, name_ar = $3, name_fr = $4, name_nl = $5, logo_url = $6,
			address = $7, address_ar = $8, address_fr = $9, address_nl = $10, phone = $11,
			email = $12, website = $13, tax_number = $14, registration_number = $15,
			default_language = $16, default_currency = $17, timezone = $18, date_format = $19,
			tax_rate = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.NameAR, company.NameFR, company.NameNL, company.LogoURL,
		company.Address, company.AddressAR, company.AddressFR, company.AddressNL, company.Phone,
		company.Email, company.Website, company.TaxNumber, company.RegistrationNumber,
		company.DefaultLanguage, company.DefaultCurrency, company.Timezone, company.DateFormat,
		company.TaxRate, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
