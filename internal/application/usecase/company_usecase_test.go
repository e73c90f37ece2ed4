package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

func buildCompanyUseCase() (*usecase.CompanyUseCase, *fakeCompanyRepo) {
	repo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {
			ID:              testCompanyID,
			Name:            "Boulangerie Dupont",
			DefaultLanguage: "fr",
			DefaultCurrency: "EUR",
			TaxRate:         21.0,
			CreatedAt:       time.Now(),
		},
	}}
	return usecase.NewCompanyUseCase(repo), repo
}

func strPtr(s string) *string { return &s }

func TestUpdateEmpresa_ActualizacionParcial(t *testing.T) {
	uc, repo := buildCompanyUseCase()

	out, err := uc.Update(testCompanyID, dto.UpdateCompanyRequest{
		NameFR: strPtr("Boulangerie Dupont SPRL"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Boulangerie Dupont SPRL", out.NameFR)
	assert.Equal(t, "Boulangerie Dupont", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, 21.0, repo.companies[testCompanyID].TaxRate)
}

func TestUpdateEmpresa_IVAValidoSeNormaliza(t *testing.T) {
	uc, repo := buildCompanyUseCase()

	out, err := uc.Update(testCompanyID, dto.UpdateCompanyRequest{
		TaxNumber: strPtr("be 0417.497.106"),
	})
	require.NoError(t, err)

	assert.Equal(t, "BE0417497106", out.TaxNumber)
	assert.Equal(t, "BE0417497106", repo.companies[testCompanyID].TaxNumber)
}

func TestUpdateEmpresa_IVAConControlIncorrectoRechazado(t *testing.T) {
	uc, _ := buildCompanyUseCase()

	_, err := uc.Update(testCompanyID, dto.UpdateCompanyRequest{
		TaxNumber: strPtr("BE0417497199"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateEmpresa_TasaNegativaRechazada(t *testing.T) {
	uc, _ := buildCompanyUseCase()

	negativa := -1.0
	_, err := uc.Update(testCompanyID, dto.UpdateCompanyRequest{TaxRate: &negativa})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetEmpresa_Inexistente(t *testing.T) {
	uc, _ := buildCompanyUseCase()

	_, err := uc.Get("00000000-0000-0000-0000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
