package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Pedidos-api/internal/application/auth"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok && u.CompanyID == companyID {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "11111111-1111-4111-8111-111111111111"
	testPassword  = "super-secreta-123"
)

func buildUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Empresa Test"},
	}}
	uc := auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "pedidos-test",
	})
	return uc, users
}

func registerUser(t *testing.T, uc *auth.AuthUseCase, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "rep@empresa.test",
		Password:  testPassword,
		Name:      "Repre Sentante",
		Role:      role,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_RolPorDefectoEsRepresentative(t *testing.T) {
	uc, _ := buildUseCase(t)
	out, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "nuevo@empresa.test",
		Password:  testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "representative", out.Role)
	assert.Equal(t, "active", out.Status)
	assert.Equal(t, "nuevo@empresa.test", out.Name, "sin nombre se usa el email")
}

func TestRegisterUser_RolInvalidoRechazado(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "x@empresa.test",
		Password:  testPassword,
		Role:      "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := buildUseCase(t)
	registerUser(t, uc, "representative")
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "rep@empresa.test",
		Password:  testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: "99999999-9999-4999-8999-999999999999",
		Email:     "x@empresa.test",
		Password:  testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_IncluyeRutaYPermisos(t *testing.T) {
	uc, _ := buildUseCase(t)
	registerUser(t, uc, "sales_manager")

	out, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, string(authz.RouteManagerDash), out.DefaultRoute)
	assert.Len(t, out.Permissions, 6)
	assert.NotNil(t, out.User.LastLogin, "login exitoso registra last_login")
	assert.Zero(t, out.User.FailedLoginAttempts)
}

func TestLogin_PasswordIncorrecta_IncrementaContador(t *testing.T) {
	uc, users := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	_, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, _ := users.GetByID(created.ID)
	assert.Equal(t, 1, stored.FailedLoginAttempts)
	assert.Nil(t, stored.LockedUntil)
}

func TestLogin_CincoFallos_BloqueaCuenta(t *testing.T) {
	uc, users := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	for i := 0; i < entity.MaxFailedLoginAttempts; i++ {
		_, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: "mala"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}

	stored, _ := users.GetByID(created.ID)
	require.NotNil(t, stored.LockedUntil, "al quinto fallo la cuenta queda bloqueada")
	assert.True(t, stored.LockedUntil.After(time.Now()))

	// Incluso con la password correcta, la cuenta bloqueada no entra.
	_, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogin_ExitosoReseteaContador(t *testing.T) {
	uc, users := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	for i := 0; i < 3; i++ {
		_, _ = uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: "mala"})
	}
	_, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: testPassword})
	require.NoError(t, err)

	stored, _ := users.GetByID(created.ID)
	assert.Zero(t, stored.FailedLoginAttempts)
	assert.Nil(t, stored.LockedUntil)
}

func TestLogin_UsuarioInactivoNoEntra(t *testing.T) {
	uc, users := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	stored, _ := users.GetByID(created.ID)
	stored.Status = entity.UserStatusSuspended
	require.NoError(t, users.Update(stored))

	_, err := uc.Login(dto.LoginRequest{Email: "rep@empresa.test", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@empresa.test", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword / GeneratePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_Exitoso(t *testing.T) {
	uc, users := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	err := uc.ChangePassword(created.ID, dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "nueva-password-1",
		ConfirmPassword: "nueva-password-1",
	})
	require.NoError(t, err)

	stored, _ := users.GetByID(created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-password-1")))
}

func TestChangePassword_ConfirmacionNoCoincide(t *testing.T) {
	uc, _ := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	err := uc.ChangePassword(created.ID, dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "nueva-password-1",
		ConfirmPassword: "otra-distinta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	uc, _ := buildUseCase(t)
	created := registerUser(t, uc, "representative")

	err := uc.ChangePassword(created.ID, dto.ChangePasswordRequest{
		CurrentPassword: "mala",
		NewPassword:     "nueva-password-1",
		ConfirmPassword: "nueva-password-1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGeneratePassword_LongitudYVariacion(t *testing.T) {
	a, err := auth.GeneratePassword()
	require.NoError(t, err)
	b, err := auth.GeneratePassword()
	require.NoError(t, err)
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b, "dos passwords generadas no deben coincidir")
}
