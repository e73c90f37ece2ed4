package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseRole
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole_ConjuntoCerrado(t *testing.T) {
	for _, s := range []string{"admin", "sales_manager", "representative"} {
		role, ok := authz.ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, string(role))
	}
}

func TestParseRole_FallaCerrado(t *testing.T) {
	for _, s := range []string{"", "Admin", "superuser", "bogus-role", "admin "} {
		_, ok := authz.ParseRole(s)
		assert.False(t, ok, "%q no debe parsear como rol válido", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HasPermission
// ──────────────────────────────────────────────────────────────────────────────

func TestHasPermission_TablaPorRol(t *testing.T) {
	cases := []struct {
		role authz.Role
		perm authz.Permission
		want bool
	}{
		{authz.RoleAdmin, authz.PermUsersDelete, true},
		{authz.RoleAdmin, authz.PermCompanyUpdate, true},
		{authz.RoleSalesManager, authz.PermUsersRead, true},
		{authz.RoleSalesManager, authz.PermUsersDelete, false},
		{authz.RoleSalesManager, authz.PermReportsRead, true},
		{authz.RoleSalesManager, authz.PermSettingsRead, false},
		{authz.RoleRepresentative, authz.PermOrdersCreate, true},
		{authz.RoleRepresentative, authz.PermUsersDelete, false},
		{authz.RoleRepresentative, authz.PermReportsRead, false},
		{authz.RoleRepresentative, authz.PermProductsCreate, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, authz.HasPermission(tc.role, tc.perm),
			"%s / %s", tc.role, tc.perm)
	}
}

func TestHasPermission_RolDesconocidoSiempreFalse(t *testing.T) {
	assert.False(t, authz.HasPermission(authz.Role("bogus"), authz.PermOrdersRead))
	assert.False(t, authz.HasPermission(authz.Role(""), authz.PermOrdersRead))
}

func TestHasPermission_SinWildcards(t *testing.T) {
	// El match es exacto; "orders.*" no es un permiso.
	assert.False(t, authz.HasPermission(authz.RoleAdmin, authz.Permission("orders.*")))
	assert.False(t, authz.HasPermission(authz.RoleAdmin, authz.Permission("orders")))
}

func TestPermissionsFor_Jerarquia(t *testing.T) {
	admin := authz.PermissionsFor(authz.RoleAdmin)
	manager := authz.PermissionsFor(authz.RoleSalesManager)
	rep := authz.PermissionsFor(authz.RoleRepresentative)

	assert.Len(t, admin, 17)
	assert.Len(t, manager, 6)
	assert.Len(t, rep, 4)

	// La jerarquía es dato: cada permiso de un rol menor existe en el mayor.
	for _, p := range rep {
		assert.True(t, authz.HasPermission(authz.RoleSalesManager, p), p)
	}
	for _, p := range manager {
		assert.True(t, authz.HasPermission(authz.RoleAdmin, p), p)
	}

	assert.Empty(t, authz.PermissionsFor(authz.Role("bogus")))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessRoute / DefaultRouteFor
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessRoute_FallaCerrado(t *testing.T) {
	assert.False(t, authz.CanAccessRoute(authz.RoleRepresentative, authz.RouteAdminSettings))
	assert.False(t, authz.CanAccessRoute(authz.RoleAdmin, authz.Route("unknown-route-xyz")))
	assert.False(t, authz.CanAccessRoute(authz.Role("bogus"), authz.RouteOrders))
}

func TestCanAccessRoute_TablaPorRuta(t *testing.T) {
	assert.True(t, authz.CanAccessRoute(authz.RoleAdmin, authz.RouteAdminSettings))
	assert.True(t, authz.CanAccessRoute(authz.RoleSalesManager, authz.RouteManagerRpts))
	assert.False(t, authz.CanAccessRoute(authz.RoleRepresentative, authz.RouteManagerRpts))
	assert.True(t, authz.CanAccessRoute(authz.RoleRepresentative, authz.RouteOrders))
	assert.True(t, authz.CanAccessRoute(authz.RoleSalesManager, authz.RouteReports))
	assert.False(t, authz.CanAccessRoute(authz.RoleRepresentative, authz.RouteReports))
}

func TestDefaultRouteFor_Determinista(t *testing.T) {
	assert.Equal(t, authz.RouteAdminDash, authz.DefaultRouteFor(authz.RoleAdmin))
	assert.Equal(t, authz.RouteManagerDash, authz.DefaultRouteFor(authz.RoleSalesManager))
	assert.Equal(t, authz.RouteRepDash, authz.DefaultRouteFor(authz.RoleRepresentative))
	assert.Equal(t, authz.RouteLogin, authz.DefaultRouteFor(authz.Role("bogus-role")))
	assert.Equal(t, authz.RouteLogin, authz.DefaultRouteFor(authz.Role("")))
}

// Cada rol debe poder ver su propia ruta de inicio; de lo contrario el login
// redirigiría a una vista denegada.
func TestDefaultRouteFor_EsAccesible(t *testing.T) {
	for _, role := range authz.AllRoles() {
		assert.True(t, authz.CanAccessRoute(role, authz.DefaultRouteFor(role)),
			"rol %s no puede acceder a su ruta por defecto", role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveNavigation (guard)
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveNavigation_Permitido(t *testing.T) {
	d := authz.ResolveNavigation(authz.RoleRepresentative, authz.RouteOrders)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.RedirectTo)
}

func TestResolveNavigation_DenegadoRedirige(t *testing.T) {
	d := authz.ResolveNavigation(authz.RoleRepresentative, authz.RouteAdminSettings)
	assert.False(t, d.Allowed)
	assert.Equal(t, authz.RouteRepDash, d.RedirectTo)
}

func TestResolveNavigation_NoAutenticadoALogin(t *testing.T) {
	d := authz.ResolveNavigation(authz.Role(""), authz.RouteOrders)
	assert.False(t, d.Allowed)
	assert.Equal(t, authz.RouteLogin, d.RedirectTo)
}

func TestResolveNavigation_NuncaRedirigeALaRutaDenegada(t *testing.T) {
	// El redirect jamás puede ser la misma ruta que se denegó (ciclo).
	routes := []authz.Route{
		authz.RouteAdminDash, authz.RouteAdminUsers, authz.RouteAdminSettings,
		authz.RouteManagerDash, authz.RouteManagerTeam, authz.RouteManagerRpts,
		authz.RouteRepDash, authz.RouteRepOrders, authz.RouteOrders,
		authz.RouteProducts, authz.RouteReports, authz.Route("unknown-route-xyz"),
	}
	for _, role := range authz.AllRoles() {
		for _, route := range routes {
			d := authz.ResolveNavigation(role, route)
			if !d.Allowed {
				assert.NotEqual(t, route, d.RedirectTo,
					"rol %s, ruta %s: redirección en círculo", role, route)
				assert.NotEmpty(t, d.RedirectTo)
			}
		}
	}
}
