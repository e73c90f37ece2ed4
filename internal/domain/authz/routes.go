package authz

// Route vista nombrada de la aplicación cliente. La tabla de rutas es
// independiente de la de permisos: grano más grueso, clave por identidad
// de la vista.
type Route string

// Rutas de la aplicación.
const (
	RouteLogin         Route = "login"
	RouteDashboard     Route = "dashboard" // vista segura de respaldo
	RouteAdminDash     Route = "admin-dashboard"
	RouteAdminUsers    Route = "admin-users"
	RouteAdminSettings Route = "admin-settings"
	RouteManagerDash   Route = "manager-dashboard"
	RouteManagerTeam   Route = "manager-team"
	RouteManagerRpts   Route = "manager-reports"
	RouteRepDash       Route = "representative-dashboard"
	RouteRepOrders     Route = "representative-orders"
	RouteOrders        Route = "orders"
	RouteProducts      Route = "products"
	RouteReports       Route = "reports"
)

// routeRoles tabla fija Route → roles permitidos. Una ruta ausente de la
// tabla queda denegada para todos: un olvido al agregar rutas nunca se
// convierte en acceso.
var routeRoles = map[Route][]Role{
	RouteDashboard:     {RoleAdmin, RoleSalesManager, RoleRepresentative},
	RouteAdminDash:     {RoleAdmin},
	RouteAdminUsers:    {RoleAdmin},
	RouteAdminSettings: {RoleAdmin},
	RouteManagerDash:   {RoleAdmin, RoleSalesManager},
	RouteManagerTeam:   {RoleAdmin, RoleSalesManager},
	RouteManagerRpts:   {RoleAdmin, RoleSalesManager},
	RouteRepDash:       {RoleAdmin, RoleSalesManager, RoleRepresentative},
	RouteRepOrders:     {RoleAdmin, RoleSalesManager, RoleRepresentative},
	RouteOrders:        {RoleAdmin, RoleSalesManager, RoleRepresentative},
	RouteProducts:      {RoleAdmin, RoleSalesManager, RoleRepresentative},
	RouteReports:       {RoleAdmin, RoleSalesManager},
}

// CanAccessRoute responde si el rol puede ver la ruta. Ruta o rol
// desconocidos → false.
func CanAccessRoute(role Role, route Route) bool {
	for _, allowed := range routeRoles[route] {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultRouteFor ruta de inicio del rol. Cualquier valor fuera del
// conjunto cerrado (incluido el usuario no autenticado) cae a login.
func DefaultRouteFor(role Role) Route {
	switch role {
	case RoleAdmin:
		return RouteAdminDash
	case RoleSalesManager:
		return RouteManagerDash
	case RoleRepresentative:
		return RouteRepDash
	}
	return RouteLogin
}

// Decision resultado del guard de navegación.
type Decision struct {
	Allowed    bool
	RedirectTo Route // vacía si Allowed
}

// ResolveNavigation decide qué hacer ante una navegación: permitir, o
// redirigir a la ruta por defecto del rol. Si la ruta por defecto es
// justamente la ruta denegada, se rompe el ciclo cayendo a dashboard.
func ResolveNavigation(role Role, requested Route) Decision {
	if !role.Valid() {
		return Decision{Allowed: false, RedirectTo: RouteLogin}
	}
	if CanAccessRoute(role, requested) {
		return Decision{Allowed: true}
	}
	redirect := DefaultRouteFor(role)
	if redirect == requested {
		// La ruta por defecto fue la denegada: sin esta salida el cliente
		// entraría en un ciclo de redirecciones.
		redirect = RouteDashboard
	}
	return Decision{Allowed: false, RedirectTo: redirect}
}
