package authz

// Permission string "<recurso>.<acción>" verificada contra la tabla fija
// del rol. El match es exacto: no hay wildcards ("orders.*" no existe).
type Permission string

// Permisos del sistema. Recursos: users, orders, products, reports,
// settings, company. Acciones: create, read, update, delete.
const (
	PermUsersCreate    Permission = "users.create"
	PermUsersRead      Permission = "users.read"
	PermUsersUpdate    Permission = "users.update"
	PermUsersDelete    Permission = "users.delete"
	PermOrdersCreate   Permission = "orders.create"
	PermOrdersRead     Permission = "orders.read"
	PermOrdersUpdate   Permission = "orders.update"
	PermOrdersDelete   Permission = "orders.delete"
	PermProductsCreate Permission = "products.create"
	PermProductsRead   Permission = "products.read"
	PermProductsUpdate Permission = "products.update"
	PermProductsDelete Permission = "products.delete"
	PermReportsRead    Permission = "reports.read"
	PermSettingsRead   Permission = "settings.read"
	PermSettingsUpdate Permission = "settings.update"
	PermCompanyRead    Permission = "company.read"
	PermCompanyUpdate  Permission = "company.update"
)

// rolePermissions tabla fija Role → permisos. admin es superconjunto de
// sales_manager, que es superconjunto de representative, pero la jerarquía
// es dato explícito, no herencia: cada fila se lee tal cual está.
// Definida una sola vez para que HasPermission y las rutas no puedan
// divergir entre sí.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: permSet(
		PermUsersCreate, PermUsersRead, PermUsersUpdate, PermUsersDelete,
		PermOrdersCreate, PermOrdersRead, PermOrdersUpdate, PermOrdersDelete,
		PermProductsCreate, PermProductsRead, PermProductsUpdate, PermProductsDelete,
		PermReportsRead,
		PermSettingsRead, PermSettingsUpdate,
		PermCompanyRead, PermCompanyUpdate,
	),
	RoleSalesManager: permSet(
		PermUsersRead,
		PermOrdersCreate, PermOrdersRead, PermOrdersUpdate,
		PermProductsRead,
		PermReportsRead,
	),
	RoleRepresentative: permSet(
		PermOrdersCreate, PermOrdersRead, PermOrdersUpdate,
		PermProductsRead,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// HasPermission responde si el rol puede ejecutar el permiso. Rol
// desconocido → conjunto vacío → siempre false.
func HasPermission(role Role, perm Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// PermissionsFor devuelve los permisos del rol (copia; la tabla no se expone
// mutable). Rol desconocido devuelve lista vacía.
func PermissionsFor(role Role) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}
