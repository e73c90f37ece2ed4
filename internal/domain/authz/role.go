// Package authz implementa el modelo de control de acceso: rol → permisos,
// ruta → roles permitidos y ruta de inicio por rol. Las tablas son
// configuración estática del proceso; no se mutan en runtime y todas las
// consultas fallan cerradas (clave desconocida = denegado).
package authz

// Role rol único de un usuario. Conjunto cerrado: no hay multi-rol ni
// composición. El tipo cerrado obliga a pasar por ParseRole en los bordes,
// de modo que un string malformado nunca llega a las tablas.
type Role string

// Roles válidos del sistema.
const (
	RoleAdmin          Role = "admin"
	RoleSalesManager   Role = "sales_manager"
	RoleRepresentative Role = "representative"
)

// ParseRole convierte el claim de rol del token a Role. Strings fuera del
// conjunto cerrado retornan ok=false; el caller debe tratarlo como
// no autenticado (fail-closed).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSalesManager, RoleRepresentative:
		return Role(s), true
	}
	return "", false
}

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// AllRoles lista los roles válidos (para validación de DTOs y seeds).
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleSalesManager, RoleRepresentative}
}
