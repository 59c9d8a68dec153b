package model

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdminPBJ   Role = "ADMIN_PBJ"
	RoleAdminOPD   Role = "ADMIN_OPD"
	RoleViewer     Role = "VIEWER"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdminPBJ, RoleAdminOPD, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
	OpdID    string `json:"opdId,omitempty"` // hanya untuk ADMIN_OPD
}

// DefaultUsers dipakai saat dokumen belum memiliki user sama sekali.
func DefaultUsers() []User {
	return []User{
		{ID: "1", Name: "Marga Sulkifli Rayes., S.IP", Role: RoleSuperAdmin, Username: "admin"},
		{ID: "2", Name: "User Tamu", Role: RoleViewer, Username: "viewer"},
	}
}
