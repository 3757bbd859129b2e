package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"

	DefaultRole = RoleEditor
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Only administrators can access %s."
	ErrOnlyEditorsCanModify = "❌ Only administrators or editors can modify %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanModify, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEditor,
		RoleViewer,
	}

	EditorAndAbove = []string{
		RoleAdmin,
		RoleEditor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
