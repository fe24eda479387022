package model

// Role is a session-wide label used to filter which views and actions are
// visible and to stamp the "user" field on movements. It is NOT an
// authentication mechanism.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCashier   Role = "CASHIER"
	RoleInventory Role = "INVENTORY"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleInventory:
		return true
	}
	return false
}
