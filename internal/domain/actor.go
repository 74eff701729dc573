package domain

import "fmt"

// Actor is the already-authenticated caller identity supplied by the
// embedding host's session provider. The core never authenticates
// credentials itself.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// String returns a compact representation for audit logs.
func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.Role, a.ID)
}
