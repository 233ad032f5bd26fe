package model

// Role discriminates the two principal variants.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// Principal is the acting identity passed explicitly into every core
// operation. It is resolved by the auth middleware from JWT claims — the
// services never read ambient session state.
type Principal struct {
	ID         uint
	Username   string
	Role       Role
	BusinessID uint
}

// StaffID returns the id to record on sales, expenses and inventory logs:
// the staff id for staff principals, nil for owners (owner actions carry no
// staff attribution).
func (p Principal) StaffID() *uint {
	if p.Role != RoleStaff {
		return nil
	}
	id := p.ID
	return &id
}
