package constants

import (
	"database/sql/driver"
	"fmt"
)

// MemberStatus mirrors the Postgres ENUM 'member_status'
type MemberStatus string

const (
	StatusPending  MemberStatus = "pending"
	StatusApproved MemberStatus = "approved"
	StatusRejected MemberStatus = "rejected"
)

func (s MemberStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *MemberStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = MemberStatus(v)
	case []byte:
		*s = MemberStatus(v)
	default:
		return fmt.Errorf("MemberStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s MemberStatus) Value() (driver.Value, error) { return string(s), nil }

// RoleKey identifies the role definition rows created alongside each party.
// The rows themselves live in party_role (one set per party); the key is the
// stable handle used for lookups.
type RoleKey string

const (
	RoleOwner   RoleKey = "owner"
	RoleManager RoleKey = "manager"
	RoleMember  RoleKey = "member"
)

func (r RoleKey) String() string { return string(r) }

// Scan implements the sql.Scanner interface
func (r *RoleKey) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = RoleKey(v)
	case []byte:
		*r = RoleKey(v)
	default:
		return fmt.Errorf("RoleKey: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r RoleKey) Value() (driver.Value, error) { return string(r), nil }

// DefaultRoles is the role set inserted for every new party, in insertion
// order. Display fields match what the creation flow always writes.
var DefaultRoles = []struct {
	Key         RoleKey
	Name        string
	Description string
}{
	{RoleOwner, "Representative", "Party representative"},
	{RoleManager, "Editor", "Can edit party policy"},
	{RoleMember, "General member", "Can view and comment"},
}
