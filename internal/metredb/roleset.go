package metredb

import "math/bits"

// RoleSet is a bitmask of 1-based pada (or half-verse) positions.
type RoleSet uint8

// NewRoleSet builds a set from 1-based role numbers.
func NewRoleSet(roles ...int) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= 1 << uint(r-1)
	}
	return s
}

// Has reports whether the 1-based role is in the set.
func (s RoleSet) Has(role int) bool {
	return s&(1<<uint(role-1)) != 0
}

// With returns the set extended by the 1-based role.
func (s RoleSet) With(role int) RoleSet {
	return s | 1<<uint(role-1)
}

// Union returns the combination of both sets.
func (s RoleSet) Union(t RoleSet) RoleSet {
	return s | t
}

// Len returns the number of roles in the set.
func (s RoleSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Roles returns the 1-based roles in ascending order.
func (s RoleSet) Roles() []int {
	var out []int
	for r := 1; r <= 8; r++ {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
