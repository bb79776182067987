package model

import "strings"

// Role is the semantic meaning a spreadsheet column plays in a record.
type Role string

const (
	RoleDate        Role = "date"
	RoleCost        Role = "cost"
	RoleDescription Role = "description"
	RoleQuantity    Role = "quantity"
)

// RequiredRoles are the roles every table must resolve to produce records.
var RequiredRoles = []Role{RoleDate, RoleCost, RoleDescription}

// Required reports whether a table missing this role is skipped.
func (r Role) Required() bool {
	for _, req := range RequiredRoles {
		if r == req {
			return true
		}
	}
	return false
}

// RawTable is a single sheet: its header and the rows beneath it.
type RawTable struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Cell returns the trimmed value at row/col. Short rows read as empty.
func (t RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// ColumnRoleMap assigns column indices to roles for one table.
type ColumnRoleMap map[Role]int

// Column returns the index bound to role.
func (m ColumnRoleMap) Column(role Role) (int, bool) {
	i, ok := m[role]
	return i, ok
}

// Missing returns the required roles absent from the map, in RequiredRoles order.
func (m ColumnRoleMap) Missing() []Role {
	var missing []Role
	for _, r := range RequiredRoles {
		if _, ok := m[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
