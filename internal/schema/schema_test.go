package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		wantRoles   model.ColumnRoleMap
		wantMissing []model.Role
	}{
		{
			name:      "posting ledger",
			columns:   []string{"Posting Date", "SoE Description", "Item Descriptor", "Value", "Quantity"},
			wantRoles: model.ColumnRoleMap{model.RoleDate: 0, model.RoleDescription: 2, model.RoleCost: 3, model.RoleQuantity: 4},
		},
		{
			name:      "case and whitespace",
			columns:   []string{"  DATE ", "Chemical", "Total Amount"},
			wantRoles: model.ColumnRoleMap{model.RoleDate: 0, model.RoleDescription: 1, model.RoleCost: 2},
		},
		{
			name:      "first matching column wins",
			columns:   []string{"Order Date", "Delivery Date", "Item Name", "Value", "Amount"},
			wantRoles: model.ColumnRoleMap{model.RoleDate: 0, model.RoleDescription: 2, model.RoleCost: 3},
		},
		{
			name:      "value date claimed by cost",
			columns:   []string{"Value Date", "Posting Date", "Description"},
			wantRoles: model.ColumnRoleMap{model.RoleCost: 0, model.RoleDate: 1, model.RoleDescription: 2},
		},
		{
			name:        "a column serves one role",
			columns:     []string{"Value Date", "Chemical"},
			wantRoles:   model.ColumnRoleMap{model.RoleCost: 0, model.RoleDescription: 1},
			wantMissing: []model.Role{model.RoleDate},
		},
		{
			name:      "inner whitespace collapsed",
			columns:   []string{"Date", "Item  Name", "Value"},
			wantRoles: model.ColumnRoleMap{model.RoleDate: 0, model.RoleDescription: 1, model.RoleCost: 2},
		},
		{
			name:        "description must match exactly",
			columns:     []string{"Date", "Item Descriptor Code", "Value"},
			wantRoles:   model.ColumnRoleMap{model.RoleDate: 0, model.RoleCost: 2},
			wantMissing: []model.Role{model.RoleDescription},
		},
		{
			name:        "no recognizable headers",
			columns:     []string{"Foo", "Bar"},
			wantRoles:   model.ColumnRoleMap{},
			wantMissing: []model.Role{model.RoleDate, model.RoleCost, model.RoleDescription},
		},
		{
			name:      "qty abbreviation",
			columns:   []string{"date", "item name", "amount", "Qty Issued"},
			wantRoles: model.ColumnRoleMap{model.RoleDate: 0, model.RoleDescription: 1, model.RoleCost: 2, model.RoleQuantity: 3},
		},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles, missing := r.Resolve(tt.columns)
			assert.Equal(t, tt.wantRoles, roles)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestResolveCustomSynonyms(t *testing.T) {
	r := NewResolver(Synonyms{
		Cost:        []string{"Cost"},
		Date:        []string{"Day"},
		Description: []string{"Reagent"},
	})
	roles, missing := r.Resolve([]string{"reagent", "day of issue", "unit cost"})
	assert.Empty(t, missing)
	assert.Equal(t, 0, roles[model.RoleDescription])
	assert.Equal(t, 1, roles[model.RoleDate])
	assert.Equal(t, 2, roles[model.RoleCost])
	_, ok := roles.Column(model.RoleQuantity)
	assert.False(t, ok)
}

func TestRulesOrder(t *testing.T) {
	rules := Default().Rules()
	var order []model.Role
	for _, r := range rules {
		order = append(order, r.Role)
	}
	assert.Equal(t, []model.Role{model.RoleCost, model.RoleDate, model.RoleDescription, model.RoleQuantity}, order)
}

func TestGuidance(t *testing.T) {
	g := Default().Guidance()
	assert.Contains(t, g, `"date"`)
	assert.Contains(t, g, `"value" or "amount"`)
	assert.Contains(t, g, `"item descriptor"`)
	assert.Contains(t, g, `"chemical"`)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "item name", NormalizeHeader("  Item   NAME\t"))
	assert.Equal(t, "", NormalizeHeader("   "))
}
