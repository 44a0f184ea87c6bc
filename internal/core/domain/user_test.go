package domain_test

import (
	"testing"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserRole(t *testing.T) {
	tests := []struct {
		role      domain.UserRole
		valid     bool
		canManage bool
	}{
		{domain.RoleAdmin, true, true},
		{domain.RoleManager, true, true},
		{domain.RoleEmployee, true, false},
		{domain.UserRole("admin"), false, false},
		{domain.UserRole(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
			assert.Equal(t, tt.canManage, tt.role.CanManage())
		})
	}
}

func TestExpenseStatus_IsDecision(t *testing.T) {
	assert.True(t, domain.ExpenseStatusApproved.IsDecision())
	assert.True(t, domain.ExpenseStatusRejected.IsDecision())
	assert.False(t, domain.ExpenseStatusPending.IsDecision())
	assert.False(t, domain.ExpenseStatus("approved").IsDecision())
}

func TestExpense_IsOwnedBy(t *testing.T) {
	e := domain.Expense{UserID: 5}
	assert.True(t, e.IsOwnedBy(5))
	assert.False(t, e.IsOwnedBy(6))
}
