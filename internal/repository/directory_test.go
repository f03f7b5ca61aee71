package repository

import (
	"testing"

	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmployeeDirectory(t *testing.T) {
	d, err := LoadEmployeeDirectory()
	require.NoError(t, err)

	assert.Equal(t, 3, d.Count())
	assert.Equal(t, []string{"EMP001", "EMP002", "EMP003"}, d.IDs())
	assert.Equal(t, []string{"Engineering", "Marketing", "Sales"}, d.Departments())

	john, ok := d.Get("EMP001")
	require.True(t, ok)
	assert.Equal(t, domain.Employee{
		ID:           "EMP001",
		Name:         "John Doe",
		Email:        "john.doe@techcorp.com",
		Department:   "Engineering",
		Position:     "Senior Developer",
		Manager:      "Jane Smith",
		LeaveBalance: domain.LeaveBalance{Annual: 18, Sick: 8, Personal: 4},
		StartDate:    "2022-01-15",
		Salary:       95000,
		Location:     "New York",
		Phone:        "+1-555-0101",
	}, john)

	_, ok = d.Get("EMP999")
	assert.False(t, ok)
}

func TestEmployeeDirectory_ReadOnly(t *testing.T) {
	d, err := LoadEmployeeDirectory()
	require.NoError(t, err)

	e, _ := d.Get("EMP001")
	e.LeaveBalance.Sick = 0
	ids := d.IDs()
	ids[0] = "changed"

	again, _ := d.Get("EMP001")
	assert.Equal(t, 8, again.LeaveBalance.Sick)
	assert.Equal(t, "EMP001", d.IDs()[0])
}

func TestNewEmployeeDirectory_Validation(t *testing.T) {
	valid := domain.Employee{ID: "E1", Name: "A", Department: "Ops", StartDate: "2024-02-29"}

	tests := []struct {
		name      string
		employees []domain.Employee
		wantErr   string
	}{
		{
			name:      "empty id",
			employees: []domain.Employee{{Name: "Nobody", StartDate: "2024-01-01"}},
			wantErr:   "empty id",
		},
		{
			name:      "empty department",
			employees: []domain.Employee{{ID: "E4", StartDate: "2024-01-01"}},
			wantErr:   "empty department",
		},
		{
			name:      "duplicate id",
			employees: []domain.Employee{valid, valid},
			wantErr:   "duplicate employee id",
		},
		{
			name: "negative balance",
			employees: []domain.Employee{{
				ID: "E2", Department: "Ops", StartDate: "2024-01-01",
				LeaveBalance: domain.LeaveBalance{Sick: -1},
			}},
			wantErr: "negative leave balance",
		},
		{
			name:      "bad start date",
			employees: []domain.Employee{{ID: "E3", Department: "Ops", StartDate: "15/01/2022"}},
			wantErr:   "invalid start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmployeeDirectory(tt.employees)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	d, err := NewEmployeeDirectory([]domain.Employee{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Count())
}

func TestParseEmployeeDirectory_BadYAML(t *testing.T) {
	_, err := ParseEmployeeDirectory([]byte("employees: [unterminated"))
	assert.Error(t, err)
}
