package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/liliang-cn/smartoffice/internal/domain"
	"gopkg.in/yaml.v3"
)

// EmployeeDirectory is a read-only lookup of employee profiles.
// It is safe for concurrent use because nothing mutates it after construction.
type EmployeeDirectory struct {
	employees   map[string]domain.Employee
	ids         []string
	departments []string
}

type employeeSeed struct {
	Employees []domain.Employee `yaml:"employees"`
}

// LoadEmployeeDirectory builds the directory from the embedded seed table
func LoadEmployeeDirectory() (*EmployeeDirectory, error) {
	data, err := seedFS.ReadFile(employeesSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee seed: %w", err)
	}
	return ParseEmployeeDirectory(data)
}

// ParseEmployeeDirectory builds a directory from a YAML document
func ParseEmployeeDirectory(data []byte) (*EmployeeDirectory, error) {
	var seed employeeSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode employee seed: %w", err)
	}
	return NewEmployeeDirectory(seed.Employees)
}

// NewEmployeeDirectory validates the records and builds a directory
func NewEmployeeDirectory(employees []domain.Employee) (*EmployeeDirectory, error) {
	d := &EmployeeDirectory{
		employees: make(map[string]domain.Employee, len(employees)),
	}

	seen := make(map[string]bool)
	for _, e := range employees {
		if err := validateEmployee(e); err != nil {
			return nil, err
		}
		if _, dup := d.employees[e.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id: %s", e.ID)
		}
		d.employees[e.ID] = e
		d.ids = append(d.ids, e.ID)
		if !seen[e.Department] {
			seen[e.Department] = true
			d.departments = append(d.departments, e.Department)
		}
	}

	sort.Strings(d.ids)
	sort.Strings(d.departments)
	return d, nil
}

func validateEmployee(e domain.Employee) error {
	if e.ID == "" {
		return fmt.Errorf("employee %q: empty id", e.Name)
	}
	if e.Department == "" {
		return fmt.Errorf("employee %s: empty department", e.ID)
	}
	lb := e.LeaveBalance
	if lb.Annual < 0 || lb.Sick < 0 || lb.Personal < 0 {
		return fmt.Errorf("employee %s: negative leave balance", e.ID)
	}
	if _, err := time.Parse(time.DateOnly, e.StartDate); err != nil {
		return fmt.Errorf("employee %s: invalid start date: %w", e.ID, err)
	}
	return nil
}

// Get returns a copy of the employee with the given id
func (d *EmployeeDirectory) Get(id string) (domain.Employee, bool) {
	e, ok := d.employees[id]
	return e, ok
}

// IDs returns all employee ids in sorted order
func (d *EmployeeDirectory) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Departments returns the distinct department names in sorted order
func (d *EmployeeDirectory) Departments() []string {
	return append([]string(nil), d.departments...)
}

// Count returns the number of employees
func (d *EmployeeDirectory) Count() int {
	return len(d.employees)
}
