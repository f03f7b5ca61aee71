package domain

// LeaveBalance holds the remaining leave days per leave type
type LeaveBalance struct {
	Annual   int `json:"annual" yaml:"annual"`
	Sick     int `json:"sick" yaml:"sick"`
	Personal int `json:"personal" yaml:"personal"`
}

// Employee represents an employee profile in the directory
type Employee struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Email        string       `json:"email" yaml:"email"`
	Department   string       `json:"department" yaml:"department"`
	Position     string       `json:"position" yaml:"position"`
	Manager      string       `json:"manager" yaml:"manager"`
	LeaveBalance LeaveBalance `json:"leave_balance" yaml:"leave_balance"`
	StartDate    string       `json:"start_date" yaml:"start_date"` // YYYY-MM-DD
	Salary       int          `json:"salary" yaml:"salary"`
	Location     string       `json:"location" yaml:"location"`
	Phone        string       `json:"phone" yaml:"phone"`
}

// EmployeeListResponse is the response for listing employees
type EmployeeListResponse struct {
	Employees   []string `json:"employees"`
	Total       int      `json:"total"`
	Departments []string `json:"departments"`
}
