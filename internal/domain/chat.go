package domain

import "time"

// Intent names the rule that produced a chat response
type Intent string

// Intents in dispatch order
const (
	IntentGreeting     Intent = "greeting"
	IntentLeaveBalance Intent = "leave_balance"
	IntentSickLeave    Intent = "sick_leave"
	IntentVacation     Intent = "vacation"
	IntentRemoteWork   Intent = "remote_work"
	IntentBenefits     Intent = "benefits"
	IntentLeavePolicy  Intent = "leave_policy"
	IntentProfile      Intent = "profile"
	IntentManager      Intent = "manager"
	IntentContactInfo  Intent = "contact_info"
	IntentGratitude    Intent = "gratitude"
	IntentFallback     Intent = "fallback"
)

// ChatRequest is the request to send a chat message.
// Message is a pointer so an empty message is accepted while a missing one is rejected.
// EmployeeID is a pointer so only an omitted id falls back to the default; an
// explicit empty id is kept.
type ChatRequest struct {
	Message    *string `json:"message" binding:"required"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// ChatResponse is the response from a chat message
type ChatResponse struct {
	Response   string   `json:"response"`
	EmployeeID string   `json:"employee_id"`
	Timestamp  float64  `json:"timestamp"`
	Sources    []string `json:"sources,omitempty"`
}

// ChatRecord is a logged chat exchange
type ChatRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Message    string    `json:"message"`
	Intent     Intent    `json:"intent"`
	Response   string    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatHistoryResponse is the response for listing chat records
type ChatHistoryResponse struct {
	Records []*ChatRecord `json:"records"`
	Total   int           `json:"total"`
}

// ServiceInfo is the root service descriptor
type ServiceInfo struct {
	Message         string   `json:"message"`
	Version         string   `json:"version"`
	Status          string   `json:"status"`
	EmployeesLoaded int      `json:"employees_loaded"`
	Features        []string `json:"features"`
}

// Health represents the liveness report
type Health struct {
	Status        string  `json:"status"`
	Timestamp     float64 `json:"timestamp"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	Employees     int     `json:"employees"`
	KnowledgeBase string  `json:"knowledge_base"`
}
