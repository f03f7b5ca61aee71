package service

import (
	"time"

	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/liliang-cn/smartoffice/internal/repository"
)

// Version is the service version reported by the root and health endpoints
const Version = "1.0.0"

var features = []string{"Employee Management", "Leave Tracking", "Policy Information", "AI Chat"}

// StatusService reports service liveness
type StatusService struct {
	directory *repository.EmployeeDirectory
	now       func() time.Time
}

// NewStatusService creates a new status service
func NewStatusService(directory *repository.EmployeeDirectory) *StatusService {
	return &StatusService{
		directory: directory,
		now:       time.Now,
	}
}

// Info returns the root service descriptor
func (s *StatusService) Info() *domain.ServiceInfo {
	return &domain.ServiceInfo{
		Message:         "Smart Office Assistant API - Ready to Use!",
		Version:         Version,
		Status:          "operational",
		EmployeesLoaded: s.directory.Count(),
		Features:        append([]string(nil), features...),
	}
}

// Health returns the liveness report
func (s *StatusService) Health() *domain.Health {
	return &domain.Health{
		Status:        "healthy",
		Timestamp:     epochSeconds(s.now()),
		Version:       Version,
		Database:      "pre-loaded",
		Employees:     s.directory.Count(),
		KnowledgeBase: "ready",
	}
}
