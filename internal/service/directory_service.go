package service

import (
	"context"

	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/liliang-cn/smartoffice/internal/repository"
)

// DirectoryService handles employee lookups
type DirectoryService struct {
	directory *repository.EmployeeDirectory
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(directory *repository.EmployeeDirectory) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// GetEmployee returns the full employee record or domain.ErrNotFound
func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	employee, ok := s.directory.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &employee, nil
}

// ListEmployees returns all employee ids and the distinct departments
func (s *DirectoryService) ListEmployees(ctx context.Context) *domain.EmployeeListResponse {
	return &domain.EmployeeListResponse{
		Employees:   s.directory.IDs(),
		Total:       s.directory.Count(),
		Departments: s.directory.Departments(),
	}
}
