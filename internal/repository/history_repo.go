package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/liliang-cn/smartoffice/internal/domain"
)

// HistoryRepository handles chat record persistence
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create stores a chat record
func (r *HistoryRepository) Create(ctx context.Context, record *domain.ChatRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_records (id, employee_id, message, intent, response, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.EmployeeID, record.Message, string(record.Intent),
		record.Response, record.CreatedAt)

	return err
}

// List retrieves the newest records first, optionally filtered by employee
func (r *HistoryRepository) List(ctx context.Context, employeeID string, limit int) ([]*domain.ChatRecord, error) {
	query := `
		SELECT id, employee_id, message, intent, response, created_at
		FROM chat_records`
	args := []any{}
	if employeeID != "" {
		query += ` WHERE employee_id = ?`
		args = append(args, employeeID)
	}
	query += ` ORDER BY rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*domain.ChatRecord{}
	for rows.Next() {
		record := &domain.ChatRecord{}
		var intent string

		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Message,
			&intent, &record.Response, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.Intent = domain.Intent(intent)
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the number of records, optionally filtered by employee
func (r *HistoryRepository) Count(ctx context.Context, employeeID string) (int, error) {
	var count int
	var err error
	if employeeID == "" {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_records`).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM chat_records WHERE employee_id = ?`, employeeID).Scan(&count)
	}
	return count, err
}
