package service

import (
	"context"
	"time"

	"github.com/liliang-cn/smartoffice/internal/config"
	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/liliang-cn/smartoffice/internal/metrics"
	"github.com/liliang-cn/smartoffice/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	previewLength       = 50
)

// ChatService handles chat operations using the intent dispatcher
type ChatService struct {
	dispatcher        *Dispatcher
	historyRepo       *repository.HistoryRepository
	logger            *zap.Logger
	defaultEmployeeID string
	now               func() time.Time
}

// NewChatService creates a new chat service. historyRepo may be nil, in
// which case exchanges are not recorded.
func NewChatService(
	cfg *config.Config,
	dispatcher *Dispatcher,
	historyRepo *repository.HistoryRepository,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		dispatcher:        dispatcher,
		historyRepo:       historyRepo,
		logger:            logger,
		defaultEmployeeID: cfg.Assistant.DefaultEmployeeID,
		now:               time.Now,
	}
}

// Chat answers a chat message
func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if req == nil || req.Message == nil {
		return nil, domain.ErrInvalidRequest
	}

	message := *req.Message
	employeeID := s.defaultEmployeeID
	if req.EmployeeID != nil {
		employeeID = *req.EmployeeID
	}

	intent, text := s.dispatcher.Dispatch(message, employeeID)
	metrics.ChatRequests.WithLabelValues(string(intent)).Inc()

	s.logger.Info("Chat processed",
		zap.String("employee_id", employeeID),
		zap.String("intent", string(intent)),
		zap.String("message", preview(message)),
	)

	now := s.now()
	if s.historyRepo != nil {
		record := &domain.ChatRecord{
			EmployeeID: employeeID,
			Message:    message,
			Intent:     intent,
			Response:   text,
			CreatedAt:  now,
		}
		if err := s.historyRepo.Create(ctx, record); err != nil {
			metrics.ChatHistoryFailures.Inc()
			s.logger.Warn("Failed to record chat", zap.String("employee_id", employeeID), zap.Error(err))
		}
	}

	return &domain.ChatResponse{
		Response:   text,
		EmployeeID: employeeID,
		Timestamp:  epochSeconds(now),
	}, nil
}

// History lists recorded chat exchanges, newest first
func (s *ChatService) History(ctx context.Context, employeeID string, limit int) (*domain.ChatHistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	if s.historyRepo == nil {
		return &domain.ChatHistoryResponse{Records: []*domain.ChatRecord{}}, nil
	}

	records, err := s.historyRepo.List(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.historyRepo.Count(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &domain.ChatHistoryResponse{Records: records, Total: total}, nil
}

func preview(message string) string {
	r := []rune(message)
	if len(r) <= previewLength {
		return message
	}
	return string(r[:previewLength]) + "..."
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
