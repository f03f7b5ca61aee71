package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/liliang-cn/smartoffice/internal/config"
	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/liliang-cn/smartoffice/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Assistant: config.AssistantConfig{DefaultEmployeeID: "EMP001"},
	}
}

func newTestChatService(t *testing.T, withHistory bool) *ChatService {
	t.Helper()

	var historyRepo *repository.HistoryRepository
	if withHistory {
		db, err := repository.NewDB(repository.MemoryPath)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		historyRepo = repository.NewHistoryRepository(db)
	}

	return NewChatService(createTestConfig(), newTestDispatcher(t), historyRepo, zaptest.NewLogger(t))
}

func strPtr(s string) *string { return &s }

func TestChatService_Chat(t *testing.T) {
	s := newTestChatService(t, true)
	fixed := time.Unix(1700000000, 500000000)
	s.now = func() time.Time { return fixed }

	resp, err := s.Chat(context.Background(), &domain.ChatRequest{
		Message:    strPtr("Hello"),
		EmployeeID: strPtr("EMP002"),
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "Sarah Wilson")
	assert.Equal(t, "EMP002", resp.EmployeeID)
	assert.InDelta(t, 1700000000.5, resp.Timestamp, 1e-3)
	assert.Nil(t, resp.Sources)
}

func TestChatService_Chat_DefaultEmployee(t *testing.T) {
	s := newTestChatService(t, false)

	resp, err := s.Chat(context.Background(), &domain.ChatRequest{Message: strPtr("Hello")})
	require.NoError(t, err)

	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Contains(t, resp.Response, "John Doe")
}

func TestChatService_Chat_ExplicitEmptyEmployee(t *testing.T) {
	s := newTestChatService(t, false)

	resp, err := s.Chat(context.Background(), &domain.ChatRequest{
		Message:    strPtr("Hello"),
		EmployeeID: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "", resp.EmployeeID)
	assert.Contains(t, resp.Response, "Hello Employee!")
	assert.NotContains(t, resp.Response, "John Doe")
}

func TestChatService_Chat_EmptyMessage(t *testing.T) {
	s := newTestChatService(t, false)

	resp, err := s.Chat(context.Background(), &domain.ChatRequest{Message: strPtr("")})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, `asking about: ""`)
}

func TestChatService_Chat_MissingMessage(t *testing.T) {
	s := newTestChatService(t, false)

	_, err := s.Chat(context.Background(), &domain.ChatRequest{EmployeeID: strPtr("EMP001")})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = s.Chat(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestChatService_History(t *testing.T) {
	s := newTestChatService(t, true)
	ctx := context.Background()

	messages := []struct {
		employeeID string
		message    string
	}{
		{"EMP001", "Hello"},
		{"EMP001", "What's my leave balance?"},
		{"EMP003", "Who is my manager?"},
	}
	for _, m := range messages {
		_, err := s.Chat(ctx, &domain.ChatRequest{Message: strPtr(m.message), EmployeeID: strPtr(m.employeeID)})
		require.NoError(t, err)
	}

	all, err := s.History(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	require.Len(t, all.Records, 3)
	assert.Equal(t, domain.IntentManager, all.Records[0].Intent)

	emp1, err := s.History(ctx, "EMP001", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, emp1.Total)
	require.Len(t, emp1.Records, 1)
	assert.Equal(t, domain.IntentLeaveBalance, emp1.Records[0].Intent)
	assert.Equal(t, "What's my leave balance?", emp1.Records[0].Message)
	assert.NotEmpty(t, emp1.Records[0].ID)
}

func TestChatService_History_Disabled(t *testing.T) {
	s := newTestChatService(t, false)

	result, err := s.History(context.Background(), "EMP001", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Records)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))

	long := strings.Repeat("é", 60)
	got := preview(long)
	assert.Equal(t, 53, len([]rune(got)))
	assert.Equal(t, "...", got[len(got)-3:])
}
