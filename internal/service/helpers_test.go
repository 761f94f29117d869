package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/utils"
)

func ctxWithActor(actor *domain.Actor) context.Context {
	return context.WithValue(context.Background(), utils.ActorKey, actor)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmailMessage(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(actor *domain.Actor) (string, error) {
	args := m.Called(actor)
	return args.String(0), args.Error(1)
}
