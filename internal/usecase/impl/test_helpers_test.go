package impl

import (
	"context"
	"io"
	"log/slog"

	"tillpoint/config"
	"tillpoint/internal/domain/repository"
	mockRepo "tillpoint/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Paystack: &config.PaystackConfig{
			CallbackURL: "https://api.tillpoint.test/payments/callback",
		},
		Frontend: &config.FrontendConfig{
			BaseURL: "https://pos.tillpoint.test",
		},
	}
}

// newPassthroughTxManager returns a transaction manager mock that invokes the
// transactional function with the given factory, standing in for a committed
// transaction.
func newPassthroughTxManager(t interface {
	mock.TestingT
	Cleanup(func())
}, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
