package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"erpgate/config"
	"erpgate/internal/domain/repository"
	mockRepo "erpgate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "access-secret", Refresh: "refresh-secret"},
		Auth: &config.AuthConfig{
			CredentialTTL: 24 * time.Hour,
			RefreshTTL:    7 * 24 * time.Hour,
		},
		Resolver: &config.ResolverConfig{
			ReadFields: map[string][]string{
				"hr.employee": {"job_id", "department_id"},
			},
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

// expectTx makes txManager run fn against factory once and return fn's error.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
