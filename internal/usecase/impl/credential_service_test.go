package impl

import (
	"context"
	"testing"
	"time"

	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	mockRepo "erpgate/internal/mocks/repository"
	mockService "erpgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	credRepo  *mockRepo.MockCredentialRepository
	perms     *mockRepo.MockPermissionRepository
	tokens    *mockService.MockTokenService
	publisher *mockService.MockEventPublisher
	srv       *credentialService
}

func newCredentialFixture(t *testing.T) *credentialFixture {
	f := &credentialFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		credRepo:  mockRepo.NewMockCredentialRepository(t),
		perms:     mockRepo.NewMockPermissionRepository(t),
		tokens:    mockService.NewMockTokenService(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	f.srv = newCredentialService(CredentialServiceParams{
		TxManager:    f.txManager,
		TokenService: f.tokens,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestCredentialService_ResolveAccessToken(t *testing.T) {
	credentialID := uuid.New()

	tests := []struct {
		name       string
		setup      func(f *credentialFixture)
		token      string
		wantErr    error
		wantResult bool
	}{
		{
			name:    "empty token",
			token:   "",
			setup:   func(f *credentialFixture) {},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "signature rejected",
			token: "forged",
			setup: func(f *credentialFixture) {
				f.tokens.EXPECT().ValidateAccessToken("forged").Return(nil, errors.New("signature is invalid")).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "no stored credential",
			token: "orphan",
			setup: func(f *credentialFixture) {
				f.tokens.EXPECT().ValidateAccessToken("orphan").Return(&service.Claims{}, nil).Once()
				f.tokens.EXPECT().HashToken("orphan").Return("orphan-hash").Once()
				expectTx(t, f.txManager, f.factory)
				f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
				f.credRepo.EXPECT().FindCredentialByAccessHash(mock.Anything, "orphan-hash").Return(nil, repository.ErrCredentialNotFound).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "stored expiry passed",
			token: "stale",
			setup: func(f *credentialFixture) {
				f.tokens.EXPECT().ValidateAccessToken("stale").Return(&service.Claims{}, nil).Once()
				f.tokens.EXPECT().HashToken("stale").Return("stale-hash").Once()
				expectTx(t, f.txManager, f.factory)
				f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
				f.credRepo.EXPECT().FindCredentialByAccessHash(mock.Anything, "stale-hash").
					Return(&entity.Credential{ID: credentialID, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "valid",
			token: "good",
			setup: func(f *credentialFixture) {
				f.tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{}, nil).Once()
				f.tokens.EXPECT().HashToken("good").Return("good-hash").Once()
				expectTx(t, f.txManager, f.factory)
				f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
				f.credRepo.EXPECT().FindCredentialByAccessHash(mock.Anything, "good-hash").
					Return(&entity.Credential{ID: credentialID, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
			},
			wantResult: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCredentialFixture(t)
			tt.setup(f)

			credential, err := f.srv.ResolveAccessToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, credential)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, credentialID, credential.ID)
		})
	}
}

func TestCredentialService_CheckEndpoint(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "/a/b"},
		{path: "/a/b/c"},
		{path: "/a/b/"},
		{path: "/a/bc", wantErr: true},
		{path: "/a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := newCredentialFixture(t)
			ctx := context.Background()
			credentialID := uuid.New()

			expectTx(t, f.txManager, f.factory)
			f.factory.EXPECT().NewPermissionRepository().Return(f.perms)
			f.perms.EXPECT().FindEndpoints(ctx, credentialID).Return([]string{"/a/b"}, nil).Once()

			err := f.srv.CheckEndpoint(ctx, credentialID, tt.path)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrEndpointNotAllowed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialService_CheckEndpoint_RepositoryError(t *testing.T) {
	f := newCredentialFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewPermissionRepository().Return(f.perms)
	f.perms.EXPECT().FindEndpoints(ctx, credentialID).Return(nil, errors.New("connection reset")).Once()

	err := f.srv.CheckEndpoint(ctx, credentialID, "/v1/auto")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrEndpointNotAllowed)
}

func TestCredentialService_Revoke(t *testing.T) {
	f := newCredentialFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.credRepo.EXPECT().DeleteCredential(ctx, credentialID).Return(nil).Once()
	f.publisher.EXPECT().PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
		return e.Type == service.AuditCredentialRevoked && e.CredentialID == credentialID.String()
	})).Return(nil).Once()

	err := f.srv.Revoke(ctx, credentialID)

	require.NoError(t, err)
}

func TestCredentialService_Revoke_NotFound(t *testing.T) {
	f := newCredentialFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.credRepo.EXPECT().DeleteCredential(ctx, credentialID).Return(repository.ErrCredentialNotFound).Once()

	err := f.srv.Revoke(ctx, credentialID)

	assert.ErrorIs(t, err, domainerrors.ErrCredentialNotFound)
}

func TestCredentialService_PurgeExpired(t *testing.T) {
	f := newCredentialFixture(t)
	ctx := context.Background()
	before := time.Now()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.credRepo.EXPECT().FindCredentialIDsExpiredBefore(ctx, before).Return(ids, nil).Once()
	f.credRepo.EXPECT().DeleteCredential(ctx, ids[0]).Return(nil).Once()
	f.credRepo.EXPECT().DeleteCredential(ctx, ids[1]).Return(nil).Once()
	f.publisher.EXPECT().PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
		return e.Type == service.AuditCredentialRevoked && e.Reason == "expired"
	})).Return(errors.New("publisher offline")).Times(2)

	count, err := f.srv.PurgeExpired(ctx, before)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCredentialService_PurgeExpired_DeleteFails(t *testing.T) {
	f := newCredentialFixture(t)
	ctx := context.Background()
	before := time.Now()
	id := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.credRepo.EXPECT().FindCredentialIDsExpiredBefore(ctx, before).Return([]uuid.UUID{id}, nil).Once()
	f.credRepo.EXPECT().DeleteCredential(ctx, id).Return(errors.New("lock timeout")).Once()

	count, err := f.srv.PurgeExpired(ctx, before)

	require.Error(t, err)
	assert.Zero(t, count)
}
