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
	"erpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var aliceClaims = &service.Claims{RemoteUserID: 7, Username: "alice", SessionID: "sess-7", Type: service.TokenTypeRefresh}

type rotationFixture struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	credRepo   *mockRepo.MockCredentialRepository
	principals *mockRepo.MockPrincipalRepository
	tokens     *mockService.MockTokenService
	publisher  *mockService.MockEventPublisher
	srv        usecase.RotationUsecase
}

func newRotationFixture(t *testing.T) *rotationFixture {
	f := &rotationFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		credRepo:   mockRepo.NewMockCredentialRepository(t),
		principals: mockRepo.NewMockPrincipalRepository(t),
		tokens:     mockService.NewMockTokenService(t),
		publisher:  mockService.NewMockEventPublisher(t),
	}
	f.srv = NewRotationService(RotationServiceParams{
		TxManager:    f.txManager,
		TokenService: f.tokens,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestRotationService_Rotate_InputValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RotateInput
		wantErr error
	}{
		{name: "missing refresh", input: usecase.RotateInput{}, wantErr: domainerrors.ErrMissingRefreshToken},
		{name: "zero days", input: usecase.RotateInput{RefreshToken: "r", Days: intPtr(0)}, wantErr: domainerrors.ErrInvalidDays},
		{name: "negative days", input: usecase.RotateInput{RefreshToken: "r", Days: intPtr(-3)}, wantErr: domainerrors.ErrInvalidDays},
		{name: "days above cap", input: usecase.RotateInput{RefreshToken: "r", Days: intPtr(36501)}, wantErr: domainerrors.ErrInvalidDays},
		{name: "days overflowing a duration", input: usecase.RotateInput{RefreshToken: "r", Days: intPtr(200000)}, wantErr: domainerrors.ErrInvalidDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRotationFixture(t)

			out, err := f.srv.Rotate(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRotationService_Rotate_InvalidToken(t *testing.T) {
	f := newRotationFixture(t)
	f.tokens.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed")).Once()

	_, err := f.srv.Rotate(context.Background(), usecase.RotateInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}

func TestRotationService_Rotate_UnknownToken(t *testing.T) {
	f := newRotationFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().ValidateRefreshToken("valid-but-unknown").Return(aliceClaims, nil).Once()
	f.tokens.EXPECT().HashToken("valid-but-unknown").Return("unknown-hash").Once()
	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.credRepo.EXPECT().FindCredentialByRefreshHash(ctx, "unknown-hash").Return(nil, repository.ErrCredentialNotFound).Once()

	out, err := f.srv.Rotate(ctx, usecase.RotateInput{RefreshToken: "valid-but-unknown"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
}

func TestRotationService_Rotate_LocalIdentityMissing(t *testing.T) {
	f := newRotationFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().ValidateRefreshToken("refresh").Return(aliceClaims, nil).Once()
	f.tokens.EXPECT().HashToken("refresh").Return("refresh-hash").Once()
	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.factory.EXPECT().NewPrincipalRepository().Return(f.principals)
	f.credRepo.EXPECT().FindCredentialByRefreshHash(ctx, "refresh-hash").Return(&entity.Credential{ID: uuid.New()}, nil).Once()
	f.principals.EXPECT().FindPrincipalByRemoteUserID(ctx, int64(7)).Return(nil, repository.ErrPrincipalNotFound).Once()

	_, err := f.srv.Rotate(ctx, usecase.RotateInput{RefreshToken: "refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrLocalIdentityMissing)
}

func TestRotationService_Rotate_Success(t *testing.T) {
	tests := []struct {
		name string
		days *int
		want time.Duration
	}{
		{name: "default one day", days: nil, want: 24 * time.Hour},
		{name: "three days", days: intPtr(3), want: 72 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRotationFixture(t)
			ctx := context.Background()
			credentialID := uuid.New()

			f.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(aliceClaims, nil).Once()
			f.tokens.EXPECT().HashToken("old-refresh").Return("old-hash").Once()
			f.tokens.EXPECT().HashToken("new-access").Return("new-access-hash").Once()
			f.tokens.EXPECT().HashToken("new-refresh").Return("new-refresh-hash").Once()

			// Same identity, username and session handle as the presented token.
			var issuedExpiry time.Time
			f.tokens.EXPECT().GenerateTokens(aliceClaims.Identity(), mock.AnythingOfType("time.Time")).
				Run(func(identity service.Identity, accessExpiresAt time.Time) { issuedExpiry = accessExpiresAt }).
				Return(&service.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil).Once()

			expectTx(t, f.txManager, f.factory)
			f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
			f.factory.EXPECT().NewPrincipalRepository().Return(f.principals)
			f.credRepo.EXPECT().FindCredentialByRefreshHash(ctx, "old-hash").
				Return(&entity.Credential{ID: credentialID, RemoteUserID: 7, RemoteSessionID: "sess-7"}, nil).Once()
			f.principals.EXPECT().FindPrincipalByRemoteUserID(ctx, int64(7)).
				Return(&entity.Principal{RemoteUserID: 7, Login: "alice"}, nil).Once()
			f.credRepo.EXPECT().
				RotateCredentialTokens(ctx, credentialID, "old-hash", "new-access-hash", "new-refresh-hash", mock.AnythingOfType("time.Time")).
				Return(nil).Once()
			f.publisher.EXPECT().PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
				return e.Type == service.AuditCredentialRotated && e.CredentialID == credentialID.String()
			})).Return(nil).Once()

			before := time.Now()
			out, err := f.srv.Rotate(ctx, usecase.RotateInput{RefreshToken: "old-refresh", Days: tt.days})

			require.NoError(t, err)
			assert.Equal(t, "new-access", out.Access)
			assert.Equal(t, "new-refresh", out.Refresh)
			assert.WithinDuration(t, before.Add(tt.want), out.ExpiresAt, 5*time.Second)
			assert.Equal(t, out.ExpiresAt, issuedExpiry)
		})
	}
}

func TestRotationService_Rotate_LosesConcurrentRace(t *testing.T) {
	f := newRotationFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	f.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(aliceClaims, nil).Once()
	f.tokens.EXPECT().HashToken(mock.Anything).Return("h")
	f.tokens.EXPECT().GenerateTokens(mock.Anything, mock.Anything).Return(&service.TokenPair{Access: "a", Refresh: "r"}, nil).Once()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewCredentialRepository().Return(f.credRepo)
	f.factory.EXPECT().NewPrincipalRepository().Return(f.principals)
	f.credRepo.EXPECT().FindCredentialByRefreshHash(ctx, "h").Return(&entity.Credential{ID: credentialID}, nil).Once()
	f.principals.EXPECT().FindPrincipalByRemoteUserID(ctx, int64(7)).Return(&entity.Principal{}, nil).Once()
	f.credRepo.EXPECT().RotateCredentialTokens(ctx, credentialID, "h", "h", "h", mock.Anything).
		Return(repository.ErrCredentialNotFound).Once()

	_, err := f.srv.Rotate(ctx, usecase.RotateInput{RefreshToken: "old-refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
}

func intPtr(v int) *int {
	return &v
}
