// Package odoo is the JSON-RPC client for the remote business-object backend.
package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"erpgate/config"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/service"
	"erpgate/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	authenticatePath = "/web/session/authenticate"
	callKWPath       = "/web/dataset/call_kw"
	sessionCookie    = "session_id"

	// maxResponseSize caps how much of a backend response is read.
	maxResponseSize = 32 << 20

	// sessionExpiredCode is the JSON-RPC error code the backend uses for a dead session.
	sessionExpiredCode = 100
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      string `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"data"`
}

func (e *rpcError) text() string {
	if e.Data.Message != "" {
		return e.Data.Message
	}

	return e.Message
}

type callParams struct {
	Model  string         `json:"model"`
	Method string         `json:"method"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs"`
}

type authParams struct {
	DB       string `json:"db"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResult struct {
	UID         json.RawMessage `json:"uid"`
	SessionID   string          `json:"session_id"`
	UserContext map[string]any  `json:"user_context"`
}

// Params defines the dependencies of the client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	baseURL    string
	db         string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the backend client from the odoo config section.
func NewClient(params Params) (service.RemoteBackend, error) {
	cfg := params.Config.Odoo
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("odoo.url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		db:      cfg.DB,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}, nil
}

func (c *client) Database() string {
	return c.db
}

func (c *client) Authenticate(ctx context.Context, login, password string) (*entity.RemoteSession, error) {
	resp, body, err := c.post(ctx, authenticatePath, "", authParams{DB: c.db, Login: login, Password: password})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "Remote login rejected",
			slog.String("login", login),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage("remote login returned non-200 status")
	}

	var envelope rpcResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage("remote login returned malformed body")
	}
	if envelope.Error != nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		msg := "remote login returned no result"
		if envelope.Error != nil {
			msg = envelope.Error.text()
		}
		c.logger.WarnContext(ctx, "Remote login failed", slog.String("login", login), slog.String("reason", msg))

		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage(msg)
	}

	var result authResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage("remote login result is malformed")
	}

	uid, ok := decodeID(result.UID)
	if !ok {
		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage("remote login returned no uid")
	}

	sessionID := result.SessionID
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			sessionID = cookie.Value
		}
	}
	if sessionID == "" {
		return nil, domainerrors.ErrRemoteAuthFailed.WrapMessage("remote login returned no session")
	}

	userContext := result.UserContext
	if userContext == nil {
		userContext = map[string]any{}
	}

	return &entity.RemoteSession{
		UserID:      uid,
		SessionID:   sessionID,
		UserContext: userContext,
	}, nil
}

func (c *client) Call(ctx context.Context, sessionID string, call service.RemoteCall) (json.RawMessage, error) {
	args := call.Args
	if args == nil {
		args = []any{}
	}
	kwargs := call.Kwargs
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	resp, body, err := c.post(ctx, callKWPath, sessionID, callParams{
		Model:  call.Model,
		Method: call.Method,
		Args:   args,
		Kwargs: kwargs,
	})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout:
		return nil, domainerrors.ErrRemoteUnavailable.WrapMessage(resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, domainerrors.ErrRemoteBadResponse.WrapMessage(resp.Status)
	}

	var envelope rpcResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domainerrors.ErrRemoteBadResponse.WrapMessage("malformed JSON-RPC body")
	}

	if envelope.Error != nil {
		c.logger.WarnContext(ctx, "Remote call returned error",
			slog.String("model", call.Model),
			slog.String("method", call.Method),
			slog.Int("code", envelope.Error.Code),
			slog.String("name", envelope.Error.Data.Name),
		)

		if envelope.Error.Code == sessionExpiredCode {
			return nil, domainerrors.ErrRemoteAuthFailed.WithMessage("Remote session expired")
		}

		return nil, domainerrors.ErrRemoteCall.WithMessage(envelope.Error.text())
	}

	if envelope.Result == nil {
		return nil, domainerrors.ErrRemoteBadResponse.WrapMessage("JSON-RPC body has neither result nor error")
	}

	return envelope.Result, nil
}

func (c *client) post(ctx context.Context, path, sessionID string, params any) (*http.Response, []byte, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Remote backend unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, nil, domainerrors.ErrRemoteUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, domainerrors.ErrRemoteUnavailable.WrapMessage("reading response: " + err.Error())
	}

	return resp, body, nil
}
