package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"erpgate/config"
	"erpgate/internal/delivery/api/middleware"
	"erpgate/internal/delivery/api/response"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	errNotAnObject  = errors.New("body is not a JSON object")
	errTrailingData = errors.New("body has data after the JSON object")
)

// ResolverHandlerParams holds dependencies for ResolverHandler, injected by Fx.
type ResolverHandlerParams struct {
	fx.In

	ResolverUC usecase.ResolverUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ResolverHandler serves the generic /v1/auto routes.
type ResolverHandler struct {
	resolverUC         usecase.ResolverUsecase
	trustForwardedHost bool
	logger             *slog.Logger
}

// NewResolverHandler is the constructor for ResolverHandler.
func NewResolverHandler(params ResolverHandlerParams) *ResolverHandler {
	return &ResolverHandler{
		resolverUC:         params.ResolverUC,
		trustForwardedHost: params.Config.HTTP.TrustForwardedHost,
		logger:             params.Logger,
	}
}

// Resolve decodes /v1/auto/:channel/:resourceType/:action[/:resourceId] and forwards it.
// The HTTP method does not select the operation; the action segment does.
func (h *ResolverHandler) Resolve(c echo.Context) error {
	credential, ok := middleware.GetCredential(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	input := usecase.ResolveInput{
		Credential:   credential,
		Host:         middleware.RequestHost(c, h.trustForwardedHost),
		Channel:      c.Param("channel"),
		ResourceType: c.Param("resourceType"),
		Action:       c.Param("action"),
	}

	if raw := c.Param("resourceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("resource id must be a positive integer"))
		}
		input.ResourceID = &id
	}

	body, err := decodeObjectBody(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return err
		}

		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object"))
	}
	input.Body = body

	out, err := h.resolverUC.Resolve(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Resolved(c, out.RemoteMethod, out.Result)
}

// decodeObjectBody reads exactly one JSON object, keeping numbers verbatim.
// An empty body is an empty object; anything but whitespace after the object is rejected.
func decodeObjectBody(r io.Reader) (map[string]any, error) {
	if r == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errNotAnObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return body, nil
}
