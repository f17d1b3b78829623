package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sitd/config"
	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/delivery/http/middleware"
	"sitd/internal/delivery/http/router"
	"sitd/internal/delivery/http/router/handler"
	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/domain/service"
	"sitd/internal/infra/auth"
	"sitd/internal/infra/metrics"
	mockRepo "sitd/internal/mocks/repository"
	mockUsecase "sitd/internal/mocks/usecase"
	"sitd/internal/usecase"
	"sitd/internal/usecase/impl"
)

type apiFixtures struct {
	echo       *echo.Echo
	tokens     service.TokenService
	userRepo   *mockRepo.MockUserRepository
	authUC     *mockUsecase.MockAuthUsecase
	merchantUC *mockUsecase.MockMerchantUsecase
	eventUC    *mockUsecase.MockEventUsecase
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.JWT = config.JWTConfig{Secret: "test_secret", Algorithm: "HS256", ExpireMinutes: 60}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Namespace: "sitd_test", Path: "/metrics"}

	return cfg
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.DiscardHandler)
	m := metrics.New(cfg)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	guard := impl.NewAccessGuard(impl.AccessGuardParams{
		UserRepo:     userRepo,
		TokenService: tokens,
		Metrics:      m,
		Logger:       logger,
	})

	authUC := mockUsecase.NewMockAuthUsecase(t)
	merchantUC := mockUsecase.NewMockMerchantUsecase(t)
	eventUC := mockUsecase.NewMockEventUsecase(t)

	e := NewEcho(cfg, logger, m)
	router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(authUC),
		MerchantHandler: handler.NewMerchantHandler(merchantUC),
		EventHandler:    handler.NewEventHandler(eventUC),
		AuthMiddleware:  middleware.NewAuthMiddleware(guard),
		Metrics:         m,
		Config:          cfg,
	}).RegisterRoutes(e)

	return apiFixtures{
		echo:       e,
		tokens:     tokens,
		userRepo:   userRepo,
		authUC:     authUC,
		merchantUC: merchantUC,
		eventUC:    eventUC,
	}
}

// loginAs issues a token for a stored user with the given role.
func (fx apiFixtures) loginAs(t *testing.T, id int64, role entity.Role) string {
	t.Helper()

	email := role.String() + "@example.com"
	token, err := fx.tokens.IssueDefault(email, role.String())
	require.NoError(t, err)

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, email).
		Return(&entity.User{ID: id, Email: email, Role: role}, nil).
		Maybe()

	return token
}

func (fx apiFixtures) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	return data
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)

	return env
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-42")
	rec := fx.do(req, "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "trace-42", env.Meta.RequestID)
	assert.Equal(t, "trace-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Register(t *testing.T) {
	fx := createTestAPI(t)
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	fx.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "New@Example.com", Password: "longenough"}).
		Return(&entity.User{ID: 1, Email: "new@example.com", PasswordHash: "$secret$", Role: entity.RoleUser, CreatedAt: created}, nil)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", `{"email":"New@Example.com","password":"longenough"}`), "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "$secret$")
	user := decodeData[handler.UserResponse](t, rec)
	assert.Equal(t, handler.UserResponse{ID: 1, Email: "new@example.com", Role: "user", CreatedAt: created}, user)
}

func TestAPI_Register_RequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "bad email", body: `{"email":"not-an-email","password":"longenough"}`, field: "email"},
		{name: "short password", body: `{"email":"a@b.com","password":"short"}`, field: "password"},
		{name: "missing password", body: `{"email":"a@b.com"}`, field: "password"},
		{name: "role too long", body: `{"email":"a@b.com","password":"longenough","role":"` + strings.Repeat("r", 51) + `"}`, field: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)

			rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", tt.body), "")

			env := assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.field+`"`)
			assert.NotNil(t, env.Error.Details)
		})
	}
}

func TestAPI_Register_AcceptsRoleUpToColumnWidth(t *testing.T) {
	fx := createTestAPI(t)
	role := strings.Repeat("r", 50)

	fx.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "a@b.com", Password: "longenough", Role: role}).
		Return(&entity.User{ID: 2, Email: "a@b.com", Role: entity.Role(role)}, nil)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"longenough","role":"`+role+`"}`), "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, role, decodeData[handler.UserResponse](t, rec).Role)
}

func TestAPI_Register_MalformedJSON(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", `{"email":`), "")

	assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_Register_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "duplicate",
			err:     errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user"),
			status:  http.StatusConflict,
			code:    "USER_ALREADY_EXISTS",
			message: "email already registered",
		},
		{
			name:    "password over byte limit",
			err:     errors.WithStack(domainerrors.ErrPasswordTooLong),
			status:  http.StatusBadRequest,
			code:    "VALIDATION_FAILED",
			message: "password cannot be longer than 72 bytes",
		},
		{
			name:    "storage down",
			err:     domainerrors.NewDatabaseExecuteError(errors.New("dial tcp: refused"), "failed to create user"),
			status:  http.StatusServiceUnavailable,
			code:    "STORAGE_UNAVAILABLE",
			message: "storage is temporarily unavailable",
		},
		{
			name:    "unexpected",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			// 37 two-byte runes pass the character limit but not the byte limit.
			body := `{"email":"a@b.com","password":"` + strings.Repeat("é", 37) + `"}`
			rec := fx.do(jsonRequest(http.MethodPost, "/auth/register", body), "")

			env := assertError(t, rec, tt.status, tt.code)
			assert.Equal(t, tt.message, env.Error.Message)
			assert.NotContains(t, rec.Body.String(), "dial tcp")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestAPI_Token_Form(t *testing.T) {
	fx := createTestAPI(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "User@Example.com", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "tok", TokenType: usecase.TokenTypeBearer, ExpiresIn: 3600}, nil)

	form := url.Values{"username": {"User@Example.com"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := fx.do(req, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer","expires_in":3600}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func TestAPI_Token_JSON(t *testing.T) {
	fx := createTestAPI(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@b.com", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "tok", TokenType: usecase.TokenTypeBearer, ExpiresIn: 60}, nil)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/token", `{"username":"a@b.com","password":"pw"}`), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer","expires_in":60}`, rec.Body.String())
}

func TestAPI_Token_InvalidCredentials(t *testing.T) {
	fx := createTestAPI(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/token", `{"username":"a@b.com","password":"wrong"}`), "")

	env := assertError(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	assert.Nil(t, env.Error.Details)
}

func TestAPI_Token_MissingFields(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/auth/token", `{"username":"a@b.com"}`), "")

	assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_Me(t *testing.T) {
	fx := createTestAPI(t)
	token := fx.loginAs(t, 12, entity.RoleMerchant)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), token)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decodeData[handler.UserResponse](t, rec)
	assert.Equal(t, int64(12), user.ID)
	assert.Equal(t, "merchant@example.com", user.Email)
	assert.Equal(t, "merchant", user.Role)
}

func TestAPI_Me_AuthFailures(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := createTestAPI(t)
		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), "")
		assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		fx := createTestAPI(t)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwdw==")
		rec := fx.do(req, "")
		assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})

	t.Run("garbage token", func(t *testing.T) {
		fx := createTestAPI(t)
		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), "not.a.jwt")
		env := assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
		assert.Nil(t, env.Error.Details)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestAPI(t)
		token, err := fx.tokens.Issue("a@b.com", "user", -time.Minute)
		require.NoError(t, err)

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), token)
		assertError(t, rec, http.StatusUnauthorized, "TOKEN_EXPIRED")
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAPI(t)
		token, err := fx.tokens.IssueDefault("gone@example.com", "user")
		require.NoError(t, err)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), token)
		assertError(t, rec, http.StatusUnauthorized, "USER_NOT_FOUND")
	})

	t.Run("storage down", func(t *testing.T) {
		fx := createTestAPI(t)
		token, err := fx.tokens.IssueDefault("a@b.com", "user")
		require.NoError(t, err)
		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, "a@b.com").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to find user by email"))

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil), token)
		env := assertError(t, rec, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE")
		assert.Nil(t, env.Error.Details)
	})
}

func TestAPI_AdminPing(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/admin/ping", nil), fx.loginAs(t, 1, entity.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"ok":true,"msg":"pong from admin"}`, string(decode(t, rec).Data))

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/admin/ping", nil), fx.loginAs(t, 2, entity.RoleUser))
	assertError(t, rec, http.StatusForbidden, "FORBIDDEN")
}

func TestAPI_ListMerchants(t *testing.T) {
	fx := createTestAPI(t)
	description := "Tacos"
	created := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	fx.merchantUC.EXPECT().
		ListMerchants(mock.Anything, entity.PageRequest{Page: 2, PageSize: 5}).
		Return(&entity.Page[*entity.Merchant]{
			Items:    []*entity.Merchant{{ID: 6, Name: "El Rey", Description: &description, CreatedAt: created}},
			Total:    6,
			Page:     2,
			PageSize: 5,
		}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants?page=2&page_size=5", nil), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"items": [{"id": 6, "name": "El Rey", "description": "Tacos", "created_at": "2026-02-02T00:00:00Z"}],
		"pagination": {"page": 2, "page_size": 5, "total": 6}
	}`, string(decode(t, rec).Data))
}

func TestAPI_ListMerchants_Defaults(t *testing.T) {
	fx := createTestAPI(t)

	fx.merchantUC.EXPECT().
		ListMerchants(mock.Anything, entity.PageRequest{}).
		Return(&entity.Page[*entity.Merchant]{Page: 1, PageSize: 20}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants", nil), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"items": [], "pagination": {"page": 1, "page_size": 20, "total": 0}}`, string(decode(t, rec).Data))
}

func TestAPI_ListMerchants_BadPaging(t *testing.T) {
	for _, query := range []string{"page=0&page_size=500", "page=-1", "page=abc"} {
		t.Run(query, func(t *testing.T) {
			fx := createTestAPI(t)
			rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants?"+query, nil), "")
			assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestAPI_CreateMerchant(t *testing.T) {
	fx := createTestAPI(t)

	fx.merchantUC.EXPECT().
		CreateMerchant(mock.Anything, &usecase.CreateMerchantInput{Name: "Cafe"}).
		Return(&entity.Merchant{ID: 3, Name: "Cafe"}, nil)

	rec := fx.do(jsonRequest(http.MethodPost, "/merchants", `{"name":"Cafe"}`), fx.loginAs(t, 1, entity.RoleAdmin))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(3), decodeData[handler.MerchantResponse](t, rec).ID)
}

func TestAPI_CreateMerchant_Guarded(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/merchants", `{"name":"Cafe"}`), "")
	assertError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")

	rec = fx.do(jsonRequest(http.MethodPost, "/merchants", `{"name":"Cafe"}`), fx.loginAs(t, 2, entity.RoleMerchant))
	assertError(t, rec, http.StatusForbidden, "FORBIDDEN")
}

func TestAPI_GetMerchant(t *testing.T) {
	fx := createTestAPI(t)

	fx.merchantUC.EXPECT().GetMerchant(mock.Anything, int64(7)).Return(&entity.Merchant{ID: 7, Name: "Seven"}, nil)
	fx.merchantUC.EXPECT().
		GetMerchant(mock.Anything, int64(8)).
		Return(nil, errors.Wrapf(domainerrors.ErrMerchantNotFound, "merchant %d", 8))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants/7", nil), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Seven", decodeData[handler.MerchantResponse](t, rec).Name)

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/merchants/8", nil), "")
	assertError(t, rec, http.StatusNotFound, "MERCHANT_NOT_FOUND")

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/merchants/abc", nil), "")
	assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_MerchantQRCode(t *testing.T) {
	fx := createTestAPI(t)
	png := []byte("\x89PNG\r\n\x1a\n")

	fx.merchantUC.EXPECT().MerchantQRCode(mock.Anything, int64(7)).Return(png, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants/7/qr", nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_ResolveMerchantQR(t *testing.T) {
	fx := createTestAPI(t)
	link := "http://localhost:5173/merchants/7"

	fx.merchantUC.EXPECT().ResolveMerchantQR(mock.Anything, link).Return(&entity.Merchant{ID: 7, Name: "Seven"}, nil)
	fx.merchantUC.EXPECT().
		ResolveMerchantQR(mock.Anything, "not a link").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("data is not a merchant link"))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/merchants/qr/resolve?data="+url.QueryEscape(link), nil), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(7), decodeData[handler.MerchantResponse](t, rec).ID)

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/merchants/qr/resolve?data="+url.QueryEscape("not a link"), nil), "")
	env := assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "data is not a merchant link", env.Error.Details)

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/merchants/qr/resolve", nil), "")
	assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_ListEvents_FilterByMerchant(t *testing.T) {
	fx := createTestAPI(t)
	merchantID := int64(3)

	fx.eventUC.EXPECT().
		ListEvents(mock.Anything, &usecase.ListEventsInput{
			Page:       entity.PageRequest{Page: 1, PageSize: 10},
			MerchantID: &merchantID,
		}).
		Return(&entity.Page[*entity.Event]{
			Items:    []*entity.Event{{ID: 4, MerchantID: &merchantID, Title: "Jazz"}},
			Total:    1,
			Page:     1,
			PageSize: 10,
		}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/events?merchant_id=3&page=1&page_size=10", nil), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"title":"Jazz"`)
	assert.Contains(t, rec.Body.String(), `"merchant_id":3`)
}

func TestAPI_CreateEvent(t *testing.T) {
	fx := createTestAPI(t)
	start := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	merchantID := int64(3)

	fx.eventUC.EXPECT().
		CreateEvent(mock.Anything, &usecase.CreateEventInput{Title: "Gig", MerchantID: &merchantID, StartsAt: &start}).
		Return(&entity.Event{ID: 9, Title: "Gig", MerchantID: &merchantID, StartsAt: &start}, nil)

	body := `{"title":"Gig","merchant_id":3,"starts_at":"2026-07-01T20:00:00Z"}`
	rec := fx.do(jsonRequest(http.MethodPost, "/events", body), fx.loginAs(t, 5, entity.RoleMerchant))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(9), decodeData[handler.EventResponse](t, rec).ID)
}

func TestAPI_CreateEvent_Errors(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(jsonRequest(http.MethodPost, "/events", `{"title":"Gig"}`), fx.loginAs(t, 2, entity.RoleUser))
	assertError(t, rec, http.StatusForbidden, "FORBIDDEN")

	fx.eventUC.EXPECT().
		CreateEvent(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("merchant does not exist"))

	rec = fx.do(jsonRequest(http.MethodPost, "/events", `{"title":"Gig","merchant_id":404}`), fx.loginAs(t, 1, entity.RoleAdmin))
	env := assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "merchant does not exist", env.Error.Details)

	rec = fx.do(jsonRequest(http.MethodPost, "/events", `{"title":""}`), fx.loginAs(t, 1, entity.RoleAdmin))
	assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_Metrics(t *testing.T) {
	fx := createTestAPI(t)

	fx.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")
	rec := fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sitd_test_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/nope", nil), "")

	assertError(t, rec, http.StatusNotFound, "NOT_FOUND")
}
