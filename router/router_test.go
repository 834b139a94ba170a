// file: router/router_test.go

package router_test

import (
	"database/sql"
	"demo-bank-api/handler"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"demo-bank-api/repository"
	"demo-bank-api/router"
	"demo-bank-api/service"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type testRouter struct {
	handler http.Handler
	dbMock  sqlmock.Sqlmock
}

func newTestRouter(t *testing.T, opts router.Options) *testRouter {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	accountService := service.NewAccountService(accountRepo, nil)
	authService := service.NewAuthService(accountRepo, service.NewTokenService("router-secret", time.Hour), "DEMO0001")
	transactionService := service.NewTransactionService(db, accountRepo, transactionRepo, accountService, nil)

	h := router.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(accountService),
		handler.NewTransactionHandler(transactionService),
		opts,
	)
	return &testRouter{handler: h, dbMock: dbMock}
}

func (tr *testRouter) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	tr := newTestRouter(t, router.Options{})

	rr := tr.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Server is running"}`, rr.Body.String())
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	tr := newTestRouter(t, router.Options{})

	assert.Equal(t, http.StatusNotFound, tr.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil)).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, tr.do(httptest.NewRequest(http.MethodGet, "/api/transactions/transfer", nil)).Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Run("wildcard allows any origin", func(t *testing.T) {
		tr := newTestRouter(t, router.Options{AllowedOrigins: []string{"*"}})
		req := httptest.NewRequest(http.MethodOptions, "/api/transactions/transfer", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := tr.do(req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		tr := newTestRouter(t, router.Options{AllowedOrigins: []string{"https://bank.example.com"}})

		allowed := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		allowed.Header.Set("Origin", "https://bank.example.com")
		assert.Equal(t, "https://bank.example.com", tr.do(allowed).Header().Get("Access-Control-Allow-Origin"))

		denied := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		denied.Header.Set("Origin", "https://evil.example.com")
		assert.Empty(t, tr.do(denied).Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_BodySizeLimit(t *testing.T) {
	tr := newTestRouter(t, router.Options{MaxBodyBytes: 16})
	body := `{"fromAccountNumber":"DEMO0001","toAccountNumber":"ACC9999","amount":10000}`

	rr := tr.do(httptest.NewRequest(http.MethodPost, "/api/transactions/transfer", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Request body too large"}`, rr.Body.String())
}

func TestRouter_FaceVerifyBodySizeLimit(t *testing.T) {
	tr := newTestRouter(t, router.Options{MaxBodyBytes: 64})
	body := `{"capturedFace":"data:image/png;base64,` + strings.Repeat("A", 256) + `"}`

	rr := tr.do(httptest.NewRequest(http.MethodPost, "/api/auth/face-verify", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Request body too large"}`, rr.Body.String())
	assert.NoError(t, tr.dbMock.ExpectationsWereMet())
}

func TestRouter_ProfileThroughRepository(t *testing.T) {
	tr := newTestRouter(t, router.Options{})
	acc := model.NewDemoAccount("DEMO0001")
	rows := sqlmock.NewRows([]string{"id", "account_number", "full_name", "email", "phone", "face_data", "balance", "created_at"}).
		AddRow(acc.ID.String(), acc.AccountNumber, acc.FullName, acc.Email, acc.Phone, "", "50000.00", time.Now())
	tr.dbMock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE account_number = $1")).
		WithArgs("DEMO0001").
		WillReturnRows(rows)

	rr := tr.do(httptest.NewRequest(http.MethodGet, "/api/user/profile/DEMO0001", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"balance":50000`)
	assert.NoError(t, tr.dbMock.ExpectationsWereMet())
}

func TestRouter_ProfileNotFound(t *testing.T) {
	tr := newTestRouter(t, router.Options{})
	tr.dbMock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE account_number = $1")).
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	rr := tr.do(httptest.NewRequest(http.MethodGet, "/api/user/profile/NOPE", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"User not found"}`, rr.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	tr := newTestRouter(t, router.Options{})

	rr := tr.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/transactions/transfer")
}
