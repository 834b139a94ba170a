package router

import (
	_ "demo-bank-api/docs"
	"demo-bank-api/handler"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options configures the middleware stack around the routes.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

func NewRouter(authHandler *handler.AuthHandler, userHandler *handler.UserHandler, transactionHandler *handler.TransactionHandler, opts Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handler.HealthCheck)

	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/auth/face-verify", handler.ErrorHandlingMiddleware(authHandler.FaceVerify))

	mux.Handle("GET /api/user/profile/{accountNumber}", handler.ErrorHandlingMiddleware(userHandler.GetProfile))

	mux.Handle("POST /api/transactions/transfer", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))
	mux.Handle("GET /api/transactions/history/{accountNumber}", handler.ErrorHandlingMiddleware(transactionHandler.ListHistory))

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})

	var h http.Handler = mux
	h = corsHandler(h)
	if opts.MaxBodyBytes > 0 {
		h = middleware.RequestSize(opts.MaxBodyBytes)(h)
	}
	h = handler.RequestLogger(h)
	h = middleware.Recoverer(h)
	h = middleware.RequestID(h)
	return h
}
