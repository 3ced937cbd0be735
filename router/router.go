package router

import (
	"go-ledger-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(accountHandler *handler.AccountHandler, transferHandler *handler.TransferHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	mux.Handle("GET /accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /accounts/search", handler.ErrorHandlingMiddleware(accountHandler.SearchAccounts))
	mux.Handle("GET /accounts/{id}", handler.ErrorHandlingMiddleware(accountHandler.GetAccountByID))
	mux.Handle("DELETE /accounts/{id}", handler.ErrorHandlingMiddleware(accountHandler.DeleteAccount))
	mux.Handle("GET /accounts/number/{accountNumber}", handler.ErrorHandlingMiddleware(accountHandler.GetAccountByNumber))
	mux.Handle("PUT /accounts/number/{accountNumber}", handler.ErrorHandlingMiddleware(accountHandler.UpdateAccount))
	mux.Handle("GET /accounts/number/{accountNumber}/details", handler.ErrorHandlingMiddleware(accountHandler.GetAccountDetails))
	mux.Handle("POST /accounts/transfer", handler.ErrorHandlingMiddleware(transferHandler.CreateTransfer))

	return mux
}
