package handler

import (
	"errors"
	"go-ledger-api/common"
	"go-ledger-api/service"
	"net/http"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// mapDomainError translates typed domain failures into HTTP status codes.
// Anything unrecognized is a storage or programming fault and surfaces as
// a 500 with the given fallback message.
func mapDomainError(err error, fallback string) *common.AppError {
	var (
		notFound     *service.AccountNotFoundError
		duplicate    *service.DuplicateAccountError
		inactive     *service.AccountInactiveError
		mismatch     *service.CurrencyMismatchError
		insufficient *service.InsufficientFundsError
		nonZero      *service.NonZeroBalanceError
	)

	switch {
	case errors.As(err, &notFound):
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.As(err, &duplicate):
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	case errors.As(err, &inactive),
		errors.As(err, &mismatch),
		errors.As(err, &insufficient),
		errors.As(err, &nonZero),
		errors.Is(err, service.ErrSelfTransfer),
		errors.Is(err, service.ErrInvalidAmount):
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
