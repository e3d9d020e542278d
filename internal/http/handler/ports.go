package handler

import (
	"context"
	"net/http"

	"txlens/internal/chain"
	"txlens/internal/core"
	"txlens/internal/decoder"
	"txlens/internal/feed"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) (string, error)
	GetTransactions(ctx context.Context, hashes []common.Hash) ([]chain.Transaction, error)
	AddressTransactions(ctx context.Context, address common.Address, opts feed.Options) (core.FeedPage, error)
	DecodeTransactionInput(ctx context.Context, hash common.Hash) (decoder.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
