package core

import (
	"context"

	"txlens/internal/chain"
	"txlens/internal/decoder"
	"txlens/internal/feed"
	"txlens/internal/repository"
	tokenIssuer "txlens/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetTransactionsByHash(ctx context.Context, txHashes []common.Hash) ([]chain.Transaction, error)
	GetTransaction(ctx context.Context, hash common.Hash, preload []string) (chain.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []chain.Transaction) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransactions(ctx context.Context, hashes []common.Hash) ([]chain.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name AddressFeed . AddressFeed
type AddressFeed interface {
	AddressTransactions(ctx context.Context, address common.Address, opts feed.Options) (feed.Page, error)
}

//counterfeiter:generate -o fake -fake-name CalldataDecoder . CalldataDecoder
type CalldataDecoder interface {
	Decode(ctx context.Context, tx chain.Transaction, skipSignatureLookup bool, caches *decoder.Caches) decoder.Outcome
	MethodName(ctx context.Context, tx chain.Transaction, caches *decoder.Caches) (string, bool)
}
