package core

import (
	"context"
	"errors"
	"fmt"

	"txlens/internal/chain"
	"txlens/internal/decoder"
	"txlens/internal/feed"
	"txlens/internal/repository"
	tokenIssuer "txlens/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword   error = errors.New("incorrect password")
	ErrUserNotFound        error = errors.New("user not found")
	ErrTransactionNotFound error = errors.New("transaction not found")
)

// feedPreload is what the method labels of a feed page need.
var feedPreload = []string{"ToAddress", "ToAddress.SmartContract"}

// Explorer serves address feeds, decoded calldata and transaction ingest.
type Explorer struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	ethService EthereumService
	feed       AddressFeed
	decoder    CalldataDecoder
}

func NewExplorer(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	ethereumService EthereumService,
	addressFeed AddressFeed,
	calldataDecoder CalldataDecoder,
) *Explorer {
	return &Explorer{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		ethService: ethereumService,
		feed:       addressFeed,
		decoder:    calldataDecoder,
	}
}

func (e *Explorer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := e.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := e.jwtIssuer.Generate(tokenInfo)
	signed, err := e.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks an access token and returns the user id it was issued to.
func (e *Explorer) ValidateToken(token string) (string, error) {
	claims, err := e.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	userID, err := tokenIssuer.Subject(claims)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	return userID, nil
}

// GetTransactions returns the stored transactions and fetches the missing
// ones from the node, storing them for later requests.
func (e *Explorer) GetTransactions(ctx context.Context, hashes []common.Hash) ([]chain.Transaction, error) {
	transactions, err := e.repo.GetTransactionsByHash(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions from db: %w", err)
	}

	e.logs.Infow("transactions fetched from db", "count", len(transactions))

	if len(transactions) == len(hashes) {
		return transactions, nil
	}

	stored := make(map[common.Hash]struct{}, len(transactions))
	for _, tx := range transactions {
		stored[tx.Hash] = struct{}{}
	}

	missing := make([]common.Hash, 0, len(hashes)-len(transactions))
	for _, hash := range hashes {
		if _, ok := stored[hash]; !ok {
			missing = append(missing, hash)
			stored[hash] = struct{}{}
		}
	}

	fetched, err := e.ethService.FetchTransactions(ctx, missing)
	if err != nil {
		e.logs.Errorw("getting transactions from node", "error", err)
	}

	e.logs.Infow("transactions fetched from ethereum", "count", len(fetched))

	if len(fetched) == 0 {
		return transactions, nil
	}

	if err := e.repo.SaveTransactions(ctx, fetched); err != nil {
		return append(transactions, fetched...), fmt.Errorf("save transactions to db: %w", err)
	}

	return append(transactions, fetched...), nil
}

// AddressTransactions returns one page of the feed of address with a method
// label for each transaction.
func (e *Explorer) AddressTransactions(ctx context.Context, address common.Address, opts feed.Options) (FeedPage, error) {
	if len(opts.Preload) == 0 {
		opts.Preload = feedPreload
	}

	page, err := e.feed.AddressTransactions(ctx, address, opts)
	if err != nil {
		return FeedPage{}, fmt.Errorf("address feed: %w", err)
	}

	caches := decoder.NewCaches()
	entries := make([]FeedEntry, 0, len(page.Items))
	for _, item := range page.Items {
		entry := FeedEntry{
			Transaction: item.Transaction,
			Reward:      item.Reward,
		}
		if item.Transaction != nil {
			if method, ok := e.decoder.MethodName(ctx, *item.Transaction, caches); ok {
				entry.Method = method
			}
		}
		entries = append(entries, entry)
	}

	result := FeedPage{Entries: entries}
	if page.Next != nil {
		result.NextCursor, err = page.Next.Encode()
		if err != nil {
			return FeedPage{}, fmt.Errorf("encode next page cursor: %w", err)
		}
	}

	return result, nil
}

// DecodeTransactionInput decodes the calldata of a stored transaction.
func (e *Explorer) DecodeTransactionInput(ctx context.Context, hash common.Hash) (decoder.Outcome, error) {
	tx, err := e.repo.GetTransaction(ctx, hash, feedPreload)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return decoder.Outcome{}, ErrTransactionNotFound
		}
		return decoder.Outcome{}, fmt.Errorf("get transaction: %w", err)
	}

	outcome := e.decoder.Decode(ctx, tx, false, decoder.NewCaches())

	e.logs.Debugw("transaction input decoded",
		"tx_hash", hash.Hex(),
		"status", outcome.Status())

	return outcome, nil
}
