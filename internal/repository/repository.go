package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"txlens/internal/chain"
	"txlens/internal/db"
	"txlens/internal/feed"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        error = errors.New("user not found")
	ErrTransactionNotFound error = errors.New("transaction not found")
	ErrUnknownPreload      error = errors.New("unknown preload")
)

type ExplorerRepository struct {
	logs *zap.SugaredLogger
	db   Storage
}

func NewExplorerRepository(logger *zap.SugaredLogger, db Storage) *ExplorerRepository {
	return &ExplorerRepository{
		logs: logger,
		db:   db,
	}
}

func (r *ExplorerRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(
		&Transaction{},
		&Address{},
		&SmartContract{},
		&ContractMethod{},
		&BlockReward{},
		&User{},
	)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *ExplorerRepository) SaveTransactions(ctx context.Context, transactions []chain.Transaction) error {
	rows := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionFromChain(tx))
	}

	err := r.db.SaveToTable(ctx, &rows)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

func (r *ExplorerRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *ExplorerRepository) GetTransactionsByHash(ctx context.Context, txHashes []common.Hash) ([]chain.Transaction, error) {
	hashes := make([]string, 0, len(txHashes))
	for _, h := range txHashes {
		hashes = append(hashes, h.Hex())
	}

	rows := []Transaction{}
	err := r.db.GetAllBy(ctx, "hash", hashes, &rows)
	if err != nil {
		return nil, fmt.Errorf("get transaction by hash: %w", err)
	}

	transactions := make([]chain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.toChain(preloads{}))
	}

	return transactions, nil
}

// GetTransaction loads one transaction together with the requested associations.
func (r *ExplorerRepository) GetTransaction(ctx context.Context, hash common.Hash, preload []string) (chain.Transaction, error) {
	withAssociations, loaded, err := withPreloads(preload)
	if err != nil {
		return chain.Transaction{}, err
	}

	var rows []Transaction
	err = r.db.Find(ctx, false, &rows,
		func(tx *gorm.DB) *gorm.DB { return tx.Where("hash = ?", hash.Hex()) },
		withAssociations,
		limit(1),
	)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	if len(rows) == 0 {
		return chain.Transaction{}, ErrTransactionNotFound
	}

	return rows[0].toChain(loaded), nil
}

// Transactions returns the transactions in which q.Address plays q.Role,
// ordered and cut after q.After the way the feed pages them.
func (r *ExplorerRepository) Transactions(ctx context.Context, q feed.Query) ([]chain.Transaction, error) {
	role, err := byRole(q.Role, q.Address)
	if err != nil {
		return nil, err
	}
	withAssociations, loaded, err := withPreloads(q.Preload)
	if err != nil {
		return nil, err
	}

	var rows []Transaction
	err = r.db.Find(ctx, q.UseReplica, &rows,
		role,
		view(q.Pending),
		inRange(q.Range),
		notDropped,
		transactionsAfter(q.Sort, q.After),
		transactionOrder(q.Sort, q.Pending),
		limit(q.Limit),
		withAssociations,
	)
	if err != nil {
		return nil, fmt.Errorf("query %s transactions: %w", q.Role, err)
	}

	transactions := make([]chain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.toChain(loaded))
	}

	return transactions, nil
}

func (r *ExplorerRepository) Rewards(ctx context.Context, q feed.RewardQuery) ([]chain.RewardEntry, error) {
	var rows []BlockReward
	err := r.db.Find(ctx, q.UseReplica, &rows,
		func(tx *gorm.DB) *gorm.DB { return tx.Where("address_hash = ?", hexAddress(q.Address)) },
		inRange(q.Range),
		rewardsAfter(q.After),
		rewardOrder,
		limit(q.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query block rewards: %w", err)
	}

	rewards := make([]chain.RewardEntry, 0, len(rows))
	for _, row := range rows {
		rewards = append(rewards, row.toChain())
	}

	return rewards, nil
}

func (r *ExplorerRepository) IsRewardRecipient(ctx context.Context, address common.Address) (bool, error) {
	var rows []BlockReward
	err := r.db.Find(ctx, true, &rows,
		func(tx *gorm.DB) *gorm.DB { return tx.Where("address_hash = ?", hexAddress(address)) },
		limit(1),
	)
	if err != nil {
		return false, fmt.Errorf("query block rewards: %w", err)
	}

	return len(rows) > 0, nil
}

// ResolveABI returns the verified ABI of address. For proxies the
// implementation ABI entries are appended. It returns (nil, nil) when the
// contract is not verified.
func (r *ExplorerRepository) ResolveABI(ctx context.Context, address common.Address) (json.RawMessage, error) {
	contract, err := r.smartContract(ctx, hexAddress(address))
	if err != nil || contract == nil {
		return nil, err
	}

	impl := contract.ImplementationAddressHash
	if impl == nil || *impl == contract.AddressHash {
		return json.RawMessage(contract.ABI), nil
	}

	implementation, err := r.smartContract(ctx, *impl)
	if err != nil {
		return nil, err
	}
	if implementation == nil {
		return json.RawMessage(contract.ABI), nil
	}

	combined, err := mergeABIs(contract.ABI, implementation.ABI)
	if err != nil {
		r.logs.Warnw("failed to combine proxy abi",
			"contract", contract.AddressHash,
			"implementation", *impl,
			"error", err)
		return json.RawMessage(contract.ABI), nil
	}

	return combined, nil
}

func (r *ExplorerRepository) smartContract(ctx context.Context, addressHash string) (*SmartContract, error) {
	var contract SmartContract
	err := r.db.GetOneBy(ctx, "address_hash", addressHash, &contract)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get smart contract: %w", err)
	}
	return &contract, nil
}

func (r *ExplorerRepository) MethodCandidates(ctx context.Context, selector [4]byte, max int) ([]json.RawMessage, error) {
	var rows []ContractMethod
	err := r.db.Find(ctx, true, &rows,
		func(tx *gorm.DB) *gorm.DB { return tx.Where("identifier = ?", selector[:]).Order("id ASC") },
		limit(max),
	)
	if err != nil {
		return nil, fmt.Errorf("query contract methods: %w", err)
	}

	entries := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, json.RawMessage(row.ABI))
	}

	return entries, nil
}
