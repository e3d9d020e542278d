package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type EthService struct {
	logs   *zap.SugaredLogger
	client EthClient
}

func NewEthService(logger *zap.SugaredLogger, ethClient EthClient) *EthService {
	return &EthService{
		logs:   logger,
		client: ethClient,
	}
}

// FetchTransactions loads the transactions from the node concurrently. It
// returns the transactions it could load together with the joined errors of
// the others.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []common.Hash) ([]chain.Transaction, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	signer := types.LatestSignerForChainID(chainID)

	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash common.Hash) {
			defer wg.Done()
			res := s.getTransactionByHash(ctx, signer, hash)
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hash.Hex(), res.Error)
			}
			resultsChan <- res
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []chain.Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, *result.Transaction)
	}

	if aggrErr != nil {
		s.logs.Warnw("failed to fetch transactions from node",
			"requested", len(hashes),
			"fetched", len(results),
			"error", aggrErr)
	}

	return results, aggrErr
}

func (s *EthService) getTransactionByHash(ctx context.Context, signer types.Signer, hash common.Hash) *TxResult {
	raw, pending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	from, err := types.Sender(signer, raw)
	if err != nil {
		return &TxResult{nil, fmt.Errorf("recover sender: %w", err)}
	}

	tx := chain.Transaction{
		Hash:       raw.Hash(),
		InsertedAt: time.Now().UTC(),
		From:       from,
		To:         raw.To(),
		Input:      raw.Data(),
		Value:      raw.Value(),
		Gas:        new(big.Int).SetUint64(raw.Gas()),
		GasPrice:   raw.GasPrice(),
	}
	if pending {
		return &TxResult{Transaction: &tx}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	applyReceipt(&tx, receipt)

	return &TxResult{Transaction: &tx}
}

func applyReceipt(tx *chain.Transaction, receipt *types.Receipt) {
	blockNumber := receipt.BlockNumber.Uint64()
	blockHash := receipt.BlockHash
	index := uint64(receipt.TransactionIndex)
	status := receipt.Status

	tx.BlockNumber = &blockNumber
	tx.BlockHash = &blockHash
	tx.Index = &index
	tx.Status = &status
	tx.GasUsed = new(big.Int).SetUint64(receipt.GasUsed)

	if receipt.EffectiveGasPrice != nil {
		tx.GasPrice = receipt.EffectiveGasPrice
	}
	if receipt.ContractAddress != (common.Address{}) {
		created := receipt.ContractAddress
		tx.CreatedContract = &created
	}
	if status == types.ReceiptStatusFailed {
		reverted := revertedError
		tx.Error = &reverted
	}
}
