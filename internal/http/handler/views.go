package handler

import (
	"math/big"
	"time"

	"txlens/internal/chain"
	"txlens/internal/core"
	"txlens/internal/decoder"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type transactionView struct {
	Hash            string    `json:"hash"`
	BlockNumber     *uint64   `json:"block_number"`
	BlockHash       *string   `json:"block_hash"`
	Position        *uint64   `json:"position"`
	InsertedAt      time.Time `json:"inserted_at"`
	From            string    `json:"from"`
	To              *string   `json:"to"`
	CreatedContract *string   `json:"created_contract"`
	Value           string    `json:"value"`
	Gas             *string   `json:"gas_limit"`
	GasUsed         *string   `json:"gas_used"`
	GasPrice        *string   `json:"gas_price"`
	Fee             *string   `json:"fee"`
	RawInput        string    `json:"raw_input"`
	Status          string    `json:"status"`
	Result          *string   `json:"result"`
	Method          *string   `json:"method,omitempty"`
}

type rewardView struct {
	BlockNumber uint64 `json:"block_number"`
	BlockHash   string `json:"block_hash"`
	Address     string `json:"address"`
	Type        string `json:"type"`
	Reward      string `json:"reward"`
}

type feedItemView struct {
	Type        string           `json:"type"`
	Transaction *transactionView `json:"transaction,omitempty"`
	Reward      *rewardView      `json:"reward,omitempty"`
}

type nextPageParams struct {
	Cursor string `json:"cursor"`
}

type feedView struct {
	Items          []feedItemView  `json:"items"`
	NextPageParams *nextPageParams `json:"next_page_params"`
}

type callView struct {
	MethodID   string          `json:"method_id"`
	MethodCall string          `json:"method_call"`
	Parameters []decoder.Param `json:"parameters"`
}

type decodedInputView struct {
	Status string `json:"status"`
	*callView
	Candidates []callView `json:"candidates,omitempty"`
}

func newTransactionView(tx chain.Transaction) transactionView {
	view := transactionView{
		Hash:        tx.Hash.Hex(),
		BlockNumber: tx.BlockNumber,
		Position:    tx.Index,
		InsertedAt:  tx.InsertedAt,
		From:        tx.From.Hex(),
		Value:       "0",
		Gas:         bigString(tx.Gas),
		GasUsed:     bigString(tx.GasUsed),
		GasPrice:    bigString(tx.GasPrice),
		RawInput:    hexutil.Encode(tx.Input),
		Status:      transactionStatus(tx),
		Result:      tx.Error,
	}
	if tx.Value != nil {
		view.Value = tx.Value.String()
	}
	if tx.BlockHash != nil {
		hash := tx.BlockHash.Hex()
		view.BlockHash = &hash
	}
	if tx.To != nil {
		to := tx.To.Hex()
		view.To = &to
	}
	if tx.CreatedContract != nil {
		created := tx.CreatedContract.Hex()
		view.CreatedContract = &created
	}
	if fee, ok := tx.Fee(); ok {
		view.Fee = bigString(fee)
	}
	return view
}

func newRewardView(r chain.RewardEntry) rewardView {
	view := rewardView{
		BlockNumber: r.BlockNumber,
		BlockHash:   r.BlockHash.Hex(),
		Address:     r.AddressHash.Hex(),
		Type:        string(r.AddressType),
		Reward:      "0",
	}
	if r.Reward != nil {
		view.Reward = r.Reward.String()
	}
	return view
}

func transactionStatus(tx chain.Transaction) string {
	switch {
	case tx.Pending():
		return "pending"
	case tx.Error != nil:
		return "error"
	case tx.Status != nil && *tx.Status == 0:
		return "error"
	default:
		return "ok"
	}
}

func newFeedView(page core.FeedPage) feedView {
	view := feedView{Items: make([]feedItemView, 0, len(page.Entries))}
	for _, entry := range page.Entries {
		if entry.Reward != nil {
			reward := newRewardView(*entry.Reward)
			view.Items = append(view.Items, feedItemView{
				Type:   "block_reward",
				Reward: &reward,
			})
			continue
		}

		if entry.Transaction == nil {
			continue
		}
		tx := newTransactionView(*entry.Transaction)
		if entry.Method != "" {
			method := entry.Method
			tx.Method = &method
		}
		view.Items = append(view.Items, feedItemView{Type: "transaction", Transaction: &tx})
	}

	if page.NextCursor != "" {
		view.NextPageParams = &nextPageParams{Cursor: page.NextCursor}
	}
	return view
}

func newCallView(call decoder.Call) callView {
	params := call.Params
	if params == nil {
		params = []decoder.Param{}
	}
	return callView{
		MethodID:   hexutil.Encode(call.MethodID[:]),
		MethodCall: call.Signature,
		Parameters: params,
	}
}

func newDecodedInputView(outcome decoder.Outcome) decodedInputView {
	view := decodedInputView{Status: outcome.Status()}
	if outcome.Decoded() {
		call := newCallView(*outcome.Call)
		view.callView = &call
		return view
	}
	for _, candidate := range outcome.Candidates {
		view.Candidates = append(view.Candidates, newCallView(candidate))
	}
	return view
}

func bigString(n *big.Int) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}
