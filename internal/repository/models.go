package repository

import (
	"encoding/json"
	"math/big"
	"strings"
	"time"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	Hash             string  `gorm:"primaryKey;size:66"` // 0x + 64 hex chars
	BlockNumber      *uint64 `gorm:"index"`              // nil while pending
	BlockHash        *string `gorm:"size:66"`
	TransactionIndex *uint64
	InsertedAt       time.Time `gorm:"autoCreateTime;index"`

	FromAddressHash            string  `gorm:"size:42;not null;index"`
	ToAddressHash              *string `gorm:"size:42;index"`
	CreatedContractAddressHash *string `gorm:"size:42;index"`

	Input    []byte              `gorm:"type:bytea;not null"`
	Value    decimal.Decimal     `gorm:"type:numeric(100,0);not null"` // wei
	Gas      decimal.Decimal     `gorm:"type:numeric(100,0);not null"`
	GasUsed  decimal.NullDecimal `gorm:"type:numeric(100,0)"`
	GasPrice decimal.NullDecimal `gorm:"type:numeric(100,0)"`

	Status *uint64
	Error  *string

	ToAddress *Address `gorm:"foreignKey:ToAddressHash;references:Hash"`
}

type Address struct {
	Hash          string         `gorm:"primaryKey;size:42"`
	ContractCode  []byte         `gorm:"type:bytea"`
	SmartContract *SmartContract `gorm:"foreignKey:AddressHash;references:Hash"`
}

type SmartContract struct {
	AddressHash string `gorm:"primaryKey;size:42"`
	Name        string `gorm:"not null"`
	ABI         string `gorm:"type:jsonb;not null"`
	// ImplementationAddressHash is set for proxies.
	ImplementationAddressHash *string `gorm:"size:42"`
}

// ContractMethod is a single-function ABI entry indexed by its selector.
type ContractMethod struct {
	ID         uint   `gorm:"primaryKey"`
	Identifier []byte `gorm:"type:bytea;not null;index"`
	ABI        string `gorm:"type:jsonb;not null"`
}

type BlockReward struct {
	AddressHash string          `gorm:"primaryKey;size:42"`
	AddressType string          `gorm:"primaryKey;size:32"`
	BlockHash   string          `gorm:"primaryKey;size:66"`
	BlockNumber uint64          `gorm:"not null;index"`
	Reward      decimal.Decimal `gorm:"type:numeric(100,0);not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// preloads tells which associations were requested, so that a missing row
// can be told apart from one that was never loaded.
type preloads struct {
	toAddress     bool
	smartContract bool
}

func (t Transaction) toChain(p preloads) chain.Transaction {
	tx := chain.Transaction{
		Hash:        common.HexToHash(t.Hash),
		BlockNumber: t.BlockNumber,
		Index:       t.TransactionIndex,
		InsertedAt:  t.InsertedAt,
		From:        common.HexToAddress(t.FromAddressHash),
		To:          toAddressPtr(t.ToAddressHash),
		ToAddress:   chain.Unresolved[chain.Address](),

		CreatedContract: toAddressPtr(t.CreatedContractAddressHash),
		Input:           t.Input,
		Value:           t.Value.BigInt(),
		Gas:             t.Gas.BigInt(),
		GasUsed:         nullBigInt(t.GasUsed),
		GasPrice:        nullBigInt(t.GasPrice),
		Status:          t.Status,
		Error:           t.Error,
	}
	if t.BlockHash != nil {
		h := common.HexToHash(*t.BlockHash)
		tx.BlockHash = &h
	}

	if p.toAddress {
		if t.ToAddress == nil {
			tx.ToAddress = chain.Absent[chain.Address]()
		} else {
			tx.ToAddress = chain.Resolved(t.ToAddress.toChain(p.smartContract))
		}
	}

	return tx
}

func (a Address) toChain(smartContractLoaded bool) chain.Address {
	addr := chain.Address{
		Hash:          common.HexToAddress(a.Hash),
		ContractCode:  a.ContractCode,
		SmartContract: chain.Unresolved[chain.Contract](),
	}

	if smartContractLoaded {
		if a.SmartContract == nil {
			addr.SmartContract = chain.Absent[chain.Contract]()
		} else {
			addr.SmartContract = chain.Resolved(chain.Contract{
				Address: common.HexToAddress(a.SmartContract.AddressHash),
				Name:    a.SmartContract.Name,
			})
		}
	}

	return addr
}

func transactionFromChain(tx chain.Transaction) Transaction {
	t := Transaction{
		Hash:                       tx.Hash.Hex(),
		BlockNumber:                tx.BlockNumber,
		TransactionIndex:           tx.Index,
		InsertedAt:                 tx.InsertedAt,
		FromAddressHash:            hexAddress(tx.From),
		ToAddressHash:              hexAddressPtr(tx.To),
		CreatedContractAddressHash: hexAddressPtr(tx.CreatedContract),
		Input:                      tx.Input,
		Value:                      toDecimal(tx.Value),
		Gas:                        toDecimal(tx.Gas),
		GasUsed:                    toNullDecimal(tx.GasUsed),
		GasPrice:                   toNullDecimal(tx.GasPrice),
		Status:                     tx.Status,
		Error:                      tx.Error,
	}
	if t.Input == nil {
		t.Input = []byte{}
	}
	if tx.BlockHash != nil {
		h := tx.BlockHash.Hex()
		t.BlockHash = &h
	}
	return t
}

func (r BlockReward) toChain() chain.RewardEntry {
	return chain.RewardEntry{
		BlockNumber: r.BlockNumber,
		BlockHash:   common.HexToHash(r.BlockHash),
		AddressHash: common.HexToAddress(r.AddressHash),
		AddressType: chain.RewardType(r.AddressType),
		Reward:      r.Reward.BigInt(),
	}
}

// mergeABIs appends the entries of the implementation ABI to the proxy ABI.
func mergeABIs(proxy, implementation string) (json.RawMessage, error) {
	var entries, implEntries []json.RawMessage
	if err := json.Unmarshal([]byte(proxy), &entries); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(implementation), &implEntries); err != nil {
		return nil, err
	}
	return json.Marshal(append(entries, implEntries...))
}

// hexAddress is the stored form of an address: lowercase 0x-prefixed hex.
func hexAddress(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func hexAddressPtr(a *common.Address) *string {
	if a == nil {
		return nil
	}
	s := hexAddress(*a)
	return &s
}

func toAddressPtr(s *string) *common.Address {
	if s == nil {
		return nil
	}
	a := common.HexToAddress(*s)
	return &a
}

func toDecimal(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

func toNullDecimal(v *big.Int) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromBigInt(v, 0))
}

func nullBigInt(d decimal.NullDecimal) *big.Int {
	if !d.Valid {
		return nil
	}
	return d.Decimal.BigInt()
}
