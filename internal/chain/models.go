package chain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AddressRole is the role an address plays in a transaction.
type AddressRole uint8

const (
	RoleFrom AddressRole = iota + 1
	RoleTo
	RoleCreatedContract
)

func (r AddressRole) String() string {
	switch r {
	case RoleFrom:
		return "from"
	case RoleTo:
		return "to"
	case RoleCreatedContract:
		return "created_contract"
	default:
		return "unknown"
	}
}

// Contract is the verified-contract metadata of an address.
type Contract struct {
	Address common.Address
	Name    string
}

// Address is the metadata of an account as indexed by the explorer.
type Address struct {
	Hash          common.Address
	ContractCode  []byte
	SmartContract Ref[Contract]
}

func (a Address) HasCode() bool {
	return len(a.ContractCode) > 0
}

type Transaction struct {
	Hash        common.Hash
	BlockNumber *uint64
	BlockHash   *common.Hash
	Index       *uint64
	InsertedAt  time.Time

	From            common.Address
	To              *common.Address
	ToAddress       Ref[Address]
	CreatedContract *common.Address

	Input    []byte
	Value    *big.Int
	Gas      *big.Int
	GasUsed  *big.Int
	GasPrice *big.Int

	Status *uint64
	Error  *string
}

// Pending reports whether the transaction is not yet included in a block.
func (t Transaction) Pending() bool {
	return t.BlockNumber == nil
}

// Fee returns gas_price * (gas_used or gas). The second result is false when
// the fee cannot be computed.
func (t Transaction) Fee() (*big.Int, bool) {
	if t.GasPrice == nil {
		return nil, false
	}
	gas := t.GasUsed
	if gas == nil {
		gas = t.Gas
	}
	if gas == nil {
		return nil, false
	}
	return new(big.Int).Mul(t.GasPrice, gas), true
}

// MethodSelector returns the leading 4 bytes of the calldata.
func (t Transaction) MethodSelector() ([4]byte, bool) {
	var selector [4]byte
	if len(t.Input) < 4 {
		return selector, false
	}
	copy(selector[:], t.Input[:4])
	return selector, true
}

// RewardType discriminates block reward payouts.
type RewardType string

const (
	RewardValidator     RewardType = "validator"
	RewardEmissionFunds RewardType = "emission_funds"
	RewardUncle         RewardType = "uncle"
)

// RewardEntry is a block reward paid to an address.
type RewardEntry struct {
	BlockNumber uint64
	BlockHash   common.Hash
	AddressHash common.Address
	AddressType RewardType
	Reward      *big.Int
}
