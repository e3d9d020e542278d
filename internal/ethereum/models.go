package ethereum

import "txlens/internal/chain"

type TxResult struct {
	Transaction *chain.Transaction
	Error       error
}

// revertedError is stored on transactions whose receipt reports a failure.
const revertedError = "Reverted"
