package decoder

import (
	"strings"
)

// FailureKind tells why calldata could not be decoded against a verified ABI.
type FailureKind string

const (
	NoToAddress         FailureKind = "no_to_address"
	NotLoaded           FailureKind = "not_loaded"
	NoInputData         FailureKind = "no_input_data"
	NotAContractCall    FailureKind = "not_a_contract_call"
	ContractNotVerified FailureKind = "contract_not_verified"
	ContractVerified    FailureKind = "contract_verified"
	CouldNotDecode      FailureKind = "could_not_decode"
)

type Param struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Call is a method invocation decoded from calldata.
type Call struct {
	MethodID  [4]byte `json:"-"`
	Signature string  `json:"method_call"`
	Params    []Param `json:"parameters"`
}

// Name returns the function name part of the signature.
func (c Call) Name() string {
	name, _, _ := strings.Cut(c.Signature, "(")
	return name
}

// Outcome is the result of a decode. Either Call is set and Failure is empty,
// or Failure is set and Candidates holds zero or more guesses.
type Outcome struct {
	Call       *Call
	Failure    FailureKind
	Candidates []Call
}

func (o Outcome) Decoded() bool {
	return o.Call != nil && o.Failure == ""
}

// Status returns the failure kind or "decoded".
func (o Outcome) Status() string {
	if o.Decoded() {
		return "decoded"
	}
	return string(o.Failure)
}

func failure(kind FailureKind, candidates ...Call) Outcome {
	return Outcome{Failure: kind, Candidates: candidates}
}

func signatureText(name string, params []Param) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type)
		if p.Name != "" {
			b.WriteByte(' ')
			b.WriteString(p.Name)
		}
	}
	b.WriteByte(')')
	return b.String()
}
