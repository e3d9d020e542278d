package signature

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid text signature")

// Param is a single ABI input as returned by signature sources.
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
}

// Function is a candidate function description for a method selector.
type Function struct {
	Name   string  `json:"name"`
	Inputs []Param `json:"inputs"`
}

type abiEntry struct {
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Inputs  []Param `json:"inputs"`
	Outputs []Param `json:"outputs"`
}

// ABI returns a contract ABI holding only this function.
func (f Function) ABI() ([]byte, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("%w: function name is empty", ErrInvalidSignature)
	}

	inputs := f.Inputs
	if inputs == nil {
		inputs = []Param{}
	}

	data, err := json.Marshal([]abiEntry{{
		Type:    "function",
		Name:    f.Name,
		Inputs:  inputs,
		Outputs: []Param{},
	}})
	if err != nil {
		return nil, fmt.Errorf("marshal function abi: %w", err)
	}

	return data, nil
}

// ParseTextSignature turns a text signature such as "transfer(address,uint256)" into a Function.
// Argument names are not part of a text signature, so inputs are left unnamed
// and tuple components are named field0, field1 and so on.
func ParseTextSignature(text string) (Function, error) {
	text = strings.TrimSpace(text)
	open := strings.Index(text, "(")
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return Function{}, fmt.Errorf("%w: %q", ErrInvalidSignature, text)
	}

	fn := Function{
		Name:   text[:open],
		Inputs: []Param{},
	}

	args := text[open+1 : len(text)-1]
	if strings.TrimSpace(args) == "" {
		return fn, nil
	}

	for _, typ := range splitTopLevel(args, ',') {
		typ = strings.TrimSpace(typ)
		if typ == "" {
			return Function{}, fmt.Errorf("%w: empty argument in %q", ErrInvalidSignature, text)
		}
		fn.Inputs = append(fn.Inputs, typeToParam(typ, ""))
	}

	return fn, nil
}

func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

func typeToParam(typ string, name string) Param {
	if !strings.HasPrefix(typ, "(") {
		return Param{Name: name, Type: typ}
	}

	depth := 0
	closeIdx := -1
	for i := 0; i < len(typ) && closeIdx < 0; i++ {
		switch typ[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
	}
	if closeIdx < 0 {
		return Param{Name: name, Type: typ}
	}

	// keeps array suffixes such as "[]" or "[3]"
	suffix := typ[closeIdx+1:]
	fields := splitTopLevel(typ[1:closeIdx], ',')
	components := make([]Param, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		components = append(components, typeToParam(field, fmt.Sprintf("field%d", i)))
	}

	return Param{
		Name:       name,
		Type:       "tuple" + suffix,
		Components: components,
	}
}
