package payload

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"txlens/internal/feed"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var (
	numberRegex = regexp.MustCompile(`^[0-9]+$`)
	cursorRegex = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
)

// AddressFeedRequest holds the raw query of an address feed request.
type AddressFeedRequest struct {
	Address   string
	Filter    string
	Sort      string
	Order     string
	PageSize  string
	Cursor    string
	Pending   string
	FromBlock string
	ToBlock   string
}

func NewAddressFeedRequest(address string, query url.Values) AddressFeedRequest {
	return AddressFeedRequest{
		Address:   address,
		Filter:    query.Get("filter"),
		Sort:      query.Get("sort"),
		Order:     query.Get("order"),
		PageSize:  query.Get("page_size"),
		Cursor:    query.Get("cursor"),
		Pending:   query.Get("pending"),
		FromBlock: query.Get("block_from"),
		ToBlock:   query.Get("block_to"),
	}
}

func (a AddressFeedRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&a.Filter, validation.In("from", "to")),
		validation.Field(&a.Sort, validation.In("value", "fee")),
		validation.Field(&a.Order, validation.In("asc", "desc")),
		validation.Field(&a.PageSize, validation.Match(numberRegex)),
		validation.Field(&a.Cursor, validation.Match(cursorRegex)),
		validation.Field(&a.Pending, validation.In("true", "false")),
		validation.Field(&a.FromBlock, validation.Match(numberRegex)),
		validation.Field(&a.ToBlock, validation.Match(numberRegex)),
	)
}

// ToOptions converts a validated request into feed options.
func (a AddressFeedRequest) ToOptions() (common.Address, feed.Options, error) {
	var opts feed.Options
	var err error

	opts.Direction, err = feed.ParseDirection(a.Filter)
	if err != nil {
		return common.Address{}, feed.Options{}, err
	}

	opts.Sort, err = feed.ParseSort(a.Sort, a.Order)
	if err != nil {
		return common.Address{}, feed.Options{}, err
	}

	if a.PageSize != "" {
		opts.PageSize, err = strconv.Atoi(a.PageSize)
		if err != nil {
			return common.Address{}, feed.Options{}, fmt.Errorf("%w: page_size: %w", feed.ErrInvalidOptions, err)
		}
	}

	opts.Pending = a.Pending == "true"

	if a.Cursor != "" {
		opts.After, err = feed.DecodeCursor(a.Cursor)
		if err != nil {
			return common.Address{}, feed.Options{}, err
		}
	}

	opts.Range.From, err = optionalBlock(a.FromBlock)
	if err != nil {
		return common.Address{}, feed.Options{}, err
	}
	opts.Range.To, err = optionalBlock(a.ToBlock)
	if err != nil {
		return common.Address{}, feed.Options{}, err
	}
	if opts.Range.From != nil && opts.Range.To != nil && *opts.Range.From > *opts.Range.To {
		return common.Address{}, feed.Options{}, fmt.Errorf("%w: block_from is after block_to", feed.ErrInvalidOptions)
	}

	opts.UseReplica = true

	return common.HexToAddress(a.Address), opts, nil
}

func optionalBlock(s string) (*uint64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: block number: %w", feed.ErrInvalidOptions, err)
	}
	return &n, nil
}
