package decoder

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// formatValue renders a value unpacked by go-ethereum's abi package.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case common.Address:
		return hexutil.Encode(v[:])
	case *big.Int:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case []byte:
		return hexutil.Encode(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			raw := make([]byte, rv.Len())
			for i := range raw {
				raw[i] = byte(rv.Index(i).Uint())
			}
			return hexutil.Encode(raw)
		}
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Struct:
		fields := make([]string, rv.NumField())
		for i := range fields {
			fields[i] = formatValue(rv.Field(i).Interface())
		}
		return "(" + strings.Join(fields, ", ") + ")"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	return fmt.Sprintf("%v", value)
}
