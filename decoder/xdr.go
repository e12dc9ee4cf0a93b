package decoder

import (
	"fmt"
	"math/big"

	"github.com/stellar/go/xdr"

	"github.com/hedeqiang/beacon/event"
)

// XDR decodes event payloads carried as base64-encoded ScVal XDR.
// ScVal is self-describing, so no schema registration is needed.
type XDR struct{}

// NewXDR creates a new XDR decoder.
func NewXDR() *XDR {
	return &XDR{}
}

// Decode parses every topic and the value payload of the event.
func (d *XDR) Decode(ev event.Event) (*DecodedEvent, error) {
	out := &DecodedEvent{
		Raw:    ev,
		Topics: make([]interface{}, len(ev.Topics)),
	}

	for i, t := range ev.Topics {
		var v xdr.ScVal
		if err := xdr.SafeUnmarshalBase64(t, &v); err != nil {
			return nil, fmt.Errorf("%w: topic %d: %v", ErrDecode, i, err)
		}
		out.Topics[i] = scValToGo(v)

		// Soroban convention: topic 0 is the event name symbol.
		if i == 0 && v.Type == xdr.ScValTypeScvSymbol && v.Sym != nil {
			out.Name = string(*v.Sym)
		}
	}

	if ev.Value != "" {
		var v xdr.ScVal
		if err := xdr.SafeUnmarshalBase64(ev.Value, &v); err != nil {
			return nil, fmt.Errorf("%w: value: %v", ErrDecode, err)
		}
		out.Value = scValToGo(v)
	}

	return out, nil
}

// scValToGo converts an ScVal to a plain Go value. Container types convert
// recursively; types with no natural Go counterpart keep their XDR form.
func scValToGo(v xdr.ScVal) interface{} {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil
	case xdr.ScValTypeScvBool:
		if v.B != nil {
			return *v.B
		}
	case xdr.ScValTypeScvU32:
		if v.U32 != nil {
			return uint32(*v.U32)
		}
	case xdr.ScValTypeScvI32:
		if v.I32 != nil {
			return int32(*v.I32)
		}
	case xdr.ScValTypeScvU64:
		if v.U64 != nil {
			return uint64(*v.U64)
		}
	case xdr.ScValTypeScvI64:
		if v.I64 != nil {
			return int64(*v.I64)
		}
	case xdr.ScValTypeScvTimepoint:
		if v.Timepoint != nil {
			return uint64(*v.Timepoint)
		}
	case xdr.ScValTypeScvDuration:
		if v.Duration != nil {
			return uint64(*v.Duration)
		}
	case xdr.ScValTypeScvU128:
		if v.U128 != nil {
			return u128ToBig(*v.U128)
		}
	case xdr.ScValTypeScvI128:
		if v.I128 != nil {
			return i128ToBig(*v.I128)
		}
	case xdr.ScValTypeScvBytes:
		if v.Bytes != nil {
			return []byte(*v.Bytes)
		}
	case xdr.ScValTypeScvString:
		if v.Str != nil {
			return string(*v.Str)
		}
	case xdr.ScValTypeScvSymbol:
		if v.Sym != nil {
			return string(*v.Sym)
		}
	case xdr.ScValTypeScvVec:
		if v.Vec != nil && *v.Vec != nil {
			vec := **v.Vec
			out := make([]interface{}, len(vec))
			for i, item := range vec {
				out[i] = scValToGo(item)
			}
			return out
		}
	case xdr.ScValTypeScvMap:
		if v.Map != nil && *v.Map != nil {
			m := **v.Map
			out := make(map[string]interface{}, len(m))
			for _, entry := range m {
				out[fmt.Sprint(scValToGo(entry.Key))] = scValToGo(entry.Val)
			}
			return out
		}
	case xdr.ScValTypeScvAddress:
		if v.Address != nil {
			if s, err := v.Address.String(); err == nil {
				return s
			}
		}
	}
	return v
}

func u128ToBig(parts xdr.UInt128Parts) *big.Int {
	hi := new(big.Int).SetUint64(uint64(parts.Hi))
	lo := new(big.Int).SetUint64(uint64(parts.Lo))
	return hi.Lsh(hi, 64).Add(hi, lo)
}

func i128ToBig(parts xdr.Int128Parts) *big.Int {
	hi := big.NewInt(int64(parts.Hi))
	lo := new(big.Int).SetUint64(uint64(parts.Lo))
	return hi.Lsh(hi, 64).Add(hi, lo)
}
