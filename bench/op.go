package bench

import (
	"fmt"
	"strings"
)

// Op identifies a benchmarked primitive.
type Op uint8

const (
	// OpCopy benchmarks memvec.Copy against the builtin copy.
	OpCopy Op = iota
	// OpMove benchmarks memvec.Move against the builtin copy.
	OpMove
	// OpStrLen benchmarks memvec.StrLen against bytes.IndexByte.
	OpStrLen
)

// AllOps lists every operation in report order.
var AllOps = []Op{OpCopy, OpMove, OpStrLen}

// String returns the string representation of an Op.
func (o Op) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpStrLen:
		return "strlen"
	default:
		return "unknown"
	}
}

// Baseline names the standard library function the op is compared with.
func (o Op) Baseline() string {
	switch o {
	case OpCopy, OpMove:
		return "copy"
	case OpStrLen:
		return "bytes.IndexByte"
	default:
		return "unknown"
	}
}

// ParseOp parses an operation name such as "copy" or "StrLen".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copy", "memcpy":
		return OpCopy, nil
	case "move", "memmove":
		return OpMove, nil
	case "strlen":
		return OpStrLen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// ParseOps parses a comma-separated list of operation names. A list
// without any name is an error.
func ParseOps(s string) ([]Op, error) {
	var ops []Op
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := ParseOp(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: no operation in %q", ErrUnknownOp, s)
	}
	return ops, nil
}
