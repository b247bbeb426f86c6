// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The intcalc binary evaluates a single overflow-aware integer operation at a
// chosen width and signedness, e.g. `intcalc add --type int8 127 1`.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/intarith/intmath"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	typ      string
	manual   bool
	logLevel string
}

func (c *config) strategy() intmath.Strategy {
	if c.manual {
		return intmath.Manual
	}
	return intmath.Intrinsic
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := new(config)

	root := &cobra.Command{
		Use:           "intcalc",
		Short:         "Exact fixed-width integer arithmetic with overflow reporting",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.typ, "type", "int64", "integer type: int8, int16, int32, int64, uint8, uint16, uint32 or uint64")
	flags.BoolVar(&cfg.manual, "manual", false, "detect overflow by comparison against limits instead of wide intrinsics")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "log level written to stderr")

	for _, o := range []struct {
		use, short string
		args       int
	}{
		{"mean a b", "floor((a+b)/2) without overflow", 2},
		{"add a b", "a+b with overflow flag", 2},
		{"sub a b", "a-b with overflow flag", 2},
		{"mul a b", "a*b with overflow flag", 2},
		{"sqrt a", "floor of the square root of a", 1},
		{"muldiv a b den", "(a*b)/den and its remainder, unsigned types only", 3},
		{"ceildiv num den", "ceil(num/den), unsigned types only", 2},
	} {
		name, _, _ := strings.Cut(o.use, " ")
		root.AddCommand(&cobra.Command{
			Use:   o.use,
			Short: o.short,
			Args:  cobra.ExactArgs(o.args),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cfg, name, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			},
		})
	}
	return root
}

// nopCloser lets the logger write to a stream it does not own, e.g. stderr or
// a test buffer.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newLogger(level string, w io.Writer) (logging.Logger, error) {
	lvl, err := logging.ToLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger("intcalc", logging.NewWrappedCore(
		lvl, nopCloser{w}, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			LevelKey:   "level",
		}),
	)), nil
}

func run(cfg *config, op string, args []string, stdout, stderr io.Writer) error {
	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	defer logger.Stop()

	out, err := evaluate(cfg.typ, op, cfg.strategy(), args)
	logger.Debug("Evaluated",
		zap.String("type", cfg.typ),
		zap.String("op", op),
		zap.Strings("args", args),
		zap.Stringer("strategy", cfg.strategy()),
		zap.String("result", out),
		zap.Error(err),
	)
	if errors.Is(err, intmath.ErrDomain) {
		logger.Warn("Domain error", zap.String("op", op), zap.Error(err))
	}
	if out != "" {
		if _, werr := fmt.Fprintln(stdout, out); werr != nil {
			return werr
		}
	}
	return err
}

var (
	errUnknownType    = errors.New("unknown integer type")
	errUnsignedOnly   = errors.New("operation requires an unsigned type")
	errDivisionByZero = errors.New("division by zero")
)

func evaluate(typ, op string, s intmath.Strategy, args []string) (string, error) {
	switch typ {
	case "int8":
		return eval[int8](op, s, args)
	case "int16":
		return eval[int16](op, s, args)
	case "int32":
		return eval[int32](op, s, args)
	case "int64":
		return eval[int64](op, s, args)
	case "uint8":
		return evalUnsigned[uint8](op, s, args)
	case "uint16":
		return evalUnsigned[uint16](op, s, args)
	case "uint32":
		return evalUnsigned[uint32](op, s, args)
	case "uint64":
		return evalUnsigned[uint64](op, s, args)
	default:
		return "", fmt.Errorf("%w %q", errUnknownType, typ)
	}
}

func parseAll[T intmath.Integer](args []string) ([]T, error) {
	vals := make([]T, len(args))
	for i, a := range args {
		v, err := parse[T](a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalUnsigned handles the operations only defined for unsigned types,
// deferring everything else to [eval].
func evalUnsigned[T intmath.Unsigned](op string, s intmath.Strategy, args []string) (string, error) {
	if op != "muldiv" && op != "ceildiv" {
		return eval[T](op, s, args)
	}
	vals, err := parseAll[T](args)
	if err != nil {
		return "", err
	}

	den := vals[len(vals)-1]
	if den == 0 {
		return "", fmt.Errorf("%s: %w", op, errDivisionByZero)
	}
	if op == "ceildiv" {
		return format(intmath.CeilDiv(vals[0], den)), nil
	}
	quo, rem, err := intmath.MulDiv(vals[0], vals[1], den)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Sprintf("%s rem=%s", format(quo), format(rem)), nil
}

func eval[T intmath.Integer](op string, s intmath.Strategy, args []string) (string, error) {
	vals, err := parseAll[T](args)
	if err != nil {
		return "", err
	}

	ops := intmath.Ops[T]{Strategy: s}
	switch op {
	case "mean":
		return format(intmath.Mean(vals[0], vals[1])), nil
	case "add":
		return withOverflow[T](ops.Add(vals[0], vals[1])), nil
	case "sub":
		return withOverflow[T](ops.Sub(vals[0], vals[1])), nil
	case "mul":
		return withOverflow[T](ops.Mul(vals[0], vals[1])), nil
	case "sqrt":
		r, err := intmath.TrySqrt(vals[0])
		return format(r), err
	case "muldiv", "ceildiv":
		return "", fmt.Errorf("%s on %T: %w", op, T(0), errUnsignedOnly)
	default:
		return "", fmt.Errorf("unsupported operation %q", op)
	}
}

func parse[T intmath.Integer](s string) (T, error) {
	if intmath.Signed[T]() {
		v, err := strconv.ParseInt(s, 0, intmath.Bits[T]())
		return T(v), err
	}
	v, err := strconv.ParseUint(s, 0, intmath.Bits[T]())
	return T(v), err
}

func format[T intmath.Integer](v T) string {
	if intmath.Signed[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func withOverflow[T intmath.Integer](v T, overflow bool) string {
	return fmt.Sprintf("%s overflow=%t", format(v), overflow)
}
