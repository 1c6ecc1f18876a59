package catalog

import (
	"fmt"

	"github.com/google/cel-go/cel"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/loot"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// ExprCompiler compiles CEL gate expressions over a situational context.
// Programs are cached by source so identical expressions across tables share
// one compiled program.
type ExprCompiler struct {
	env   *cel.Env
	cache *lru.Cache[string, cel.Program]
	flags situation.Resolver
}

// NewExprCompiler creates a compiler with an LRU program cache of size entries
func NewExprCompiler(flags situation.Resolver, size int) (*ExprCompiler, error) {
	env, err := cel.NewEnv(
		cel.Variable(ExprVariable, cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExprEnvFailed, err)
	}
	if size <= 0 {
		size = DefaultProgramCache
	}
	cache, err := lru.New[string, cel.Program](size)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExprCacheFailed, err)
	}
	return &ExprCompiler{env: env, cache: cache, flags: flags}, nil
}

// Program returns the compiled program for expression, compiling on a cache miss.
func (x *ExprCompiler) Program(expression string) (cel.Program, error) {
	if prg, ok := x.cache.Get(expression); ok {
		return prg, nil
	}

	ast, issues := x.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf(ErrMsgExprCompileFailed, issues.Err())
	}
	prg, err := x.env.Program(ast,
		cel.InterruptCheckFrequency(ExprInterruptCheckFrequency),
		cel.CostLimit(ExprCostLimit),
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExprProgramFailed, err)
	}
	x.cache.Add(expression, prg)
	return prg, nil
}

// Len returns the number of cached programs
func (x *ExprCompiler) Len() int {
	return x.cache.Len()
}

// Predicate compiles expression into a gate. Evaluation errors and non-bool
// results make the gate fail rather than abort generation.
func (x *ExprCompiler) Predicate(expression string) (loot.Predicate, error) {
	prg, err := x.Program(expression)
	if err != nil {
		return loot.Predicate{}, err
	}
	return loot.Func(loot.GateExpr+"("+expression+")", func(c *situation.Context) bool {
		out, _, err := prg.Eval(map[string]any{ExprVariable: x.Activation(c)})
		if err != nil {
			logger.Warn(LogMsgExprEvalFailed, "expr", expression, "error", err)
			return false
		}
		ok, isBool := out.Value().(bool)
		if !isBool {
			logger.Warn(LogMsgExprEvalFailed, "expr", expression, "type", out.Type())
			return false
		}
		return ok
	}), nil
}

// Activation exposes the context's facts, evaluated flags and extension values to CEL.
func (x *ExprCompiler) Activation(c *situation.Context) map[string]any {
	flags := make(map[string]bool, len(situation.Flags))
	for _, f := range situation.Flags {
		flags[string(f)] = x.flags.Holds(c, f)
	}
	return map[string]any{
		ExprFieldSubject:        string(c.Subject()),
		ExprFieldCounterpart:    string(c.Counterpart()),
		ExprFieldRank:           c.Rank(),
		ExprFieldLocation:       c.Location(),
		ExprFieldCause:          string(c.Cause()),
		ExprFieldElapsedMinutes: int64(c.ElapsedMinutes()),
		ExprFieldSuccessCount:   int64(c.SuccessCount()),
		ExprFieldSinceNegative:  int64(c.SecondsSinceNegative()),
		ExprFieldContestSeconds: int64(c.ContestSeconds()),
		ExprFieldAllies:         int64(c.Allies()),
		ExprFieldOpponents:      int64(c.Opponents()),
		ExprFieldControlledTask: c.ControlledTask(),
		ExprFieldRestrained:     c.Restrained(),
		ExprFieldContestedZone:  c.ContestedZone(),
		ExprFieldSpecialEvent:   c.SpecialEvent(),
		ExprFieldMultiplier:     c.Multiplier(),
		ExprFieldFlags:          flags,
		ExprFieldExt:            c.ExtValues(),
	}
}
