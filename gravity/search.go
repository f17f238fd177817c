package gravity

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/advent/emulator"
	"github.com/ezrec/advent/intcode"
	"github.com/ezrec/advent/internal"
)

const (
	ADDR_NOUN = 1 // Address overridden by the noun.
	ADDR_VERB = 2 // Address overridden by the verb.

	DEFAULT_GOAL   = "output == 19690720"
	DEFAULT_ANSWER = "100 * noun + verb"
	DEFAULT_MAX    = 99
)

// Alarm runs a copy of mem with the noun and verb overrides applied,
// and returns the value left at address 0.
func Alarm(mem *intcode.Memory, noun, verb uint64, emu *emulator.Emulator) (output uint64, err error) {
	run := mem.Clone()

	err = run.Write(ADDR_NOUN, noun)
	if err != nil {
		return
	}

	err = run.Write(ADDR_VERB, verb)
	if err != nil {
		return
	}

	emu.Reset(run)
	output, err = emu.Run()
	return
}

// Search finds the noun and verb that make a program reach a goal.
//
// Goal and Answer are Starlark expressions, evaluated with the integers
// noun, verb and output predeclared. Goal must be a bool.
type Search struct {
	Verbose bool   // If set, logs each candidate.
	Goal    string // Goal expression; DEFAULT_GOAL if empty.
	Answer  string // Answer expression; DEFAULT_ANSWER if empty.
	MaxNoun uint64 // Largest noun tried.
	MaxVerb uint64 // Largest verb tried.
	Limit   int    // Tick limit per candidate run, 0 for none.
}

// NewSearch creates a search with the default goal, answer and ranges.
func NewSearch() (search *Search) {
	search = &Search{
		Goal:    DEFAULT_GOAL,
		Answer:  DEFAULT_ANSWER,
		MaxNoun: DEFAULT_MAX,
		MaxVerb: DEFAULT_MAX,
	}

	return
}

// env returns the predeclared Starlark names for one candidate.
func env(noun, verb, output uint64) starlark.StringDict {
	return starlark.StringDict{
		"noun":   starlark.MakeUint64(noun),
		"verb":   starlark.MakeUint64(verb),
		"output": starlark.MakeUint64(output),
	}
}

// eval evaluates a named expression for one candidate.
func eval(name, expr string, pred starlark.StringDict) (value starlark.Value, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	value, err = starlark.EvalOptions(&opts, &thread, name, expr, pred)
	if err != nil {
		err = &ErrExpression{Name: name, Expr: expr, Err: err}
	}

	return
}

// Reached evaluates the goal for one candidate.
func (search *Search) Reached(noun, verb, output uint64) (ok bool, err error) {
	expr := search.Goal
	if len(expr) == 0 {
		expr = DEFAULT_GOAL
	}

	value, err := eval("goal", expr, env(noun, verb, output))
	if err != nil {
		return
	}

	st_bool, is_bool := value.(starlark.Bool)
	if !is_bool {
		err = &ErrExpression{Name: "goal", Expr: expr, Err: ErrExprType}
		return
	}

	ok = bool(st_bool)
	return
}

// Score evaluates the answer for one candidate.
func (search *Search) Score(noun, verb, output uint64) (answer uint64, err error) {
	expr := search.Answer
	if len(expr) == 0 {
		expr = DEFAULT_ANSWER
	}

	value, err := eval("answer", expr, env(noun, verb, output))
	if err != nil {
		return
	}

	st_int, ok := value.(starlark.Int)
	if ok {
		answer, ok = st_int.Uint64()
	}
	if !ok {
		err = &ErrExpression{Name: "answer", Expr: expr, Err: ErrExprType}
		return
	}

	return
}

// check parses both expressions so that syntax errors surface before
// any program is run.
func (search *Search) check() (err error) {
	opts := syntax.FileOptions{}
	for name, expr := range map[string]string{"goal": search.Goal, "answer": search.Answer} {
		if len(expr) == 0 {
			continue
		}
		_, err = opts.ParseExpr(name, expr, 0)
		if err != nil {
			err = &ErrExpression{Name: name, Expr: expr, Err: err}
			return
		}
	}

	return
}

// Solve tries every noun and verb, in order, on a fresh copy of mem.
// Candidates whose run faults are skipped. The first candidate that reaches
// the goal is scored. On error, noun, verb and answer are all zero.
func (search *Search) Solve(mem *intcode.Memory) (noun, verb, answer uint64, err error) {
	defer func() {
		if err != nil {
			noun, verb, answer = 0, 0, 0
		}
	}()

	err = search.check()
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(search.Limit)

	candidates := internal.IterProduct(internal.IterRange(0, search.MaxNoun), internal.IterRange(0, search.MaxVerb))
	for n, v := range candidates {
		noun, verb = n, v

		var output uint64
		output, err = Alarm(mem, noun, verb, emu)
		if err != nil {
			if search.Verbose {
				log.Printf("gravity: %d,%d: %v", noun, verb, err)
			}
			continue
		}

		var ok bool
		ok, err = search.Reached(noun, verb, output)
		if err != nil {
			return
		}

		if search.Verbose {
			log.Printf("gravity: %d,%d: output %d, goal %v", noun, verb, output, ok)
		}

		if ok {
			answer, err = search.Score(noun, verb, output)
			return
		}
	}

	err = ErrNoSolution
	return
}
