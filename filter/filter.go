// Package filter compiles expr expressions for narrowing CLI list output.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/breezeops/breezectl/breeze"
)

// Filter is a compiled boolean expression over a list row
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a filter expression, e.g. `FirstName == "John"` or
// `Amount > 100 && Method == "Check"`.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// MatchPerson evaluates the filter against a person record
func (f *Filter) MatchPerson(p breeze.Person) (bool, error) {
	return f.match(map[string]any{
		"ID":        p.ID,
		"FirstName": p.FirstName,
		"LastName":  p.LastName,
		"NickName":  p.NickName,
		"Name":      p.DisplayName(),
	})
}

// MatchContribution evaluates the filter against a contribution record
func (f *Filter) MatchContribution(c breeze.Contribution) (bool, error) {
	amount, _ := strconv.ParseFloat(c.Amount, 64)

	return f.match(map[string]any{
		"ID":        c.ID,
		"PaymentID": c.PaymentID,
		"PersonID":  c.PersonID,
		"Amount":    amount,
		"Method":    c.Method,
		"PaidOn":    c.PaidOn,
		"FirstName": c.FirstName,
		"LastName":  c.LastName,
		"BatchName": c.BatchName,
	})
}

func (f *Filter) match(env map[string]any) (bool, error) {
	for name, fn := range helperFunctions() {
		env[name] = fn
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}
	return matched, nil
}

// helperFunctions returns the helpers available inside expressions
func helperFunctions() map[string]any {
	return map[string]any{
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"hasPrefix": func(s, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
		},
	}
}
