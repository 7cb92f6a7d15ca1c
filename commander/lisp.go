//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	"github.com/timburks/kiddycalc/calc"
	"github.com/timburks/kiddycalc/operations"
)

// bindPrimitives makes the calculator functions available to lisp.
// The bindings are global, so the most recently created commander
// receives script calls.
func bindPrimitives(c *Commander) {
	golisp.MakePrimitiveFunction("press", "*", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
			label, err := labelValue(golisp.Car(a))
			if err != nil {
				return nil, err
			}
			if err = c.Press(label); err != nil {
				return nil, err
			}
		}
		return golisp.StringWithValue(c.calculator.Equation()), nil
	})
	golisp.MakePrimitiveFunction("digit", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		val := golisp.Car(args)
		if !golisp.IntegerP(val) || golisp.IntegerValue(val) < 0 || golisp.IntegerValue(val) > 9 {
			return nil, errors.New("digit requires an integer from 0 to 9")
		}
		c.perform(&operations.Digit{Digit: rune('0' + golisp.IntegerValue(val))})
		return golisp.StringWithValue(c.calculator.Equation()), nil
	})
	golisp.MakePrimitiveFunction("op", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		val := golisp.Car(args)
		if !golisp.StringP(val) {
			return nil, errors.New("op requires a string argument")
		}
		operator, err := calc.ParseOperator(golisp.StringValue(val))
		if err != nil {
			return nil, err
		}
		c.perform(&operations.SetOperator{Operator: operator})
		return golisp.StringWithValue(c.calculator.Equation()), nil
	})
	simple := map[string]operations.Operation{
		"dot":    &operations.Dot{},
		"equals": &operations.Equals{},
		"clear":  &operations.Clear{},
	}
	for name, op := range simple {
		op := op
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			c.perform(op)
			return golisp.StringWithValue(c.calculator.Equation()), nil
		})
	}
	golisp.MakePrimitiveFunction("current-display", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(c.calculator.Display()), nil
	})
	golisp.MakePrimitiveFunction("equation", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(c.calculator.Equation()), nil
	})
}

// labelValue accepts a button label as a string or a single digit integer.
func labelValue(d *golisp.Data) (string, error) {
	switch {
	case golisp.StringP(d):
		return golisp.StringValue(d), nil
	case golisp.IntegerP(d):
		return strconv.FormatInt(golisp.IntegerValue(d), 10), nil
	}
	return "", fmt.Errorf("press requires string or integer labels, got %s", golisp.String(d))
}

// ParseEval evaluates a lisp expression and returns its value as text.
func (c *Commander) ParseEval(command string) (string, error) {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", fmt.Errorf("eval %s: %w", command, err)
	}
	c.logger.Debug("evaluated", zap.String("command", command), zap.String("value", golisp.String(value)))
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}
