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
package calc

import (
	"math"
	"strconv"
	"strings"
)

// InputDigit types a digit. After a result, it starts a new number.
func InputDigit(s State, d rune) State {
	if d < '0' || d > '9' {
		return s
	}
	switch s := s.(type) {
	case Evaluated:
		return Idle{Display: string(d)}
	case AwaitingOperand:
		return EnteringOperand{Pending: s.Pending, Operator: s.Operator, Display: string(d)}
	case EnteringOperand:
		s.Display = appendDigit(s.Display, d)
		return s
	case Idle:
		s.Display = appendDigit(s.Display, d)
		return s
	}
	return Idle{Display: string(d)}
}

func appendDigit(display string, d rune) string {
	if display == "0" || display == "" {
		return string(d)
	}
	if len(display) >= MaxDisplayLength {
		return display
	}
	return display + string(d)
}

// InputDot types a decimal point unless the operand already has one.
func InputDot(s State) State {
	switch s := s.(type) {
	case Evaluated:
		return Idle{Display: "0."}
	case AwaitingOperand:
		return EnteringOperand{Pending: s.Pending, Operator: s.Operator, Display: "0."}
	case EnteringOperand:
		s.Display = appendDot(s.Display)
		return s
	case Idle:
		s.Display = appendDot(s.Display)
		return s
	}
	return Idle{Display: "0."}
}

func appendDot(display string) string {
	if display == "" {
		return "0."
	}
	if strings.Contains(display, ".") {
		return display
	}
	return display + "."
}

// SetOperator commits the current operand and makes op pending.
// A typed second operand is evaluated first, so 2 + 3 × becomes 5 ×.
func SetOperator(s State, op Operator) State {
	switch s := s.(type) {
	case Idle:
		return AwaitingOperand{Pending: parseOperand(s.Display), Operator: op}
	case Evaluated:
		return AwaitingOperand{Pending: parseOperand(s.Display), Operator: op}
	case AwaitingOperand:
		s.Operator = op
		return s
	case EnteringOperand:
		result := Compute(s.Pending, parseOperand(s.Display), s.Operator)
		return AwaitingOperand{Pending: result, Operator: op}
	}
	return AwaitingOperand{Pending: 0, Operator: op}
}

// Equals evaluates the pending operation. Without an operator or a
// second operand it does nothing.
func Equals(s State) State {
	e, ok := s.(EnteringOperand)
	if !ok {
		return s
	}
	result := Compute(e.Pending, parseOperand(e.Display), e.Operator)
	return Evaluated{Display: FormatNumber(result)}
}

// ClearAll returns to the initial state from anywhere.
func ClearAll(State) State {
	return Initial()
}

// Equation renders the preview line shown above the keypad.
func Equation(s State) string {
	switch s := s.(type) {
	case AwaitingOperand:
		return FormatNumberShort(s.Pending) + " " + s.Operator.String()
	case EnteringOperand:
		return FormatNumberShort(s.Pending) + " " + s.Operator.String() + " " + s.Display
	}
	return Display(s)
}

// parseOperand reads a display string. Text that isn't a number, such as
// the division by zero placeholder, reads as NaN.
func parseOperand(display string) float64 {
	v, err := strconv.ParseFloat(display, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
