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

import "fmt"

// MaxDisplayLength is the number of characters after which digits are ignored.
const MaxDisplayLength = 10

// Operator is a binary operator that can be pending.
type Operator int

// Operators
const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// ParseOperator accepts the displayed symbols and their ASCII aliases.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "×", "*", "x":
		return Multiply, nil
	case "÷", "/":
		return Divide, nil
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// A State is one of Idle, AwaitingOperand, EnteringOperand or Evaluated.
type State interface {
	isState()
}

// Idle holds the first operand as it is typed. There is no operator yet.
type Idle struct {
	Display string
}

// AwaitingOperand has a pending operation and no second operand typed.
type AwaitingOperand struct {
	Pending  float64
	Operator Operator
}

// EnteringOperand has a pending operation and a partly typed second operand.
type EnteringOperand struct {
	Pending  float64
	Operator Operator
	Display  string
}

// Evaluated shows the formatted result of the last equals.
type Evaluated struct {
	Display string
}

func (Idle) isState()            {}
func (AwaitingOperand) isState() {}
func (EnteringOperand) isState() {}
func (Evaluated) isState()       {}

// Initial returns the state of a freshly opened calculator.
func Initial() State {
	return Idle{Display: "0"}
}

// Display returns the operand text currently being typed or shown.
// It is empty while a second operand is awaited.
func Display(s State) string {
	switch s := s.(type) {
	case Idle:
		return s.Display
	case EnteringOperand:
		return s.Display
	case Evaluated:
		return s.Display
	}
	return ""
}

// PendingValue returns the stored first operand, if any.
func PendingValue(s State) (float64, bool) {
	switch s := s.(type) {
	case AwaitingOperand:
		return s.Pending, true
	case EnteringOperand:
		return s.Pending, true
	}
	return 0, false
}

// PendingOperator returns the operator waiting for its second operand, if any.
func PendingOperator(s State) (Operator, bool) {
	switch s := s.(type) {
	case AwaitingOperand:
		return s.Operator, true
	case EnteringOperand:
		return s.Operator, true
	}
	return 0, false
}

// JustEvaluated reports whether the last action was equals.
func JustEvaluated(s State) bool {
	_, ok := s.(Evaluated)
	return ok
}

// Name returns a short name for logs and debug output.
func Name(s State) string {
	switch s.(type) {
	case Idle:
		return "idle"
	case AwaitingOperand:
		return "awaiting-operand"
	case EnteringOperand:
		return "entering-operand"
	case Evaluated:
		return "evaluated"
	}
	return "unknown"
}
