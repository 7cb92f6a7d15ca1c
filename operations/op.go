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
package operations

import (
	"errors"
	"fmt"

	"github.com/timburks/kiddycalc/calc"
)

// ErrUnknownLabel is returned for a label that isn't on the keypad.
var ErrUnknownLabel = errors.New("unknown button")

// An Operation is the effect of one button.
type Operation interface {
	Apply(s calc.State) calc.State // returns the state after the button press
	Name() string
}

// keypad labels in layout order, row by row
var labels = []string{
	"7", "8", "9", "÷",
	"4", "5", "6", "×",
	"1", "2", "3", "-",
	"C", "0", ".", "+",
	"=",
}

// Labels returns the canonical button labels in keypad order.
func Labels() []string {
	l := make([]string, len(labels))
	copy(l, labels)
	return l
}

// ForLabel returns the operation for a button label.
func ForLabel(label string) (Operation, error) {
	switch label {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return &Digit{Digit: rune(label[0])}, nil
	case ".":
		return &Dot{}, nil
	case "=":
		return &Equals{}, nil
	case "C", "c":
		return &Clear{}, nil
	}
	op, err := calc.ParseOperator(label)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLabel, label)
	}
	return &SetOperator{Operator: op}, nil
}
