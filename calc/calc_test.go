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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press applies a sequence of button labels, one rune per button.
func press(t *testing.T, s State, keys string) State {
	t.Helper()
	for _, k := range keys {
		switch {
		case k >= '0' && k <= '9':
			s = InputDigit(s, k)
		case k == '.':
			s = InputDot(s)
		case k == '=':
			s = Equals(s)
		case k == 'C':
			s = ClearAll(s)
		default:
			op, err := ParseOperator(string(k))
			require.NoError(t, err)
			s = SetOperator(s, op)
		}
	}
	return s
}

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.Equal(t, "0", Display(s))
	_, pending := PendingValue(s)
	assert.False(t, pending)
	_, op := PendingOperator(s)
	assert.False(t, op)
	assert.False(t, JustEvaluated(s))
}

func TestDigitEntry(t *testing.T) {
	tests := []struct {
		keys    string
		display string
	}{
		{"123", "123"},
		{"007", "7"},
		{"0", "0"},
		{".5", "0.5"},
		{"0.5", "0.5"},
		{"1..2", "1.2"},
		{"1.2.3", "1.23"},
		{"12345678901234", "1234567890"},
		{"1234567890.", "1234567890."},
		{"1234567890.1", "1234567890."},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			assert.Equal(t, tt.display, Display(press(t, Initial(), tt.keys)))
		})
	}
}

func TestDigitIgnoresNonDigits(t *testing.T) {
	s := press(t, Initial(), "12")
	assert.Equal(t, s, InputDigit(s, 'a'))
}

func TestChainedOperationsEvaluateLeftToRight(t *testing.T) {
	s := press(t, Initial(), "2+3×4=")
	assert.Equal(t, "20", Display(s))
	assert.True(t, JustEvaluated(s))
}

func TestChainedOperationKeepsFullPrecision(t *testing.T) {
	s := press(t, Initial(), "1÷3+")
	v, ok := PendingValue(s)
	require.True(t, ok)
	assert.Equal(t, 1.0/3, v)
	assert.Equal(t, "0.33 +", Equation(s))
}

func TestEqualsWithoutOperandIsNoOp(t *testing.T) {
	for _, keys := range []string{"", "5", "5+", "5+3=", "5+3=+"} {
		t.Run(keys, func(t *testing.T) {
			before := press(t, Initial(), keys)
			after := Equals(before)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("equals changed state (-before +after):\n%s", diff)
			}
		})
	}
}

func TestDigitAfterResultStartsNewNumber(t *testing.T) {
	s := press(t, Initial(), "5+3=7")
	assert.Equal(t, "7", Display(s))
	assert.False(t, JustEvaluated(s))
	_, pending := PendingValue(s)
	assert.False(t, pending)
}

func TestDotAfterResultStartsNewNumber(t *testing.T) {
	s := press(t, Initial(), "5+3=.")
	assert.Equal(t, Idle{Display: "0."}, s)
}

func TestOperatorAfterResultContinues(t *testing.T) {
	s := press(t, Initial(), "5+3=+2=")
	assert.Equal(t, "10", Display(s))
}

func TestOperatorReplacesPendingOperator(t *testing.T) {
	s := press(t, Initial(), "5+×")
	assert.Equal(t, AwaitingOperand{Pending: 5, Operator: Multiply}, s)
	assert.Equal(t, "10", Display(press(t, s, "2=")))
}

func TestClearAllFromAnyState(t *testing.T) {
	for _, keys := range []string{"", "12.5", "12+", "12+3", "12+3=", "1÷0="} {
		t.Run(keys, func(t *testing.T) {
			s := ClearAll(press(t, Initial(), keys))
			if diff := cmp.Diff(Initial(), s); diff != "" {
				t.Errorf("unexpected state after clear (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	assert.True(t, math.IsNaN(Compute(4, 0, Divide)))
	s := press(t, Initial(), "4÷0=")
	assert.Equal(t, Placeholder, Display(s))

	// the placeholder reads as NaN when used as an operand
	s = press(t, s, "+")
	assert.Equal(t, "Oops! +", Equation(s))
	s = press(t, s, "2=")
	assert.Equal(t, Placeholder, Display(s))
}

func TestNegativeTieRoundsAwayFromZero(t *testing.T) {
	s := press(t, Initial(), "0-24690.0625÷2=")
	assert.Equal(t, "-12345.0313", Display(s))
}

func TestEquationPreview(t *testing.T) {
	tests := []struct {
		keys     string
		equation string
	}{
		{"", "0"},
		{"12", "12"},
		{"12+", "12 +"},
		{"12+3", "12 + 3"},
		{"12-.", "12 - 0."},
		{"12÷4=", "3"},
		{"12345678901×", "1234567890 ×"},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			assert.Equal(t, tt.equation, Equation(press(t, Initial(), tt.keys)))
		})
	}
}

func TestStateAccessors(t *testing.T) {
	s := press(t, Initial(), "8-2")
	assert.Equal(t, EnteringOperand{Pending: 8, Operator: Subtract, Display: "2"}, s)
	v, ok := PendingValue(s)
	assert.True(t, ok)
	assert.Equal(t, 8.0, v)
	op, ok := PendingOperator(s)
	assert.True(t, ok)
	assert.Equal(t, Subtract, op)
	assert.Equal(t, "entering-operand", Name(s))
}

func TestCompute(t *testing.T) {
	assert.Equal(t, 5.0, Compute(2, 3, Add))
	assert.Equal(t, -1.0, Compute(2, 3, Subtract))
	assert.Equal(t, 6.0, Compute(2, 3, Multiply))
	assert.Equal(t, 1.5, Compute(3, 2, Divide))
}

func TestParseOperator(t *testing.T) {
	for s, want := range map[string]Operator{
		"+": Add, "-": Subtract, "×": Multiply, "*": Multiply, "x": Multiply, "÷": Divide, "/": Divide,
	} {
		op, err := ParseOperator(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, op, s)
	}
	_, err := ParseOperator("%")
	assert.Error(t, err)
}

func TestCalculator(t *testing.T) {
	c := NewCalculator()
	c.Perform(transitionFunc(func(s State) State { return InputDigit(s, '9') }))
	assert.Equal(t, "9", c.Display())
	c.Perform(transitionFunc(func(s State) State { return SetOperator(s, Add) }))
	assert.Equal(t, "9 +", c.Equation())
	c.Reset()
	assert.Equal(t, Initial(), c.State())
}

type transitionFunc func(State) State

func (f transitionFunc) Apply(s State) State { return f(s) }
