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
	"github.com/timburks/kiddycalc/calc"
)

// Digit

type Digit struct {
	Digit rune
}

func (op *Digit) Apply(s calc.State) calc.State {
	return calc.InputDigit(s, op.Digit)
}

func (op *Digit) Name() string {
	return "digit " + string(op.Digit)
}

// Dot

type Dot struct{}

func (op *Dot) Apply(s calc.State) calc.State {
	return calc.InputDot(s)
}

func (op *Dot) Name() string {
	return "dot"
}
