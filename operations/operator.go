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

// SetOperator

type SetOperator struct {
	Operator calc.Operator
}

func (op *SetOperator) Apply(s calc.State) calc.State {
	return calc.SetOperator(s, op.Operator)
}

func (op *SetOperator) Name() string {
	return "operator " + op.Operator.String()
}

// Equals

type Equals struct{}

func (op *Equals) Apply(s calc.State) calc.State {
	return calc.Equals(s)
}

func (op *Equals) Name() string {
	return "equals"
}

// Clear

type Clear struct{}

func (op *Clear) Apply(s calc.State) calc.State {
	return calc.ClearAll(s)
}

func (op *Clear) Name() string {
	return "clear"
}
