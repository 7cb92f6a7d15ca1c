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

// A Transition is one step of the state machine.
type Transition interface {
	Apply(s State) State
}

// The Calculator owns the state of one calculator screen.
// It is not safe for concurrent use; the screen drives it from one loop.
type Calculator struct {
	state State
}

func NewCalculator() *Calculator {
	return &Calculator{state: Initial()}
}

// Perform applies t to the current state and returns the new state.
func (c *Calculator) Perform(t Transition) State {
	c.state = t.Apply(c.state)
	return c.state
}

func (c *Calculator) State() State {
	return c.state
}

func (c *Calculator) Display() string {
	return Display(c.state)
}

func (c *Calculator) Equation() string {
	return Equation(c.state)
}

func (c *Calculator) Reset() {
	c.state = Initial()
}
