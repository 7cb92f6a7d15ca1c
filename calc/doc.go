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

// Package calc implements the input state machine of kiddycalc.
// Button presses are applied as pure transitions: each takes the current
// State and returns the next one. A State is one of four concrete values
// (Idle, AwaitingOperand, EnteringOperand, Evaluated), so a pending value
// without an operator can't be represented. Evaluation is strictly
// left to right; there is no operator precedence.
package calc
