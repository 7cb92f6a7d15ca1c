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
	"fmt"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/timburks/kiddycalc/calc"
	"github.com/timburks/kiddycalc/operations"
	kc "github.com/timburks/kiddycalc/types"
)

// The Commander converts user input into operations on the calculator.
type Commander struct {
	calculator *calc.Calculator
	logger     *zap.Logger
	mode       int    // run or quit
	debug      bool   // debug mode displays information about events
	message    string // status message
	lastLabel  string // label of the last button pressed
}

func NewCommander(c *calc.Calculator, logger *zap.Logger) *Commander {
	if logger == nil {
		logger = zap.NewNop()
	}
	cmd := &Commander{calculator: c, logger: logger, mode: kc.ModeRun}
	bindPrimitives(cmd)
	return cmd
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
	if !debug {
		c.message = ""
	}
}

func (c *Commander) IsRunning() bool {
	return c.mode != kc.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetEquation() string {
	return c.calculator.Equation()
}

func (c *Commander) GetLastLabel() string {
	return c.lastLabel
}

func (c *Commander) ProcessEvent(event *kc.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", *event)
	}
	switch event.Type {
	case kc.EventTap:
		return c.processTap(event)
	case kc.EventKey:
		return c.processKey(event)
	case kc.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

func (c *Commander) processResize(event *kc.Event) error {
	return nil
}

// Keys never reach the calculator; they only leave the program.
func (c *Commander) processKey(event *kc.Event) error {
	switch event.Key {
	case kc.KeyEsc, kc.KeyCtrlC:
		c.mode = kc.ModeQuit
	}
	if event.Ch == 'q' || event.Ch == 'Q' {
		c.mode = kc.ModeQuit
	}
	return nil
}

func (c *Commander) processTap(event *kc.Event) error {
	if event.Label == "" {
		return nil
	}
	_, err := c.ParseEval(fmt.Sprintf("(press %q)", scriptLabel(event.Label)))
	if err != nil {
		c.message = err.Error()
		return err
	}
	c.lastLabel = event.Label
	if !c.debug {
		c.message = ""
	}
	return nil
}

// scriptLabel spells the operator symbols with their ASCII aliases.
func scriptLabel(label string) string {
	switch label {
	case "×":
		return "*"
	case "÷":
		return "/"
	}
	return label
}

// Press performs the operation of one button.
func (c *Commander) Press(label string) error {
	op, err := operations.ForLabel(label)
	if err != nil {
		return err
	}
	c.perform(op)
	c.lastLabel = label
	return nil
}

func (c *Commander) perform(op operations.Operation) {
	s := c.calculator.Perform(op)
	c.logger.Debug("performed operation",
		zap.String("operation", op.Name()),
		zap.String("state", calc.Name(s)),
		zap.String("equation", calc.Equation(s)))
}

// GetMessageBarText returns the status line, clipped to length cells.
func (c *Commander) GetMessageBarText(length int) string {
	return runewidth.Truncate(c.GetMessage(), length, "")
}
