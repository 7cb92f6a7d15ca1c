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
package screen

import (
	kc "github.com/timburks/kiddycalc/types"
)

// Button kinds, used to pick colors.
const (
	KindDigit = iota
	KindDot
	KindOperator
	KindClear
	KindEquals
)

// A Button is one key of the keypad.
type Button struct {
	Label string
	Emoji string
	Kind  int
	Wide  bool
}

// Keypad is the button layout, row by row.
var Keypad = [][]Button{
	{{"7", "🐣", KindDigit, false}, {"8", "🦒", KindDigit, false}, {"9", "🐳", KindDigit, false}, {"÷", "", KindOperator, false}},
	{{"4", "🐢", KindDigit, false}, {"5", "🦄", KindDigit, false}, {"6", "🐤", KindDigit, false}, {"×", "", KindOperator, false}},
	{{"1", "🐼", KindDigit, false}, {"2", "🐬", KindDigit, false}, {"3", "🦕", KindDigit, false}, {"-", "", KindOperator, false}},
	{{"C", "", KindClear, false}, {"0", "⭐", KindDigit, false}, {".", "", KindDot, false}, {"+", "", KindOperator, false}},
	{{"=", "", KindEquals, true}},
}

const (
	keypadColumns  = 4
	keypadMaxWidth = 44
	keypadTop      = 5 // title, display box and a blank row come first
)

// A PlacedButton is a button with its position on the screen.
type PlacedButton struct {
	Button
	Rect kc.Rect
}

// A Layout is the position of everything on a screen of a given size.
type Layout struct {
	Size    kc.Size
	Display kc.Rect
	Buttons []PlacedButton
}

// NewLayout centers the display and keypad on a screen of the given size.
// Wide buttons span the two middle columns.
func NewLayout(size kc.Size) Layout {
	width := size.Cols - 2
	if width > keypadMaxWidth {
		width = keypadMaxWidth
	}
	colGap := 1
	cellWidth := (width - (keypadColumns-1)*colGap) / keypadColumns
	if cellWidth < 1 {
		cellWidth = 1
	}
	width = keypadColumns*cellWidth + (keypadColumns-1)*colGap
	left := (size.Cols - width) / 2
	if left < 0 {
		left = 0
	}

	rows := len(Keypad)
	available := size.Rows - 1 - keypadTop // the last row is the message bar
	rowGap := 1
	cellHeight := (available - (rows-1)*rowGap) / rows
	if cellHeight < 1 {
		rowGap = 0
		cellHeight = 1
	}
	if cellHeight > 3 {
		cellHeight = 3
	}

	l := Layout{
		Size: size,
		Display: kc.Rect{
			Origin: kc.Point{Row: 1, Col: left},
			Size:   kc.Size{Rows: 3, Cols: width},
		},
	}
	for r, row := range Keypad {
		for c, b := range row {
			rect := kc.Rect{
				Origin: kc.Point{Row: keypadTop + r*(cellHeight+rowGap), Col: left + c*(cellWidth+colGap)},
				Size:   kc.Size{Rows: cellHeight, Cols: cellWidth},
			}
			if b.Wide {
				rect.Origin.Col = left + (cellWidth + colGap)
				rect.Size.Cols = 2*cellWidth + colGap
			}
			l.Buttons = append(l.Buttons, PlacedButton{Button: b, Rect: rect})
		}
	}
	return l
}

// Hit returns the label of the button under p.
func (l Layout) Hit(p kc.Point) (string, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(p) {
			return b.Label, true
		}
	}
	return "", false
}
