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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/kiddycalc/operations"
	kc "github.com/timburks/kiddycalc/types"
)

func TestKeypadMatchesOperations(t *testing.T) {
	var labels []string
	for _, row := range Keypad {
		for _, b := range row {
			labels = append(labels, b.Label)
		}
	}
	assert.Equal(t, operations.Labels(), labels)
}

func TestLayoutHitsEveryButton(t *testing.T) {
	for _, size := range []kc.Size{{Rows: 24, Cols: 80}, {Rows: 40, Cols: 120}, {Rows: 12, Cols: 30}} {
		l := NewLayout(size)
		assert.Len(t, l.Buttons, 17)
		for _, b := range l.Buttons {
			label, ok := l.Hit(b.Rect.Center())
			assert.True(t, ok, "%v %s", size, b.Label)
			assert.Equal(t, b.Label, label, "%v", size)
		}
	}
}

func TestLayoutMisses(t *testing.T) {
	l := NewLayout(kc.Size{Rows: 24, Cols: 80})
	first := l.Buttons[0].Rect

	// the column gap between 7 and 8
	_, ok := l.Hit(kc.Point{Row: first.Origin.Row, Col: first.Origin.Col + first.Size.Cols})
	assert.False(t, ok)
	// the title row and display box
	_, ok = l.Hit(kc.Point{Row: 0, Col: 40})
	assert.False(t, ok)
	_, ok = l.Hit(l.Display.Center())
	assert.False(t, ok)
}

func TestLayoutWideEquals(t *testing.T) {
	l := NewLayout(kc.Size{Rows: 24, Cols: 80})
	equals := l.Buttons[len(l.Buttons)-1]
	assert.Equal(t, "=", equals.Label)
	zero := l.Buttons[13]
	dot := l.Buttons[14]
	assert.Equal(t, zero.Rect.Origin.Col, equals.Rect.Origin.Col)
	assert.Equal(t, dot.Rect.Origin.Col+dot.Rect.Size.Cols, equals.Rect.Origin.Col+equals.Rect.Size.Cols)
	assert.Greater(t, equals.Rect.Origin.Row, zero.Rect.Origin.Row)
}

func TestFitRight(t *testing.T) {
	assert.Equal(t, "12 + 3", FitRight("12 + 3", 10))
	assert.Equal(t, "+ 3", FitRight("12 + 3", 3))
	assert.Equal(t, "Oops!", FitRight("Oops!", 5))
	assert.Equal(t, "", FitRight("123", 0))
}

func TestTitle(t *testing.T) {
	faces := []string{"🐣", "🦄"}
	assert.Equal(t, "Kiddy Calc 🦄", Title("Kiddy Calc", faces, func(n int) int { return n - 1 }))
	assert.Equal(t, "Kiddy Calc", Title("Kiddy Calc", nil, func(n int) int { return 0 }))
}
