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
package types

// Commander modes
const (
	ModeRun  = 0
	ModeQuit = 9999
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventTap       = 2
	EventInterrupt = 3
	EventNone      = 4
)

// Keys that the commander cares about. Calculator input comes from taps,
// so only the keys that leave the program are distinguished.
type Key int

const (
	KeyUnsupported Key = iota
	KeyEsc
	KeyCtrlC
	KeyEnter
	KeySpace
)

// An Event is one user input, already translated from the terminal.
type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Label  string // button label for EventTap
	MouseX int
	MouseY int
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Origin.Row && p.Row < r.Origin.Row+r.Size.Rows &&
		p.Col >= r.Origin.Col && p.Col < r.Origin.Col+r.Size.Cols
}

// Center returns the cell in the middle of r.
func (r Rect) Center() Point {
	return Point{Row: r.Origin.Row + r.Size.Rows/2, Col: r.Origin.Col + r.Size.Cols/2}
}

// A Commander is what the screen needs to draw the status line.
type Commander interface {
	GetMode() int
	GetMessage() string
	GetEquation() string
	GetLastLabel() string
	GetMessageBarText(length int) string
}
