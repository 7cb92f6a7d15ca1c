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
	"fmt"
	"math/rand"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/kiddycalc/config"
	kc "github.com/timburks/kiddycalc/types"
)

// The Screen draws the calculator and reads taps from the terminal.
type Screen struct {
	layout Layout
	title  string
	colors config.ColorsConfig
}

func NewScreen(cfg *config.Config) (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	return &Screen{
		title:  Title(cfg.Title, cfg.Faces, rand.Intn),
		colors: cfg.Colors,
	}, nil
}

// Title decorates the title with one of the faces, picked once per session.
func Title(title string, faces []string, pick func(n int) int) string {
	if len(faces) == 0 {
		return title
	}
	return title + " " + faces[pick(len(faces))]
}

func (s *Screen) Close() {
	termbox.Close()
}

// color converts a palette index to an Output256 attribute.
func color(c int) termbox.Attribute {
	return termbox.Attribute(c + 1)
}

func (s *Screen) Render(c kc.Commander) {
	bg := color(s.colors.Background)
	fg := color(s.colors.Text)
	termbox.Clear(fg, bg)
	var size kc.Size
	size.Cols, size.Rows = termbox.Size()
	s.layout = NewLayout(size)

	s.renderTitle(size)
	s.renderDisplay(c.GetEquation())
	for _, b := range s.layout.Buttons {
		s.renderButton(b, b.Label == c.GetLastLabel())
	}
	s.renderMessageBar(size, c)
	termbox.HideCursor()
	termbox.Flush()
}

func (s *Screen) renderTitle(size kc.Size) {
	x := (size.Cols - runewidth.StringWidth(s.title)) / 2
	drawText(x, 0, s.title, color(s.colors.Accent)|termbox.AttrBold, color(s.colors.Background))
}

func (s *Screen) renderDisplay(equation string) {
	r := s.layout.Display
	bg := color(s.colors.Display)
	fill(r, bg)
	text := FitRight(equation, r.Size.Cols-2)
	x := r.Origin.Col + r.Size.Cols - 1 - runewidth.StringWidth(text)
	drawText(x, r.Origin.Row+r.Size.Rows/2, text, color(s.colors.Text)|termbox.AttrBold, bg)
}

func (s *Screen) renderButton(b PlacedButton, pressed bool) {
	var bg termbox.Attribute
	fg := color(s.colors.Text)
	switch b.Kind {
	case KindOperator:
		bg = color(s.colors.Operator)
		fg = color(s.colors.Accent) | termbox.AttrBold
	case KindEquals:
		bg = color(s.colors.Equals)
		fg = color(s.colors.Accent) | termbox.AttrBold
	case KindClear:
		bg = color(s.colors.Clear)
	default:
		bg = color(s.colors.Digit)
	}
	if pressed {
		fg |= termbox.AttrUnderline
	}
	fill(b.Rect, bg)

	label := b.Label
	center := b.Rect.Center()
	row := center.Row
	if b.Emoji != "" {
		if b.Rect.Size.Rows >= 2 {
			// emoji goes on the row below the label
			row = b.Rect.Origin.Row + (b.Rect.Size.Rows-2)/2
			emojiX := center.Col - runewidth.StringWidth(b.Emoji)/2
			drawText(emojiX, row+1, b.Emoji, fg, bg)
		} else {
			label += " " + b.Emoji
		}
	}
	x := center.Col - runewidth.StringWidth(label)/2
	drawText(x, row, label, fg, bg)
}

func (s *Screen) renderMessageBar(size kc.Size, c kc.Commander) {
	line := c.GetMessageBarText(size.Cols)
	drawText(0, size.Rows-1, line, color(s.colors.Text), color(s.colors.Background))
}

func fill(r kc.Rect, bg termbox.Attribute) {
	for y := r.Origin.Row; y < r.Origin.Row+r.Size.Rows; y++ {
		for x := r.Origin.Col; x < r.Origin.Col+r.Size.Cols; x++ {
			termbox.SetCell(x, y, ' ', termbox.ColorDefault, bg)
		}
	}
}

// drawText writes text starting at x and returns the column after it.
// Wide runes take two cells; zero-width runes such as variation
// selectors are dropped.
func drawText(x, y int, text string, fg, bg termbox.Attribute) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += w
	}
	return x
}

// FitRight keeps the end of text so that it fits in width cells.
// The most recent input is at the end, so that is what stays visible.
func FitRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > width {
		runes = runes[1:]
	}
	return string(runes)
}

func (s *Screen) GetNextEvent() *kc.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &kc.Event{Type: kc.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventMouse:
		if event.Key != termbox.MouseLeft {
			return &kc.Event{Type: kc.EventNone}
		}
		label, _ := s.layout.Hit(kc.Point{Row: event.MouseY, Col: event.MouseX})
		return &kc.Event{Type: kc.EventTap, Label: label, MouseX: event.MouseX, MouseY: event.MouseY}
	case termbox.EventResize:
		termbox.Flush()
		return &kc.Event{Type: kc.EventResize}
	case termbox.EventInterrupt:
		return &kc.Event{Type: kc.EventInterrupt}
	default:
		return &kc.Event{Type: kc.EventNone}
	}
}

func key(k termbox.Key) kc.Key {
	switch k {
	case termbox.KeyEsc:
		return kc.KeyEsc
	case termbox.KeyCtrlC:
		return kc.KeyCtrlC
	case termbox.KeyEnter:
		return kc.KeyEnter
	case termbox.KeySpace:
		return kc.KeySpace
	default:
		return kc.KeyUnsupported
	}
}
