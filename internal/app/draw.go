package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"inkstone/internal/composer"
)

func (a *App) draw() {
	s := a.screen
	s.Clear()

	ctx := a.eng.Context()
	header := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	drawString(s, 0, 0, header, "inkstone workbench")
	drawString(s, 0, 1, tcell.StyleDefault, fmt.Sprintf(
		"ascii_mode=%-5v temp_ascii=%-5v caps=%-5v",
		ctx.Option(composer.OptionAsciiMode),
		ctx.Option(composer.OptionTempAscii),
		a.capsOn,
	))
	drawString(s, 0, 2, tcell.StyleDefault, "preedit:   "+ctx.Preedit())
	drawString(s, 0, 3, tcell.StyleDefault, "committed: "+tail(a.committed.String(), 60))
	drawString(s, 0, 4, tcell.StyleDefault, "last:      "+a.lastNote)

	drawString(s, 0, 6, dim, "F2 Shift_L  F3 Shift_R  F4 Control_L  F5 Caps_Lock  F6 Eisu_toggle")
	drawString(s, 0, 7, dim, "Enter commit  Esc clear  Ctrl-Q quit")

	s.Show()
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// tail returns the last n runes of text.
func tail(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
