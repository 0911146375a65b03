package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	const hozMargin = 5
	const vertMargin = 5

	// ebitenutil's debug font is 6x16
	text := dm.builder.String()
	lines := strings.Count(text, "\n") + 1
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		longest = max(longest, len(line))
	}

	boxW, boxH := f64(longest*6+hozMargin*2), f64(lines*16+vertMargin*2)

	dstW, dstH := f64(dst.Bounds().Dx()), f64(dst.Bounds().Dy())
	rect := FRectWH(boxW, boxH).Add(FPt(dstW-boxW, dstH-boxH))

	// draw background
	DrawFilledRect(dst, rect, color.NRGBA{255, 255, 255, 255}, false)
	DrawFilledRect(dst, rect.Inset(2), color.NRGBA{0, 0, 0, 255}, false)

	ebitenutil.DebugPrintAt(dst, text, int(rect.Min.X)+hozMargin, int(rect.Min.Y)+vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
