package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	// recent frame times in milliseconds, for a smoothed readout
	FrameTimes CircularQueue[float64]

	builder strings.Builder
}

func InitDebugPrintManager() {
	dm := &TheDebugPrintManager
	dm.FrameTimes = NewCircularQueue[float64](90)
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

func RecordFrameTime(ms float64) {
	TheDebugPrintManager.FrameTimes.Enqueue(ms)
}

// AverageFrameTime smooths the recorded frame times over the ring buffer.
func AverageFrameTime() float64 {
	dm := &TheDebugPrintManager

	if dm.FrameTimes.IsEmpty() {
		return 0
	}

	sum := 0.0
	for i := 0; i < dm.FrameTimes.Length; i++ {
		sum += dm.FrameTimes.At(i)
	}

	return sum / f64(dm.FrameTimes.Length)
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	ebu.DebugPrint(dst, dm.builder.String())
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
