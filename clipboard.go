package main

import (
	"unicode/utf8"

	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager

	if err := clipboard.Init(); err != nil {
		// preset copy/paste degrades to a no-op, but say so
		ErrorLogger.Printf("clipboard unavailable: %v", err)
		cm.Initialized = false
		return
	}

	cm.Initialized = true
}

func ClipboardAvailable() bool {
	return TheClipboardManager.Initialized
}

// ClipboardWriteText reports whether the text actually made it out.
func ClipboardWriteText(str string) bool {
	if !ClipboardAvailable() {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(str))
	return true
}

func ClipboardReadText() string {
	if !ClipboardAvailable() {
		return ""
	}

	bytes := clipboard.Read(clipboard.FmtText)
	// basic sanity check
	if !utf8.Valid(bytes) {
		return ""
	}

	return string(bytes)
}
