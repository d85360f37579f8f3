package main

import (
	"sync"

	"fyne.io/fyne/v2"
	"golang.design/x/clipboard"
)

var initClipboard = sync.OnceValue(clipboard.Init)

// copyText puts text on the system clipboard, or on the app clipboard when
// the system one cannot be opened.
func copyText(a fyne.App, text string) {
	if err := initClipboard(); err != nil {
		a.Clipboard().SetContent(text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}
