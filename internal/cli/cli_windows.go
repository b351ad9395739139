package cli

import "golang.org/x/sys/windows"

// spinner glyphs need a UTF-8 console
func init() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")

	setConsoleOutputCP := kernel32.NewProc("SetConsoleOutputCP")
	setConsoleOutputCP.Call(uintptr(65001))
}
