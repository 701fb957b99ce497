//go:build !dev
// +build !dev

package logger

import "log"

func HandleError(err error) {
	log.Printf("Error: %v\n", err)
}

func HandleLog(message string) {
	log.Println(message)
}

// HandleDebug is silent outside dev builds
func HandleDebug(format string, v ...any) {}
