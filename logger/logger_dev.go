//go:build dev
// +build dev

package logger

import (
	"fmt"
	"log"
)

func HandleError(err error) {
	log.Printf("Dev Mode - Error: %v\n", err)
}

func HandleLog(message string) {
	fmt.Printf("Dev Mode - %s\n", message)
}

func HandleDebug(format string, v ...any) {
	log.Printf("Dev Mode - Debug: "+format, v...)
}
