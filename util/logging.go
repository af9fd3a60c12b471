package util

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

var LoggingEnabled = false

// LogEndpoint, when set, receives a copy of every debug message as a text/plain POST.
var LogEndpoint = ""

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Print(message)
	if LogEndpoint != "" {
		go http.Post(LogEndpoint, "text/plain", strings.NewReader(message))
	}
}
