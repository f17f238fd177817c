// Package translate formats user visible messages for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.Mutex
	printer *message.Printer
)

// SetLocales forces the printer to the first matching locale of the list.
// An empty list restores host locale detection.
func SetLocales(locales ...string) {
	mutex.Lock()
	defer mutex.Unlock()

	if len(locales) == 0 {
		printer = nil
		return
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

func current() *message.Printer {
	mutex.Lock()
	defer mutex.Unlock()

	if printer != nil {
		return printer
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("advent: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
