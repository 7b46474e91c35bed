// Package translate formats user-facing messages in the user's locale.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var printer = newPrinter()

// systemLocales returns the preferred locales of the environment.
func systemLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.Debugf("translate: locale: %v", err)
	}
	return locales
}

func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = systemLocales()
	}
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLocale selects the locales for later messages, most preferred first.
// With no locales the environment's locales are used.
// Error values already created keep their text.
func SetLocale(locales ...string) {
	printer = newPrinter(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
