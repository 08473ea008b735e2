package linebreak

import (
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/parbreak/hyphen"
	"golang.org/x/text/language"
)

// SetLocales selects the paragraph's locale from a comma-separated
// preference list and associates the matching hyphenator; the
// hyphenators slice runs in parallel to the locale list. For now, all
// locales except the first valid one are ignored.
//
// The list is scanned up to, but not including, its last entry; if none
// of those is valid the last entry is tried on its own. An empty list
// consults the operating-system locale. If no locale is valid at all,
// the root locale with no hyphenator is used. With zero hyphenators no
// hyphenator is ever selected, whatever the locale list says.
func (lb *LineBreaker) SetLocales(locales string, hyphenators []hyphen.Hyphenator) {
	goodLocaleFound := false
	numLocales := len(hyphenators)
	localeStart := locales
	for i := 0; i < numLocales-1; i++ { // loop over all locales, except the last one
		comma := strings.IndexByte(localeStart, ',')
		if comma < 0 {
			break
		}
		if tag, ok := parseLocale(localeStart[:comma]); ok {
			lb.locale = tag
			lb.hyphenator = hyphenators[i]
			goodLocaleFound = true
			break
		}
		localeStart = localeStart[comma+1:]
	}
	if !goodLocaleFound { // try the last locale
		if localeStart == "" {
			localeStart = systemLocale()
		}
		if tag, ok := parseLocale(localeStart); ok {
			lb.locale = tag
			if numLocales == 0 {
				lb.hyphenator = nil
			} else {
				lb.hyphenator = hyphenators[numLocales-1]
			}
		} else {
			// no good locale
			tracer().Infof("no valid locale in %q, falling back to the root locale", locales)
			lb.locale = language.Und
			lb.hyphenator = nil
		}
	}
	lb.wordBreaker.SetLocale(lb.locale)
}

func parseLocale(name string) (language.Tag, bool) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", "-"))
	if name == "" {
		return language.Und, false
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

func systemLocale() string {
	loc, err := jj.DetectIETF()
	if err != nil {
		return ""
	}
	return loc
}
