// package language wraps x/text/language for the language codes sent to
// Wikidata and other multilingual APIs.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Tag language.Tag

// Parse reads a BCP 47 tag such as "ko" or "en-US". An empty string yields
// the undetermined tag.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tag(language.Und), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Tag(language.Und), fmt.Errorf("language.Parse %q: %w", s, err)
	}
	return Tag(tag), nil
}

// Base returns the primary language subtag ("en" for "en-US"), which is the
// form Wikidata expects. The undetermined tag gives fallback.
func (t Tag) Base(fallback string) string {
	if t == Tag(language.Und) {
		return fallback
	}
	base, conf := language.Tag(t).Base()
	if conf == language.No {
		return fallback
	}
	return base.String()
}

func (t Tag) String() string {
	return language.Tag(t).String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if t == Tag(language.Und) {
		return []byte{}, nil
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(b []byte) error {
	tag, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}
