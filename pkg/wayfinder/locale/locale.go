// Package locale turns routes into localized, human readable titles.
//
// Titles are go-i18n messages keyed "screen.<identifier>":
//
//	"screen.home" = "Home"
//	"screen.settings" = "Settings"
//
// Screens without a message are shown by identifier.
package locale

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/internal"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

const (
	messagePrefix = "screen."
	separator     = " > "
)

// Titles resolves screen titles for one language.
type Titles struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
	logger    *slog.Logger
}

// New creates Titles for lang, falling back to English messages.
func New(lang string) (*Titles, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Titles{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
		logger:    internal.GetInternalLogger(),
	}, nil
}

// Language returns the language titles are resolved for.
func (t *Titles) Language() language.Tag { return t.tag }

// AddMessages parses a message file. The language is taken from the file
// name, as in "active.fr.toml" or "fr.toml".
func (t *Titles) AddMessages(data []byte, name string) error {
	if _, err := t.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("message file %s: %w", name, err)
	}
	return nil
}

// LoadFile reads and parses a message file from disk.
func (t *Titles) LoadFile(path string) error {
	if _, err := t.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("message file %s: %w", path, err)
	}
	return nil
}

// Title returns the localized title of id, or id itself.
func (t *Titles) Title(id route.Identifier) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: messagePrefix + string(id)})
	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		t.logger.Warn("Failed to localize screen title", "identifier", id, "error", err)
	}
	if msg == "" {
		t.logger.Debug("No title for screen", "identifier", id, "language", t.tag.String())
		return string(id)
	}
	// A non-empty message with a not-found error came from the default language.
	return msg
}

// Breadcrumb joins the titles of every screen in r, root first.
func (t *Titles) Breadcrumb(r route.Route) string {
	parts := make([]string, len(r))
	for i, id := range r {
		parts[i] = t.Title(id)
	}
	return strings.Join(parts, separator)
}
