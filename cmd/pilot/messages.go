package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pilot/pkg/pilot/script"
	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

//go:embed locales/*.toml
var localeFS embed.FS

// messages renders CLI output in the selected language.
type messages struct {
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return bundle, nil
}

func newMessages(lang string) (*messages, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	return &messages{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

func (m *messages) get(id string, data map[string]any) string {
	return m.plural(id, nil, data)
}

func (m *messages) plural(id string, count any, data map[string]any) string {
	s, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		return id
	}
	return s
}

func (m *messages) direction(d stack.Direction) string {
	if d == stack.Forward {
		return m.get("DirectionForward", nil)
	}
	return m.get("DirectionBack", nil)
}

func (m *messages) event(e script.Event) string {
	data := map[string]any{
		"Step":  e.Step,
		"Op":    string(e.Op),
		"Frame": e.Frame,
	}
	switch e.Kind {
	case script.EventTopChanged:
		data["Direction"] = m.direction(e.Direction)
		return m.get("TopChanged", data)
	case script.EventEmpty:
		return m.get("NoVisibleFrames", data)
	case script.EventPopped:
		return m.get("FramePopped", data)
	default:
		data["Error"] = e.Err
		return m.get("ExpectedError", data)
	}
}
