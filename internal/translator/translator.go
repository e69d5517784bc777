package translator

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

//go:embed translation/*.toml
var translations embed.FS

// Translator resolves message ids for a requested language, falling back to English.
type Translator struct {
	bundle *i18n.Bundle
}

// New loads the embedded translation files.
func New() (*Translator, error) {
	return NewFromFS(translations, "translation")
}

// NewFromFS loads every *.toml file under dir.
func NewFromFS(fsys fs.FS, dir string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := dir + "/" + f.Name()
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load translation %s: %w", f.Name(), err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Message returns the localized text for id. Unknown ids come back unchanged.
func (t *Translator) Message(id string, langs ...string) string {
	if t == nil {
		return id
	}
	localizer := i18n.NewLocalizer(t.bundle, append(langs, LanguageEn)...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		zap.L().Warn("translation not found", zap.Strings("langs", langs), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}
