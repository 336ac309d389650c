package swap

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.es.toml",
	"locales/active.de.toml",
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, file := range localeFiles {
			if _, err := b.LoadMessageFileFS(localeFS, file); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// NewLocalizer returns a localizer for the preferred languages, e.g. "de" or
// an Accept-Language value. English is the fallback.
func NewLocalizer(langs ...string) (*i18n.Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	return i18n.NewLocalizer(b, langs...), nil
}

var actionMessageIDs = map[WrapType]string{
	WrapTypeNotApplicable: "ActionSwap",
	WrapTypeWrap:          "ActionWrap",
	WrapTypeUnwrap:        "ActionUnwrap",
}

// GetActionName returns the localized label of the submit action.
func GetActionName(localizer *i18n.Localizer, wrapType WrapType) (string, error) {
	messageID, ok := actionMessageIDs[wrapType]
	if !ok {
		return "", ErrUnknownWrapType.WithDetails(int(wrapType))
	}
	name, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return "", ErrLocalizationFailed.WithDetails(messageID, err)
	}
	return name, nil
}
