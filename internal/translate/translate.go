// Package translate derives three-language name bundles for world entities
// and holiday names. English is the canonical stored name; Simplified
// Chinese comes from stored translation data or an external Translator, and
// Traditional Chinese is converted from Simplified via OpenCC.
package translate

import (
	"encoding/json"
	"fmt"

	"github.com/longbridgeapp/opencc"

	"github.com/mmynk/tripcraft/internal/models"
)

// Translation keys used by the stored world data. Regions and countries
// store Simplified Chinese under "cn", sub-regions under "chinese".
const (
	KeyCN      = "cn"
	KeyChinese = "chinese"
)

// Translator converts source-script text to Simplified Chinese. It is an
// external collaborator; the default implementation passes text through
// unchanged so the service degrades to English-only bundles offline.
type Translator interface {
	ToSimplifiedChinese(text string) (string, error)
}

// Passthrough returns the input text unchanged.
type Passthrough struct{}

// ToSimplifiedChinese implements Translator.
func (Passthrough) ToSimplifiedChinese(text string) (string, error) {
	return text, nil
}

// Service builds Translations bundles. It is safe for concurrent use.
type Service struct {
	s2t        *opencc.OpenCC
	translator Translator
}

// NewService builds a Service around the given Translator. Pass nil to use
// the passthrough translator.
func NewService(translator Translator) (*Service, error) {
	if translator == nil {
		translator = Passthrough{}
	}
	s2t, err := opencc.New("s2t")
	if err != nil {
		return nil, fmt.Errorf("failed to load s2t conversion: %w", err)
	}
	return &Service{s2t: s2t, translator: translator}, nil
}

// Bundle derives a bundle for a name with no stored translation data, such
// as state and city names or holiday names: Simplified Chinese via the
// Translator, Traditional via OpenCC.
func (s *Service) Bundle(name string) models.Translations {
	hans, err := s.translator.ToSimplifiedChinese(name)
	if err != nil || hans == "" {
		hans = name
	}
	return models.Translations{
		En:     name,
		ZhHans: hans,
		ZhHant: s.toTraditional(hans),
	}
}

// StoredBundle derives a bundle from a row's raw translations JSON, reading
// the Simplified Chinese name from the given key. Missing or unparsable
// translation data falls back to the English name.
func (s *Service) StoredBundle(name, rawTranslations, key string) models.Translations {
	hans := name
	hant := name

	var stored map[string]string
	if err := json.Unmarshal([]byte(rawTranslations), &stored); err == nil {
		if v, ok := stored[key]; ok && v != "" {
			hans = v
			hant = s.toTraditional(v)
		}
	}

	return models.Translations{
		En:     name,
		ZhHans: hans,
		ZhHant: hant,
	}
}

func (s *Service) toTraditional(hans string) string {
	hant, err := s.s2t.Convert(hans)
	if err != nil || hant == "" {
		return hans
	}
	return hant
}
