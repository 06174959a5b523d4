package domain

import "fmt"

// LanguageProfile holds the parameters each collaborator needs for one language tag.
// TranscriptionLocale is empty for tags that are only supported as a target.
type LanguageProfile struct {
	Tag                 string
	TranscriptionLocale string
	TranslationCode     string
	SynthesisVoice      string
	SynthesisLocale     string
}

var SupportedSourceLanguages = []string{"en", "es", "fr", "ca", "gb"}

var SupportedTargetLanguages = []string{"nl", "hi", "en", "pl", "es", "fr", "ja", "ru", "de", "it", "sv", "gb", "ca"}

// "ca" is Canadian French and "gb" is British English; both translate through their base language.
var languageProfiles = map[string]LanguageProfile{
	"en": {Tag: "en", TranscriptionLocale: "en-US", TranslationCode: "en", SynthesisVoice: "Matthew", SynthesisLocale: "en-US"},
	"es": {Tag: "es", TranscriptionLocale: "es-US", TranslationCode: "es", SynthesisVoice: "Miguel", SynthesisLocale: "es-ES"},
	"fr": {Tag: "fr", TranscriptionLocale: "fr-FR", TranslationCode: "fr", SynthesisVoice: "Mathieu", SynthesisLocale: "fr-FR"},
	"ca": {Tag: "ca", TranscriptionLocale: "fr-CA", TranslationCode: "fr", SynthesisVoice: "Chantal", SynthesisLocale: "fr-CA"},
	"gb": {Tag: "gb", TranscriptionLocale: "en-GB", TranslationCode: "en", SynthesisVoice: "Brian", SynthesisLocale: "en-GB"},
	"nl": {Tag: "nl", TranslationCode: "nl", SynthesisVoice: "Lotte", SynthesisLocale: "nl-NL"},
	"hi": {Tag: "hi", TranslationCode: "hi", SynthesisVoice: "Aditi", SynthesisLocale: "hi-IN"},
	"pl": {Tag: "pl", TranslationCode: "pl", SynthesisVoice: "Maja", SynthesisLocale: "pl-PL"},
	"ja": {Tag: "ja", TranslationCode: "ja", SynthesisVoice: "Takumi", SynthesisLocale: "ja-JP"},
	"ru": {Tag: "ru", TranslationCode: "ru", SynthesisVoice: "Maxim", SynthesisLocale: "ru-RU"},
	"de": {Tag: "de", TranslationCode: "de", SynthesisVoice: "Hans", SynthesisLocale: "de-DE"},
	"it": {Tag: "it", TranslationCode: "it", SynthesisVoice: "Giorgio", SynthesisLocale: "it-IT"},
	"sv": {Tag: "sv", TranslationCode: "sv", SynthesisVoice: "Astrid", SynthesisLocale: "sv-SE"},
}

func SourceProfile(tag string) (LanguageProfile, error) {
	profile, ok := languageProfiles[tag]
	if !ok || profile.TranscriptionLocale == "" {
		return LanguageProfile{}, &UnsupportedLanguageError{Tag: tag, Role: SourceLanguageRole}
	}
	return profile, nil
}

func TargetProfile(tag string) (LanguageProfile, error) {
	profile, ok := languageProfiles[tag]
	if !ok || profile.SynthesisVoice == "" || profile.SynthesisLocale == "" {
		return LanguageProfile{}, &UnsupportedLanguageError{Tag: tag, Role: TargetLanguageRole}
	}
	return profile, nil
}

// ValidateLanguageProfiles checks that every supported tag resolves to a complete profile.
func ValidateLanguageProfiles() error {
	for _, tag := range SupportedSourceLanguages {
		profile, err := SourceProfile(tag)
		if err != nil {
			return err
		}
		if profile.TranslationCode == "" {
			return fmt.Errorf("language profile %q has no translation code", tag)
		}
	}
	for _, tag := range SupportedTargetLanguages {
		profile, err := TargetProfile(tag)
		if err != nil {
			return err
		}
		if profile.TranslationCode == "" {
			return fmt.Errorf("language profile %q has no translation code", tag)
		}
	}
	for tag, profile := range languageProfiles {
		if profile.Tag != tag {
			return fmt.Errorf("language profile %q is registered under %q", profile.Tag, tag)
		}
	}
	return nil
}
