// Package branding types the site_branding settings record. The stored JSON
// is written by the admin panel a key at a time, so every field is optional
// and readers merge whatever is stored onto the built-in defaults.
package branding

import "encoding/json"

const SettingsKey = "site_branding"

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type SiteBranding struct {
	Name    string      `json:"name"`
	Tagline string      `json:"tagline"`
	LogoURL string      `json:"logo_url"`
	Email   string      `json:"email"`
	Phone   []string    `json:"phone"`
	Address string      `json:"address"`
	Social  SocialLinks `json:"social"`
}

// Defaults returns the branding used before anything has been saved.
func Defaults() SiteBranding {
	return SiteBranding{
		LogoURL: "/assets/logo.png",
		Phone:   []string{},
	}
}

// Merge unmarshals the stored JSON onto a copy of the defaults, so absent
// keys keep their default values, including keys nested under social.
func Merge(stored json.RawMessage) (SiteBranding, error) {
	merged := Defaults()
	if len(stored) == 0 {
		return merged, nil
	}
	if err := json.Unmarshal(stored, &merged); err != nil {
		return Defaults(), err
	}
	if merged.Phone == nil {
		merged.Phone = []string{}
	}
	return merged, nil
}
