package branding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEmptyReturnsDefaults(t *testing.T) {
	merged, err := Merge(nil)
	assert.NoError(t, err)
	assert.Equal(t, Defaults(), merged)
	assert.Equal(t, "/assets/logo.png", merged.LogoURL)
	assert.NotNil(t, merged.Phone)
}

func TestMergeKeepsDefaultsForAbsentKeys(t *testing.T) {
	merged, err := Merge(json.RawMessage(`{"name":"Skyline Developments"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Skyline Developments", merged.Name)
	assert.Equal(t, "/assets/logo.png", merged.LogoURL)
	assert.NotNil(t, merged.Phone)
}

func TestMergeNestedSocial(t *testing.T) {
	stored := json.RawMessage(`{"social":{"facebook":"https://facebook.com/skyline"}}`)
	merged, err := Merge(stored)
	assert.NoError(t, err)
	assert.Equal(t, "https://facebook.com/skyline", merged.Social.Facebook)
	assert.Empty(t, merged.Social.Instagram)
}

func TestMergeOverridesEveryField(t *testing.T) {
	stored := json.RawMessage(`{
		"name": "Skyline",
		"tagline": "Building better",
		"logo_url": "/uploads/logo-v2.png",
		"email": "info@skyline.example",
		"phone": ["+880 1700 000000", "+880 1800 000000"],
		"address": "Banani, Dhaka"
	}`)
	merged, err := Merge(stored)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/logo-v2.png", merged.LogoURL)
	assert.Len(t, merged.Phone, 2)
	assert.Equal(t, "Banani, Dhaka", merged.Address)
}

func TestMergeMalformedJSON(t *testing.T) {
	merged, err := Merge(json.RawMessage(`{"name":`))
	assert.Error(t, err)
	assert.Equal(t, Defaults(), merged)
}
