package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			th := GetTheme(name)
			assert.NotEmpty(t, th.Accent)
			assert.NotEmpty(t, th.TextFg)
			assert.NotEqual(t, th.TextFg, th.Current)
		})
	}

	assert.Equal(t, GetTheme(DraculaName), GetTheme("does-not-exist"))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DraculaLightName))
	assert.True(t, IsLight(SolarizedLightName))
	assert.False(t, IsLight(NordName))
	assert.False(t, IsLight("unknown"))
	assert.False(t, IsLight(DefaultDark()))
	assert.True(t, IsLight(DefaultLight()))
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()

	assert.Len(t, names, 7)
	assert.IsNonDecreasing(t, names)
	for _, name := range names {
		assert.True(t, Exists(name))
	}
	assert.Contains(t, names, Detect())
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(GetTheme(NordName))

	assert.True(t, s.Current.GetBold())
	assert.True(t, s.Disabled.GetStrikethrough())
	assert.Equal(t, GetTheme(NordName).Accent, s.Focused.GetBorderTopForeground())
}
