package iostreams

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withNoColor(t *testing.T, noColor bool) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = noColor
	t.Cleanup(func() { color.NoColor = orig })
}

func TestColorizeDisabled(t *testing.T) {
	withNoColor(t, false)
	cs := NewColorScheme(false, false)

	assert.False(t, cs.StylingActive())
	assert.Equal(t, "hello", cs.Colorize("red", "hello"))
	assert.Equal(t, "hello", cs.Gray("hello"))
}

func TestColorizeEnabled(t *testing.T) {
	withNoColor(t, false)
	cs := NewColorScheme(true, false)

	assert.True(t, cs.StylingActive())
	assert.Equal(t, red("hello"), cs.Colorize("red", "hello"))
	assert.Equal(t, blue("hello"), cs.Colorize("Blue", "hello"))
	assert.Equal(t, white("x"), cs.Colorize("white", "x"))
	assert.Contains(t, cs.Colorize("magenta", "hello"), "\x1b[")
}

func TestColorizeUnknownName(t *testing.T) {
	withNoColor(t, false)
	cs := NewColorScheme(true, true)

	assert.Equal(t, "hello", cs.Colorize("", "hello"))
	assert.Equal(t, "hello", cs.Colorize("chartreuse", "hello"))
}

func TestStylingFollowsProcessFlag(t *testing.T) {
	withNoColor(t, false)
	cs := NewColorScheme(true, false)
	assert.True(t, cs.StylingActive())

	color.NoColor = true
	assert.False(t, cs.StylingActive())
	assert.Equal(t, "hello", cs.Red("hello"))

	color.NoColor = false
	cs.SetEnabled(false)
	assert.False(t, cs.StylingActive())
}

func TestGray256(t *testing.T) {
	withNoColor(t, false)

	assert.Equal(t, gray256("x"), NewColorScheme(true, true).Gray("x"))
	assert.Equal(t, gray("x"), NewColorScheme(true, false).Gray("x"))
}

func TestEnvColorRules(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	assert.False(t, EnvColorDisabled())
	assert.False(t, EnvColorForced())

	t.Setenv("CLICOLOR", "0")
	assert.True(t, EnvColorDisabled())

	t.Setenv("CLICOLOR_FORCE", "1")
	assert.True(t, EnvColorForced())

	t.Setenv("CLICOLOR_FORCE", "0")
	assert.False(t, EnvColorForced())
}
