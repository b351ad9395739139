package vislog

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMessages(t *testing.T) {
	h := newHarness(t)
	h.l.Log("log info msg")
	h.l.Debug("debug msg")
	h.l.Verbose("verbose msg")
	h.l.Info("info msg")
	h.l.Warn("warn msg")
	h.l.Error("error msg")
	h.l.FYI("fyi msg")

	assert.Equal(t, []string{
		"> log info msg",
		"> debug msg",
		"> verbose msg",
		"> info msg",
		"> warn msg",
		"> error msg",
		"> fyi msg",
	}, h.l.LogData())

	assert.Equal(t, []string{
		"> log info msg\n",
		"> info msg\n",
		"> warn msg\n",
		"> error msg\n",
		"> fyi msg\n",
	}, h.out.out)
}

func TestPrefixAppliesToOneCall(t *testing.T) {
	h := newHarness(t)

	h.l.
		Prefix("!").
		FYI("a").
		Prefix("").
		FYI("b").
		FYI("c")

	assert.Equal(t, []string{"!a\n", "b\n", "> c\n"}, h.out.out)
	assert.Equal(t, []string{"!a", "b", "> c"}, h.l.LogData())
}

func TestPrefixConsumedBelowThreshold(t *testing.T) {
	h := newHarness(t)

	h.l.Prefix("#").Debug("hidden").Info("shown")

	assert.Equal(t, []string{"> shown\n"}, h.out.out)
	assert.Equal(t, []string{"#hidden", "> shown"}, h.l.LogData())
}

func TestSetPrefix(t *testing.T) {
	h := newHarness(t)

	h.l.SetPrefix("-").Info("blah")

	assert.Equal(t, []string{"-blah\n"}, h.out.out)
}

func TestFormatting(t *testing.T) {
	h := newHarness(t)

	h.l.Warnf("low disk: %d%%", 5)
	h.l.Info("a", 1, "b")

	assert.Equal(t, []string{"> low disk: 5%\n", "> a 1 b\n"}, h.out.out)
	assert.Equal(t, []string{"> low disk: 5%", "> a 1 b"}, h.l.LogData())
}

func TestPrefixFollowsStylingFlag(t *testing.T) {
	cz := &tagColorizer{}
	h := newHarness(t, WithColorizer(cz))
	assert.Equal(t, "> ", h.l.levelPrefixes[LevelDebug])

	cz.active = true
	h.l.Log("hello")
	assert.Equal(t, "<blue>> ", h.l.levelPrefixes[LevelDebug])
	assert.Equal(t, "> ", h.l.levelPrefixes[LevelInfo])

	h.l.Warn("careful")
	assert.Equal(t, "<yellow>> careful\n", h.out.out[len(h.out.out)-1])

	cz.active = false
	h.l.Log("hello")
	assert.Equal(t, "> ", h.l.levelPrefixes[LevelDebug])
}

func TestColorDisabled(t *testing.T) {
	cz := &tagColorizer{active: true}
	h := newHarness(t, WithColorizer(cz), WithColor(false))

	h.l.Error("boom")
	assert.Equal(t, []string{"> boom\n"}, h.out.out)
	assert.False(t, h.l.Color())

	h.l.SetColor(true).Error("boom")
	assert.Equal(t, "<red>> boom\n", h.out.out[1])
}

func TestSetColorKeepsCustomPrefix(t *testing.T) {
	h := newHarness(t)

	h.l.SetPrefix("* ").SetColor(false).Info("x")

	assert.Equal(t, []string{"* x\n"}, h.out.out)
}

func TestSaveLogsDisabled(t *testing.T) {
	h := newHarness(t, WithSaveLogs(false))

	for i := 0; i < 50; i++ {
		h.l.Infof("line %d", i)
	}
	h.l.AddItem(ItemOptions{Name: "x"})
	h.l.UpdateItem("x", "busy")

	assert.Empty(t, h.l.LogData())
	assert.Len(t, h.out.out, 50)
}

func TestLevelThreshold(t *testing.T) {
	h := newHarness(t, WithLevel(LevelError))

	h.l.Warn("w").Error("e").FYI("f")
	assert.Equal(t, []string{"> e\n", "> f\n"}, h.out.out)
	assert.Equal(t, LevelError, h.l.Level())

	h.out.reset()
	h.l.SetLevel(LevelNone)
	h.l.Error("e").FYI("f").Print(LevelNone, "n")
	assert.Empty(t, h.out.out)
	assert.Len(t, h.l.LogData(), 6)
}

func TestLogDataIsSnapshot(t *testing.T) {
	h := newHarness(t)
	h.l.Info("one")

	data := h.l.LogData()
	data[0] = "changed"
	h.l.Info("two")

	if diff := cmp.Diff([]string{"> one", "> two"}, h.l.LogData()); diff != "" {
		t.Errorf("LogData() mismatch (-want +got):\n%s", diff)
	}
}

func TestLogClearsAndRedrawsItems(t *testing.T) {
	h := withItem(t)
	h.l.UpdateItem("TEST_1", "hello")
	h.clock.Advance(renderWait)
	h.out.reset()

	h.l.Error("error message")
	assert.Equal(t, 1, h.out.clearCount)
	assert.Equal(t, []string{"> error message\n"}, h.out.out)
	assert.Empty(t, h.out.vis)

	h.clock.Advance(renderWait)
	assert.Equal(t, []string{"TEST_1: hello"}, h.out.visList)
}

func TestNewValidatesRenderFPS(t *testing.T) {
	for _, fps := range []int{0, -1, 1000, 5000} {
		_, err := New(WithOutput(&recordOutput{}), WithColorizer(plainColorizer{}), WithRenderFPS(fps))
		require.ErrorIs(t, err, ErrInvalidRenderFPS, "fps %d", fps)
	}

	for _, fps := range []int{1, 30, 999} {
		_, err := New(WithOutput(&recordOutput{}), WithColorizer(plainColorizer{}), WithRenderFPS(fps))
		require.NoError(t, err, "fps %d", fps)
	}

	assert.Panics(t, func() {
		MustNew(WithOutput(&recordOutput{}), WithColorizer(plainColorizer{}), WithRenderFPS(0))
	})
}

func TestRenderInterval(t *testing.T) {
	assert.Equal(t, 33*time.Millisecond, renderInterval(30))
	assert.Equal(t, time.Second, renderInterval(1))
	assert.Equal(t, time.Millisecond, renderInterval(999))
	assert.Equal(t, 17*time.Millisecond, renderInterval(60))
}

func TestDotOptionsIgnoreNonPositive(t *testing.T) {
	h := newHarness(t, WithMaxDots(0), WithUpdatesPerDot(-3))

	assert.Equal(t, defaultMaxDots, h.l.maxDots)
	assert.Equal(t, defaultUpdatesPerDot, h.l.updatesPerDot)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  Level
		known bool
	}{
		{"debug", LevelDebug, true},
		{"VERBOSE", LevelVerbose, true},
		{"log", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"fyi", LevelFYI, true},
		{"none", LevelNone, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("VISLOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, LevelInfo, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, LevelError, LevelFromEnv())

	t.Setenv("VISLOG_LEVEL", "debug")
	assert.Equal(t, LevelDebug, LevelFromEnv())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "unknown", Level(7).String())
}

func TestContext(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, FromContextOptional(context.Background()))

	ctx := NewContext(context.Background(), h.l)
	assert.Same(t, h.l, FromContext(ctx))
	assert.Same(t, h.l, FromContextOptional(ctx))
}
