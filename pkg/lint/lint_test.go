package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{in: "error", want: SeverityError, wantOK: true},
		{in: "ERROR", want: SeverityError, wantOK: true},
		{in: "warning", want: SeverityWarning, wantOK: true},
		{in: "warn", want: SeverityWarning, wantOK: true},
		{in: " info ", want: SeverityInfo, wantOK: true},
		{in: "hint", want: SeverityHint, wantOK: true},
		{in: "fatal", want: SeverityWarning, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "hint", SeverityHint.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestConfig(t *testing.T) {
	var nilCfg *Config
	assert.False(t, nilCfg.IsDisabled("NC01"))
	assert.Equal(t, SeverityError, nilCfg.GetSeverity("NC01", SeverityError))

	cfg := NewConfig().Disable("NC01").SetSeverity("NC06", SeverityWarning)
	assert.True(t, cfg.IsDisabled("NC01"))
	assert.False(t, cfg.IsDisabled("NC02"))
	assert.Equal(t, SeverityWarning, cfg.GetSeverity("NC06", SeverityError))
	assert.Equal(t, SeverityError, cfg.GetSeverity("NC05", SeverityError))
}

func TestConfig_Apply(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.Apply("NC01", "off"))
	assert.True(t, cfg.IsDisabled("NC01"))

	assert.True(t, cfg.Apply("NC01", "hint"))
	assert.False(t, cfg.IsDisabled("NC01"))
	assert.Equal(t, SeverityHint, cfg.GetSeverity("NC01", SeverityError))

	assert.False(t, cfg.Apply("NC02", "loud"))
	_, overridden := cfg.SeverityOverrides["NC02"]
	assert.False(t, overridden)
}

func TestBuildDocURL(t *testing.T) {
	t.Cleanup(ResetDocsBaseURL)

	assert.Equal(t, DefaultDocsBaseURL+"/nc01.md", BuildDocURL("NC01"))

	SetDocsBaseURL("http://localhost:5173/rules/")
	assert.Equal(t, "http://localhost:5173/rules/nc03.md", BuildDocURL("NC03"))
}
