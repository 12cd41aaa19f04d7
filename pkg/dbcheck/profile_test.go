package dbcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProfileIsValid(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{"empty primary capability", func(p *Profile) { p.Primary.Capability = "" }, "primary.capability"},
		{"blank primary type", func(p *Profile) { p.Primary.Type = "  " }, "primary.type"},
		{"empty constant", func(p *Profile) { p.Primary.Constant = "" }, "primary.constant"},
		{"empty abstraction layer", func(p *Profile) { p.Abstraction.Layer = "" }, "abstraction.layer"},
		{"empty sub driver", func(p *Profile) { p.Abstraction.SubDriver = "" }, "abstraction.sub_driver"},
		{"empty optional name", func(p *Profile) { p.Optional = append(p.Optional, Capability{Label: "x"}) }, "optional[3].name"},
		{"no filter tokens", func(p *Profile) { p.FilterTokens = nil }, "at least one filter token"},
		{"blank filter token", func(p *Profile) { p.FilterTokens = []string{"mysql", ""} }, "filter_tokens[1]"},
		{"bad min version", func(p *Profile) { p.Primary.MinVersion = ">>> 1" }, "primary.min_version"},
		{"valid min version", func(p *Profile) { p.Primary.MinVersion = ">= 1.8" }, ""},
		{"no optional capabilities", func(p *Profile) { p.Optional = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLabelsFallBackToNames(t *testing.T) {
	assert.Equal(t, "mysql", Driver{Capability: "mysql"}.label())
	assert.Equal(t, "database/sql:mysql", Abstraction{Capability: "database/sql:mysql"}.label())
	assert.Equal(t, "database/sql", Capability{Name: "database/sql"}.label())
	assert.Equal(t, "base", Capability{Name: "database/sql", Label: "base"}.label())
}
