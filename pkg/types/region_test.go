package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionContains(t *testing.T) {
	r := Region{EtaMin: 0, EtaMax: 2, PhiMin: 0, PhiMax: 2}

	tests := []struct {
		name string
		eta  float64
		phi  float64
		want bool
	}{
		{"strict interior", 0.5, 0.5, true},
		{"interior near max", 1.999, 1.999, true},
		{"on eta min boundary", 0, 1, false},
		{"on eta max boundary", 2, 1, false},
		{"on phi min boundary", 1, 0, false},
		{"on phi max boundary", 1, 2, false},
		{"outside eta", -0.1, 1, false},
		{"outside phi", 1, 2.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.eta, tt.phi))
		})
	}
}

func TestRegionValidate(t *testing.T) {
	assert.NoError(t, Region{EtaMin: -1, EtaMax: 1, PhiMin: -1, PhiMax: 1}.Validate())
	assert.Error(t, Region{EtaMin: 1, EtaMax: 1, PhiMin: -1, PhiMax: 1}.Validate())
	assert.Error(t, Region{EtaMin: -1, EtaMax: 1, PhiMin: 2, PhiMax: 1}.Validate())
}

func TestDefaultRegionsValid(t *testing.T) {
	for _, r := range DefaultRegions {
		assert.NoError(t, r.Validate(), r.String())
	}
}
