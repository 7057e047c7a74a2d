package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingPointFields(t *testing.T) {
	tests := []struct {
		name  string
		point any
		want  []string
	}{
		{"Complete", map[string]any{"distance": 0.0, "elevation": 100.0, "gradient": 0.0}, nil},
		{"NullValuesCount", map[string]any{"distance": nil, "elevation": nil, "gradient": nil}, nil},
		{"NoGradient", map[string]any{"distance": 0.0, "elevation": 100.0}, []string{"gradient"}},
		{"OrderIsStable", map[string]any{"elevation": 1.0}, []string{"distance", "gradient"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := missingPointFields(tt.point)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := missingPointFields("not an object")
	assert.Error(t, err)
}

func TestValidateRoutes(t *testing.T) {
	assert.NoError(t, validateRoutes(map[string]any{"routes": []any{}}))
	assert.NoError(t, validateRoutes(map[string]any{"routes": []any{map[string]any{"name": "A"}, map[string]any{}}}))
	assert.Error(t, validateRoutes(map[string]any{}))
	assert.Error(t, validateRoutes(map[string]any{"routes": "nope"}))
	assert.Error(t, validateRoutes(map[string]any{"routes": []any{map[string]any{"name": 7}}}))
}

func TestMissingStatistics(t *testing.T) {
	stats := map[string]any{}
	for _, k := range StatisticKeys {
		stats[k] = 1.0
	}
	assert.Empty(t, missingStatistics(stats))

	delete(stats, "max_elevation")
	assert.Equal(t, []string{"max_elevation"}, missingStatistics(stats))
}
