package checks

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RequiredPointFields are the keys every elevation profile point must carry.
var RequiredPointFields = []string{"distance", "elevation", "gradient"}

// StatisticKeys are the summary values the frontend renders next to the chart.
var StatisticKeys = []string{
	"total_distance", "total_elevation_gain", "total_elevation_loss",
	"max_elevation", "min_elevation", "steepest_climb", "steepest_descent", "average_gradient",
}

// Only the first route is used, so only the first item is constrained.
var routesSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": []string{"routes"},
	"properties": map[string]any{
		"routes": map[string]any{
			"type": "array",
			"items": []any{
				map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
})

var pointSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": RequiredPointFields,
})

// validateRoutes checks a decoded routes payload.
func validateRoutes(doc any) error {
	result, err := gojsonschema.Validate(routesSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("unexpected routes payload: %s", describe(result.Errors()))
	}
	return nil
}

// missingPointFields returns the required keys absent from point, in
// RequiredPointFields order. It fails when point is not a JSON object.
func missingPointFields(point any) ([]string, error) {
	result, err := gojsonschema.Validate(pointSchema, gojsonschema.NewGoLoader(point))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	absent := make(map[string]bool)
	for _, desc := range result.Errors() {
		if desc.Type() != "required" {
			return nil, fmt.Errorf("unexpected profile point: %s", desc.String())
		}
		if prop, ok := desc.Details()["property"].(string); ok {
			absent[prop] = true
		}
	}

	var missing []string
	for _, f := range RequiredPointFields {
		if absent[f] {
			missing = append(missing, f)
		}
	}
	return missing, nil
}

// missingStatistics returns the StatisticKeys absent from stats.
func missingStatistics(stats map[string]any) []string {
	var missing []string
	for _, k := range StatisticKeys {
		if _, ok := stats[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

func describe(errs []gojsonschema.ResultError) string {
	msgs := make([]string, len(errs))
	for i, desc := range errs {
		msgs[i] = desc.String()
	}
	return strings.Join(msgs, "; ")
}
