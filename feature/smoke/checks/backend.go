package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kml-smoke/core/httpclient"
	"kml-smoke/core/sample"
	"kml-smoke/core/target"

	"go.uber.org/zap"
)

// Backend endpoints exercised by the checker.
const (
	DocsPath      = "/docs"
	RoutesPath    = "/api/kml/routes"
	ElevationPath = "/api/kml/elevation"

	FileField      = "file"
	RouteNameField = "route_name"
)

// RoutesResponse is the payload of the route listing endpoint.
type RoutesResponse struct {
	Routes []Route `json:"routes"`
}

// Route is a named path found in the uploaded KML file.
type Route struct {
	Name string `json:"name"`
}

// ElevationResponse is the payload of the elevation endpoint. Points stay
// untyped so key presence can be told apart from zero values.
type ElevationResponse struct {
	ProfileData []any          `json:"profile_data"`
	Statistics  map[string]any `json:"statistics"`
	Image       string         `json:"elevation_profile_image"`
}

// BackendChecker verifies the KML API: liveness, route listing and elevation profile.
type BackendChecker struct {
	client *httpclient.Client
	target target.Config
	sample sample.Source
	logger *zap.Logger
	out    printer
}

// NewBackendChecker creates a checker that uploads src to the backend in cfg.
func NewBackendChecker(client *httpclient.Client, cfg target.Config, src sample.Source, logger *zap.Logger, out io.Writer) *BackendChecker {
	return &BackendChecker{
		client: client,
		target: cfg,
		sample: src,
		logger: logger,
		out:    printer{w: out},
	}
}

// Check runs the backend checks in order and stops at the first failure.
func (c *BackendChecker) Check(ctx context.Context) *BackendResult {
	start := time.Now()
	result := &BackendResult{Outcome: Failed, Sample: c.sample.Location()}

	c.out.line("🧪 Testing Backend Endpoints...")
	c.run(ctx, result)

	result.Duration = time.Since(start)
	c.logger.Info("Backend check finished",
		zap.String("outcome", string(result.Outcome)),
		zap.String("diagnostic", result.Diagnostic),
		zap.Duration("duration", result.Duration),
	)
	return result
}

func (c *BackendChecker) run(ctx context.Context, result *BackendResult) {
	if !c.checkLiveness(ctx, result) {
		return
	}

	exists, err := c.sample.Exists(ctx)
	if err != nil {
		c.failf(result, "Error testing endpoints: %v", err)
		return
	}
	if !exists {
		result.Outcome = Skipped
		result.Diagnostic = fmt.Sprintf("KML file not found: %s", c.sample.Location())
		c.out.warn("%s", result.Diagnostic)
		c.out.line("   You can test manually by uploading a KML file through the web interface")
		return
	}
	c.out.line("📁 Found KML file: %s", c.sample.Location())

	if err := c.checkUploads(ctx, result); err != nil {
		c.failf(result, "Error testing endpoints: %v", err)
	}
}

func (c *BackendChecker) checkLiveness(ctx context.Context, result *BackendResult) bool {
	url := c.target.Endpoint(DocsPath)
	resp, err := c.client.Get(ctx, url)
	if err != nil {
		c.logger.Debug("Backend unreachable", zap.String("url", url), zap.Error(err))
		c.failf(result, "Cannot connect to backend server")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.StatusCode = resp.StatusCode
		c.failf(result, "Backend server is not responding correctly (status %d)", resp.StatusCode)
		return false
	}

	c.out.ok("Backend server is running")
	return true
}

// checkUploads returns an error only for unexpected failures; expected ones
// are recorded on result directly.
func (c *BackendChecker) checkUploads(ctx context.Context, result *BackendResult) error {
	var raw any
	status, err := c.upload(ctx, RoutesPath, nil, &raw)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		result.StatusCode = status
		c.failf(result, "Routes endpoint failed: %d%s", status, detailSuffix(raw))
		return nil
	}
	if err := validateRoutes(raw); err != nil {
		return err
	}

	var routes RoutesResponse
	if err := remarshal(raw, &routes); err != nil {
		return err
	}
	result.RouteCount = len(routes.Routes)
	c.out.ok("Routes endpoint working - Found %d routes", result.RouteCount)

	if len(routes.Routes) == 0 {
		c.failf(result, "No routes found to test")
		return nil
	}

	result.RouteName = routes.Routes[0].Name
	c.out.line("🏔️  Testing elevation profile for: %s", result.RouteName)

	raw = nil
	status, err = c.upload(ctx, ElevationPath, map[string]string{RouteNameField: result.RouteName}, &raw)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		result.StatusCode = status
		c.failf(result, "Elevation endpoint failed: %d%s", status, detailSuffix(raw))
		return nil
	}
	c.out.ok("Elevation endpoint working")

	return c.checkProfile(raw, result)
}

func (c *BackendChecker) checkProfile(raw any, result *BackendResult) error {
	doc, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected elevation payload: expected a JSON object")
	}
	if _, ok := doc["profile_data"]; !ok {
		c.failf(result, "Profile data not found in response")
		return nil
	}

	var elevation ElevationResponse
	if err := remarshal(doc, &elevation); err != nil {
		return err
	}
	result.ProfileCount = len(elevation.ProfileData)
	c.out.ok("Profile data available - %d data points", result.ProfileCount)

	if result.ProfileCount == 0 {
		c.failf(result, "Profile data is empty")
		return nil
	}

	missing, err := missingPointFields(elevation.ProfileData[0])
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		result.MissingFields = missing
		c.failf(result, "Missing fields in profile data: %v", missing)
		return nil
	}

	if elevation.Statistics != nil {
		if absent := missingStatistics(elevation.Statistics); len(absent) > 0 {
			c.logger.Debug("Elevation statistics incomplete", zap.Strings("missing", absent))
		}
	}

	c.out.ok("Profile data structure is correct")
	result.Outcome = Passed
	return nil
}

// upload posts the sample file to path and decodes the JSON body into v.
// A non-JSON body is only an error when the status is 200.
func (c *BackendChecker) upload(ctx context.Context, path string, fields map[string]string, v any) (int, error) {
	rc, err := c.sample.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	url := c.target.Endpoint(path)
	resp, err := c.client.PostMultipart(ctx, url, httpclient.Upload{
		Field:    FileField,
		FileName: c.sample.Name(),
		Content:  rc,
		Fields:   fields,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	c.logger.Debug("Upload finished", zap.String("url", url), zap.Int("status", resp.StatusCode))

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil && resp.StatusCode == http.StatusOK {
		return resp.StatusCode, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return resp.StatusCode, nil
}

func (c *BackendChecker) failf(result *BackendResult, format string, args ...any) {
	result.Outcome = Failed
	result.Diagnostic = fmt.Sprintf(format, args...)
	c.out.fail("%s", result.Diagnostic)
}

// detailSuffix extracts the error message the backend puts in "detail".
func detailSuffix(raw any) string {
	doc, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	if detail, ok := doc["detail"].(string); ok && detail != "" {
		return " (" + detail + ")"
	}
	return ""
}

func remarshal(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
