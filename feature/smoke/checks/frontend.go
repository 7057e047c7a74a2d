package checks

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"kml-smoke/core/httpclient"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// maxPageBytes caps how much of the landing page is parsed for its title.
const maxPageBytes = 1 << 20

// FrontendChecker probes candidate frontend URLs until one answers 200.
type FrontendChecker struct {
	client *httpclient.Client
	urls   []string
	logger *zap.Logger
	out    printer
}

// NewFrontendChecker creates a checker for urls, probed in order.
func NewFrontendChecker(client *httpclient.Client, urls []string, logger *zap.Logger, out io.Writer) *FrontendChecker {
	return &FrontendChecker{
		client: client,
		urls:   urls,
		logger: logger,
		out:    printer{w: out},
	}
}

// Check probes each URL in order and stops at the first 200 response.
func (c *FrontendChecker) Check(ctx context.Context) *FrontendResult {
	start := time.Now()
	result := &FrontendResult{Outcome: Failed, Attempts: []Attempt{}}

	c.out.line("\n🌐 Testing Frontend Accessibility...")

	for _, url := range c.urls {
		attempt, title, ok := c.probe(ctx, url)
		result.Attempts = append(result.Attempts, attempt)
		if ok {
			result.Outcome = Passed
			result.URL = url
			result.Title = title
			c.out.ok("Frontend accessible at: %s", url)
			break
		}
	}

	if result.Outcome != Passed {
		result.Diagnostic = "Frontend not accessible at any candidate URL"
	}
	result.Duration = time.Since(start)

	c.logger.Info("Frontend check finished",
		zap.String("outcome", string(result.Outcome)),
		zap.String("url", result.URL),
		zap.Int("attempts", len(result.Attempts)),
		zap.Duration("duration", result.Duration),
	)
	return result
}

func (c *FrontendChecker) probe(ctx context.Context, url string) (Attempt, string, bool) {
	attempt := Attempt{URL: url}

	resp, err := c.client.Get(ctx, url)
	if err != nil {
		attempt.Error = err.Error()
		c.logger.Debug("Frontend probe failed", zap.String("url", url), zap.Error(err))
		c.out.fail("Frontend not accessible at: %s", url)
		return attempt, "", false
	}
	defer resp.Body.Close()

	attempt.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Frontend returned non-200", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return attempt, "", false
	}

	return attempt, pageTitle(resp.Body), true
}

// pageTitle returns the document title, or "" when the body is not HTML.
func pageTitle(body io.Reader) string {
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(body, maxPageBytes))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
