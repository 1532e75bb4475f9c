// Package fetcher downloads article revision histories from a MediaWiki
// Special:Export endpoint and lays them out as the per-revision year/month
// tree the exporter consumes.
package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"

	"wikirev/internal/config"
	"wikirev/internal/logger"
)

// Fetch errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrNoRevisions          = errors.New("export contained no revisions")
	ErrRevisionNoTimestamp  = errors.New("revision has no parseable timestamp")
)

// Client fetches revision histories with config-driven retry logic.
type Client struct {
	client   *http.Client
	endpoint string
	retry    *config.RetryPolicy
	log      *logger.Logger
}

// NewClient creates a new fetch client.
func NewClient(cfg *config.FetchConfig, log *logger.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Retry.GetTimeout(),
		},
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		retry:    &cfg.Retry,
		log:      log,
	}
}

// FetchArticle downloads the full revision history of one article and writes
// each revision to <dataDir>/<article>/<year>/<month>/<revision_id>.xml. It
// returns the number of revision files written.
func (c *Client) FetchArticle(title, dataDir string) (int, error) {
	exportURL := fmt.Sprintf("%s/%s?history=1", c.endpoint, url.PathEscape(title))

	var lastErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if delay := c.retry.GetRetryDelay(attempt); delay > 0 {
			c.log.Info("retrying export", "article", title, "attempt", attempt, "delay", delay)
			time.Sleep(delay)
		}

		count, err := c.fetchOnce(exportURL, title, dataDir)
		if err == nil {
			return count, nil
		}

		lastErr = err

		c.log.Warn("export attempt failed", "article", title, "attempt", attempt, "error", err)
	}

	return 0, lastErr
}

func (c *Client) fetchOnce(exportURL, title, dataDir string) (int, error) {
	resp, err := c.client.Get(exportURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	return c.splitRevisions(resp.Body, title, dataDir)
}

// splitRevisions streams revision elements out of the export document and
// writes one file per revision. Revisions without a usable timestamp or id are
// logged and skipped; they have no place in the year/month layout.
func (c *Client) splitRevisions(r io.Reader, title, dataDir string) (int, error) {
	articleDir := filepath.Join(dataDir, SanitizeTitle(title))

	parser, err := xmlquery.CreateStreamParser(r, "//revision")
	if err != nil {
		return 0, fmt.Errorf("failed to parse export stream: %w", err)
	}

	count := 0

	for {
		node, err := parser.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return count, fmt.Errorf("failed to parse export stream: %w", err)
		}

		if err := writeRevision(articleDir, node); err != nil {
			c.log.Error("skipping revision", "article", title, "error", err)

			continue
		}

		count++
	}

	if count == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoRevisions, title)
	}

	return count, nil
}

func writeRevision(articleDir string, node *xmlquery.Node) error {
	timestamp := childElementText(node, "timestamp")
	if timestamp == "" {
		return ErrRevisionNoTimestamp
	}

	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrRevisionNoTimestamp, timestamp)
	}

	name := childElementText(node, "id")
	if name == "" {
		name = parsed.UTC().Format("20060102T150405Z")
	}

	monthDir := filepath.Join(articleDir, parsed.UTC().Format("2006"), parsed.UTC().Format("01"))
	if err := os.MkdirAll(monthDir, 0755); err != nil {
		return fmt.Errorf("failed to create month directory: %w", err)
	}

	content := node.OutputXML(true)
	if err := os.WriteFile(filepath.Join(monthDir, name+".xml"), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write revision file: %w", err)
	}

	return nil
}

// SanitizeTitle converts an article title to its directory name: spaces become
// underscores and path separators are dropped.
func SanitizeTitle(title string) string {
	name := strings.ReplaceAll(title, " ", "_")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "")

	return strings.ReplaceAll(name, "/", "")
}

func childElementText(node *xmlquery.Node, name string) string {
	child := node.SelectElement(name)
	if child == nil {
		return ""
	}

	return child.InnerText()
}
