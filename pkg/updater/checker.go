package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/version"
)

const (
	DefaultVersionURL = "https://raw.githubusercontent.com/sizuichu/SuperFaPiao/main/version.json"
	DefaultGitHubURL  = "https://api.github.com/repos/sizuichu/SuperFaPiao/releases/latest"
	userAgent         = "SuperFaPiao-Updater"
	checkInterval     = time.Hour
)

type Checker struct {
	client         *http.Client
	logger         *logger.Logger
	versionURL     string
	githubURL      string
	currentVersion string
	lastChecked    time.Time
	lastInfo       *UpdateInfo
}

type Option func(*Checker)

// WithEndpoints replaces the version document and GitHub release URLs.
func WithEndpoints(versionURL, githubURL string) Option {
	return func(c *Checker) {
		c.versionURL = versionURL
		c.githubURL = githubURL
	}
}

func WithCurrentVersion(v string) Option {
	return func(c *Checker) {
		c.currentVersion = v
	}
}

func NewChecker(logger *logger.Logger, opts ...Option) *Checker {
	c := &Checker{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:         logger,
		versionURL:     DefaultVersionURL,
		githubURL:      DefaultGitHubURL,
		currentVersion: version.Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckForUpdates asks the version endpoint first and falls back to the
// GitHub releases API. Results are reused for an hour.
func (c *Checker) CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	if c.lastInfo != nil && time.Since(c.lastChecked) < checkInterval {
		return c.lastInfo, nil
	}

	c.logger.Debug("Checking for updates...")

	info, err := c.checkPrimaryEndpoint(ctx)
	if err != nil {
		c.logger.Debug("Primary endpoint failed, falling back to GitHub: %v", err)
		info, err = c.checkGitHubAPI(ctx)
		if err != nil {
			return nil, err
		}
	}

	c.lastChecked = time.Now()
	c.lastInfo = info
	return info, nil
}

func (c *Checker) get(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Checker) checkPrimaryEndpoint(ctx context.Context) (*UpdateInfo, error) {
	var versionInfo VersionResponse
	if err := c.get(ctx, c.versionURL, &versionInfo); err != nil {
		return nil, err
	}

	currentVersion := strings.TrimPrefix(c.currentVersion, "v")
	latestVersion := strings.TrimPrefix(versionInfo.LatestVersion, "v")

	platformKey := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	downloadURL, ok := versionInfo.PlatformDownloads[platformKey]
	if !ok {
		downloadURL = versionInfo.DownloadURL
	}
	if downloadURL == "" {
		return nil, fmt.Errorf("no download available for platform %s", platformKey)
	}

	return &UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		UpdateMessage:  versionInfo.UpdateMessage,
		DownloadURL:    downloadURL,
		IsAvailable:    compareVersions(currentVersion, latestVersion) < 0,
	}, nil
}

func (c *Checker) checkGitHubAPI(ctx context.Context) (*UpdateInfo, error) {
	var release GitHubRelease
	if err := c.get(ctx, c.githubURL, &release); err != nil {
		return nil, fmt.Errorf("GitHub release lookup failed: %w", err)
	}

	currentVersion := strings.TrimPrefix(c.currentVersion, "v")
	latestVersion := strings.TrimPrefix(release.TagName, "v")

	return &UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		UpdateMessage:  release.Body,
		DownloadURL:    release.HTMLURL,
		IsAvailable:    compareVersions(currentVersion, latestVersion) < 0,
	}, nil
}

// compareVersions returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
//
// Numeric components compare as numbers, so 1.10 is newer than 1.9.
func compareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := 0; i < len(parts1) && i < len(parts2); i++ {
		if c := comparePart(parts1[i], parts2[i]); c != 0 {
			return c
		}
	}

	if len(parts1) < len(parts2) {
		return -1
	}
	if len(parts1) > len(parts2) {
		return 1
	}
	return 0
}

func comparePart(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
