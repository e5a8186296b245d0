// Package version provides build information and release checks for bingocard.
package version

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// GitHubRepo is the GitHub repository for bingocard.
const GitHubRepo = "dbmrq/bingocard"

// DefaultAPIBase is the GitHub API root used for release checks.
const DefaultAPIBase = "https://api.github.com"

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo fills in the Go toolchain and platform next to the values
// stamped in at build time.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func (i *Info) String() string {
	return fmt.Sprintf("bingocard %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString is the multi-line form printed by "bingocard version".
func (i *Info) FullString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bingocard %s\n", i.Version)
	for _, row := range [][2]string{
		{"Commit", i.Commit},
		{"Built", i.Date},
		{"Go", i.GoVer},
		{"OS/Arch", i.OS + "/" + i.Arch},
	} {
		fmt.Fprintf(&b, "  %-9s %s\n", row[0]+":", row[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Release is the subset of a GitHub release the update check reads.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Checker looks up the latest published release.
type Checker struct {
	HTTPClient *http.Client
	Repo       string
	// APIBase is the API root; empty means DefaultAPIBase.
	APIBase string
}

func NewChecker() *Checker {
	return &Checker{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Repo:       GitHubRepo,
		APIBase:    DefaultAPIBase,
	}
}

func (c *Checker) latestURL() string {
	base := strings.TrimSuffix(c.APIBase, "/")
	if base == "" {
		base = DefaultAPIBase
	}
	return base + "/repos/" + c.Repo + "/releases/latest"
}

// GetLatestRelease fetches the latest release of c.Repo.
func (c *Checker) GetLatestRelease(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.latestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "bingocard")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("release lookup returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	release := new(Release)
	if err := json.NewDecoder(resp.Body).Decode(release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}
	return release, nil
}

// CheckForUpdate returns the latest release when it is newer than
// currentVersion and nil otherwise. Development builds ("dev") are never
// reported as outdated and make no request.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*Release, error) {
	if currentVersion == "" || currentVersion == "dev" {
		return nil, nil
	}

	release, err := c.GetLatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	if CompareVersions(release.TagName, currentVersion) <= 0 {
		return nil, nil
	}
	return release, nil
}

// CompareVersions orders two major.minor.patch strings, returning -1, 0
// or 1. A leading "v" and pre-release suffixes are ignored.
func CompareVersions(a, b string) int {
	pa, pb := parseVersion(a), parseVersion(b)
	for i := range pa {
		if c := cmp.Compare(pa[i], pb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func parseVersion(v string) [3]int {
	var out [3]int
	v, _, _ = strings.Cut(strings.TrimPrefix(v, "v"), "-")
	for i, part := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}
