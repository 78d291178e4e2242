package updater

// VersionResponse is the document served at the project's version endpoint.
type VersionResponse struct {
	LatestVersion     string            `json:"latest_version"`
	DownloadURL       string            `json:"download_url"`
	UpdateMessage     string            `json:"update_message"`
	PlatformDownloads map[string]string `json:"platform_downloads"`
}

type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	UpdateMessage  string
	DownloadURL    string
	IsAvailable    bool
}

type GitHubRelease struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	HTMLURL    string `json:"html_url"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}
