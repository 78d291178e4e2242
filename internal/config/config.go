// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sizuichu/SuperFaPiao/internal/layout"
	"github.com/sizuichu/SuperFaPiao/internal/ticket"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

type Config struct {
	TicketType string `yaml:"ticket_type"`
	Layout     string `yaml:"layout"`
	Paper      string `yaml:"paper"`
	CustomSize struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"custom_size"`
	Render struct {
		DPI        int   `yaml:"dpi"`
		Background *bool `yaml:"background"`
		Border     bool  `yaml:"border"`
	} `yaml:"render"`
	Export struct {
		Format      string `yaml:"format"`
		OutputDir   string `yaml:"output_dir"`
		JPEGQuality int    `yaml:"jpeg_quality"`
	} `yaml:"export"`
	Copies int `yaml:"copies"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TicketType == "" {
		c.TicketType = models.GeneralInvoice.String()
	}
	if c.Layout == "" {
		c.Layout = ticket.DefaultMode(ticket.ParseType(c.TicketType)).String()
	}
	if c.Paper == "" {
		c.Paper = layout.A4.Name
	}
	if c.CustomSize.Width == 0 {
		c.CustomSize.Width = layout.A4.Size.Width
	}
	if c.CustomSize.Height == 0 {
		c.CustomSize.Height = layout.A4.Size.Height
	}
	if c.Render.DPI == 0 {
		c.Render.DPI = 300
	}
	if c.Render.Background == nil {
		background := true
		c.Render.Background = &background
	}
	if c.Export.Format == "" {
		c.Export.Format = "pdf"
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "superfapiao-output"
	}
	if c.Copies == 0 {
		c.Copies = 1
	}
}

func (c *Config) LayoutMode() (models.LayoutMode, error) {
	return models.ParseLayoutMode(c.Layout)
}

func (c *Config) PaperSize() (layout.Paper, error) {
	if p, ok := layout.PaperByName(c.Paper); ok {
		return p, nil
	}
	return layout.ParsePaperLabel(c.Paper)
}

func (c *Config) Background() bool {
	return c.Render.Background == nil || *c.Render.Background
}
