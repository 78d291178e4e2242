package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/config"
	"github.com/sizuichu/SuperFaPiao/internal/session"
	"github.com/sizuichu/SuperFaPiao/internal/ticket"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

// pageFlags are the page settings shared by every command that lays out
// documents. A flag overrides the config file only when it was set.
type pageFlags struct {
	ticketType string
	layout     string
	paper      string
	width      float64
	height     float64
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.ticketType, "ticket", "t", "", "ticket type: general-invoice|train-ticket|flight-itinerary|taxi-receipt|other")
	cmd.Flags().StringVarP(&p.layout, "layout", "l", "", "layout: single-portrait|single-landscape|double-portrait|double-landscape|quadruple|quadruple-landscape|custom")
	cmd.Flags().StringVarP(&p.paper, "paper", "p", "", `paper size name or label, e.g. "A4" or "Custom (100x150)"`)
	cmd.Flags().Float64Var(&p.width, "width", 0, "custom page width in mm (custom layout)")
	cmd.Flags().Float64Var(&p.height, "height", 0, "custom page height in mm (custom layout)")
}

func (p *pageFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("ticket") {
		cfg.TicketType = p.ticketType
		if !cmd.Flags().Changed("layout") {
			cfg.Layout = ticket.DefaultMode(ticket.ParseType(p.ticketType)).String()
		}
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout = p.layout
	}
	if cmd.Flags().Changed("paper") {
		cfg.Paper = p.paper
	}
	if cmd.Flags().Changed("width") {
		cfg.CustomSize.Width = p.width
	}
	if cmd.Flags().Changed("height") {
		cfg.CustomSize.Height = p.height
	}
}

func loadConfig(cmd *cobra.Command, g *globalFlags, p *pageFlags) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if p != nil {
		p.apply(cmd, cfg)
	}
	return cfg, nil
}

func newSession(cfg *config.Config, log *logger.Logger) (*session.Session, error) {
	sess := session.New(log)
	sess.SetTicketType(ticket.ParseType(cfg.TicketType))

	mode, err := cfg.LayoutMode()
	if err != nil {
		return nil, err
	}
	if err := sess.SetLayoutMode(mode); err != nil {
		return nil, err
	}

	paper, err := cfg.PaperSize()
	if err != nil {
		return nil, err
	}
	sess.SetPaper(paper)
	if mode == models.Custom {
		sess.SetCustomSize(cfg.CustomSize.Width, cfg.CustomSize.Height)
	}
	sess.SetCopies(cfg.Copies)
	return sess, nil
}
