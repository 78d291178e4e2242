package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

type layoutOutput struct {
	TicketType string                `json:"ticket_type"`
	Layout     string                `json:"layout"`
	Page       models.PageDimensions `json:"page"`
	PagePixels struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"page_px"`
	SlotCount int           `json:"slot_count"`
	Slots     []models.Rect `json:"slots"`
}

func layoutCmd(g *globalFlags) *cobra.Command {
	var page pageFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the slot geometry for a page as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g, &page)
			if err != nil {
				return err
			}
			sess, err := newSession(cfg, g.logger())
			if err != nil {
				return err
			}

			size := sess.PageSize()
			out := layoutOutput{
				TicketType: sess.TicketType().String(),
				Layout:     sess.LayoutMode().String(),
				Page:       size,
				SlotCount:  sess.SlotCount(),
				Slots:      sess.Slots(),
			}
			out.PagePixels.Width, out.PagePixels.Height = size.Pixels()

			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	page.register(cmd)
	return cmd
}
