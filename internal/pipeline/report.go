package pipeline

import (
	"time"

	"github.com/sizuichu/SuperFaPiao/internal/render"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
)

type Report struct {
	StartTime time.Time
	EndTime   time.Time
	Pages     int
	Copies    int
	Placed    int
	Skipped   []render.SkippedDocument
	Outputs   []string
}

func (r *Report) TimeTaken() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r *Report) Print(log *logger.Logger) {
	completeBanner := `
+------------------------------------------------------------------------------+
|                              LAYOUT COMPLETE                                 |
+------------------------------------------------------------------------------+`

	skippedBanner := `
+------------------------------------------------------------------------------+
|                            SKIPPED DOCUMENTS                                 |
+------------------------------------------------------------------------------+`

	log.Info("\n%s\n", completeBanner)
	log.Info("- Pages rendered: %d", r.Pages)
	if r.Copies > 1 {
		log.Info("- Copies: %d", r.Copies)
	}
	log.Info("- Documents placed: %d", r.Placed)
	log.Info("- Documents skipped: %d", len(r.Skipped))
	log.Info("- Time Taken: %v", r.TimeTaken())
	for _, out := range r.Outputs {
		log.Info("- Output: %s", out)
	}

	if len(r.Skipped) > 0 {
		log.Info("\n%s\n", skippedBanner)
		for _, s := range r.Skipped {
			log.Info("- %s: %v", s.Document.DisplayName, s.Err)
		}
	}
}
