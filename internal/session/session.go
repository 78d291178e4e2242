// Package session holds the state the layout functions are evaluated against:
// the imported documents, the chosen ticket type, layout mode and page size,
// the selected document and the preview zoom.
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sizuichu/SuperFaPiao/internal/layout"
	"github.com/sizuichu/SuperFaPiao/internal/selection"
	"github.com/sizuichu/SuperFaPiao/internal/ticket"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

const (
	MinZoom  = 0.1
	MaxZoom  = 2.0
	ZoomStep = 0.1

	// FitMargin is subtracted from each viewport axis before fitting the page.
	FitMargin = 40.0

	MinCopies = 1
	MaxCopies = 99
)

// PagePlan is one printable page: the documents on it and the slots they fill.
type PagePlan struct {
	Index     int
	Start     int
	Documents []models.ImportedDocument
	Slots     []models.Rect
}

type Session struct {
	docs       *selection.Collection
	ticketType models.TicketType
	mode       models.LayoutMode
	paper      layout.Paper
	custom     models.PageDimensions
	selected   int
	zoom       float64
	copies     int
	logger     *logger.Logger
}

func New(log *logger.Logger) *Session {
	return &Session{
		docs:       selection.NewCollection(),
		ticketType: models.GeneralInvoice,
		mode:       ticket.DefaultMode(models.GeneralInvoice),
		paper:      layout.A4,
		custom:     layout.A4.Size,
		selected:   -1,
		zoom:       1.0,
		copies:     1,
		logger:     log,
	}
}

// SetTicketType switches the document type. Imported documents are discarded,
// since they were chosen for the previous type. A four-up layout falls back to
// single portrait when the new type does not offer it, and landscape tickets
// switch to the single landscape layout.
func (s *Session) SetTicketType(t models.TicketType) {
	s.ticketType = t
	s.docs.Clear()
	s.selected = -1
	s.zoom = 1.0

	if s.mode.IsQuadruple() && !ticket.AllowsQuadruple(t) {
		s.logger.Debug("Layout %s not offered for %s, resetting", s.mode, t)
		s.mode = models.SinglePortrait
	}
	if ticket.SizeFor(t).IsLandscape {
		s.mode = models.SingleLandscape
	}
	s.logger.Debug("Ticket type %s, layout %s", t, s.mode)
}

func (s *Session) SetLayoutMode(mode models.LayoutMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid layout mode %d", int(mode))
	}
	if mode.IsQuadruple() && !ticket.AllowsQuadruple(s.ticketType) {
		return fmt.Errorf("layout %s is not available for %s", mode, s.ticketType)
	}
	s.mode = mode
	return nil
}

func (s *Session) SetPaper(p layout.Paper) {
	s.paper = p
}

// SetCustomSize stores a custom page size, clamped into the supported range.
func (s *Session) SetCustomSize(widthMM, heightMM float64) models.PageDimensions {
	s.custom = layout.ClampCustomSize(widthMM, heightMM)
	if s.custom.Width != widthMM || s.custom.Height != heightMM {
		s.logger.Info("Custom page size clamped to %s", s.custom)
	}
	return s.custom
}

// Import adds a batch of paths and selects the first document when nothing is
// selected yet.
func (s *Session) Import(paths []string) selection.ImportResult {
	result := s.docs.AcceptImportBatch(paths)
	for _, path := range result.Unsupported {
		s.logger.Info("Skipping unsupported file: %s", path)
	}
	for _, path := range result.Duplicates {
		s.logger.Debug("Already imported: %s", path)
	}
	if s.selected < 0 && s.docs.Len() > 0 {
		s.selected = 0
	}
	return result
}

func (s *Session) Remove(path string) bool {
	idx := s.docs.IndexOf(path)
	if !s.docs.Remove(path) {
		return false
	}

	switch {
	case s.docs.Len() == 0:
		s.selected = -1
		s.zoom = 1.0
	case idx == s.selected, s.selected >= s.docs.Len():
		s.selected = 0
	case idx < s.selected:
		s.selected--
	}
	return true
}

func (s *Session) Select(i int) error {
	if i < 0 || i >= s.docs.Len() {
		return fmt.Errorf("document index %d out of range [0,%d)", i, s.docs.Len())
	}
	s.selected = i
	return nil
}

func (s *Session) Selected() int { return s.selected }
func (s *Session) TicketType() models.TicketType { return s.ticketType }
func (s *Session) LayoutMode() models.LayoutMode { return s.mode }
func (s *Session) Paper() layout.Paper { return s.paper }
func (s *Session) Documents() []models.ImportedDocument { return s.docs.Items() }
func (s *Session) Zoom() float64 { return s.zoom }
func (s *Session) Copies() int { return s.copies }
func (s *Session) CustomSize() models.PageDimensions { return s.custom }

func (s *Session) PageSize() models.PageDimensions {
	return layout.PageFor(s.mode, s.paper, s.custom)
}

// SlotCount is the number of documents one page holds in the current state.
func (s *Session) SlotCount() int {
	w, h := s.PageSize().Pixels()
	estimate := layout.MaxSlotsPerPage(w, h, ticket.SizeFor(s.ticketType), s.mode.Orientation())
	return layout.ResolveSlotCount(s.mode, estimate)
}

func (s *Session) Slots() []models.Rect {
	w, h := s.PageSize().Pixels()
	return layout.ComputeSlotsFor(w, h, s.SlotCount(), s.mode.Orientation())
}

// CurrentDocuments are the documents shown on the page that starts at the
// selected document.
func (s *Session) CurrentDocuments() []models.ImportedDocument {
	return selection.DocumentsForPage(s.docs.Items(), s.selected, s.SlotCount())
}

// CurrentPage is the plan for the page starting at the selected document.
func (s *Session) CurrentPage() (PagePlan, bool) {
	docs := s.CurrentDocuments()
	if len(docs) == 0 {
		return PagePlan{}, false
	}
	return PagePlan{Index: 0, Start: s.selected, Documents: docs, Slots: s.Slots()}, true
}

// Plan splits the whole collection into pages.
func (s *Session) Plan() []PagePlan {
	items := s.docs.Items()
	perPage := s.SlotCount()
	slots := s.Slots()

	starts := selection.PageStarts(len(items), perPage)
	pages := make([]PagePlan, 0, len(starts))
	for i, start := range starts {
		pages = append(pages, PagePlan{
			Index:     i,
			Start:     start,
			Documents: selection.DocumentsForPage(items, start, perPage),
			Slots:     slots,
		})
	}
	return pages
}

// SetZoomPercent parses a selector entry such as "150%" or "75".
func (s *Session) SetZoomPercent(text string) error {
	percent, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(text), "%"), 64)
	if err != nil {
		return fmt.Errorf("invalid zoom %q: %w", text, err)
	}
	s.zoom = clampZoom(percent / 100)
	return nil
}

// StepZoom applies wheel notches: positive zooms in, negative zooms out.
// It reports whether the zoom changed.
func (s *Session) StepZoom(notches int) bool {
	if notches == 0 {
		return false
	}
	next := clampZoom(s.zoom + float64(notches)*ZoomStep)
	if math.Abs(next-s.zoom) <= 0.01 {
		return false
	}
	s.zoom = next
	return true
}

// FitZoom picks the zoom at which the whole page fits a viewport of the given
// size in rendering units.
func (s *Session) FitZoom(viewportWidth, viewportHeight float64) float64 {
	w, h := s.PageSize().Pixels()
	scaleX := (viewportWidth - FitMargin) / w
	scaleY := (viewportHeight - FitMargin) / h
	s.zoom = clampZoom(math.Min(scaleX, scaleY))
	return s.zoom
}

func (s *Session) SetCopies(n int) int {
	s.copies = max(MinCopies, min(n, MaxCopies))
	return s.copies
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return MinZoom
	}
	return math.Max(MinZoom, math.Min(z, MaxZoom))
}
