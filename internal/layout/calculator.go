// Package layout computes where documents go on a printed page.
//
// All functions are pure and safe to call from any goroutine. Geometry is in
// rendering units (pixels at 96 DPI); physical sizes are converted with
// utils.MMToPixel.
package layout

import (
	"math"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

const (
	// Spacing is the gap between slots and the margin on every page edge.
	Spacing = 20.0

	MaxSlots = 4
)

// SlotCount is the number of slots a mode places on a page.
func SlotCount(mode models.LayoutMode) int {
	switch {
	case mode.IsQuadruple():
		return 4
	case mode.IsDouble():
		return 2
	default:
		return 1
	}
}

// ComputeSlots returns the slot rectangles for a page in row-major order.
// It never fails: a page too small for the mode yields slots shrunk to
// nothing rather than an error.
func ComputeSlots(pageWidth, pageHeight float64, mode models.LayoutMode) []models.Rect {
	return ComputeSlotsFor(pageWidth, pageHeight, SlotCount(mode), mode.Orientation())
}

// ComputeSlotsFor lays out an explicit number of slots. Counts the grid
// cannot express are normalised with NormalizeSlotCount.
func ComputeSlotsFor(pageWidth, pageHeight float64, count int, orientation models.Orientation) []models.Rect {
	s := Spacing
	switch NormalizeSlotCount(count) {
	case 4:
		w := nonNegative((pageWidth - 3*s) / 2)
		h := nonNegative((pageHeight - 3*s) / 2)
		slots := make([]models.Rect, 0, 4)
		for i := 0; i < 4; i++ {
			left := s
			if i%2 == 1 {
				left = w + 2*s
			}
			top := s
			if i >= 2 {
				top = h + 2*s
			}
			slots = append(slots, models.Rect{X: left, Y: top, Width: w, Height: h})
		}
		return slots

	case 2:
		if orientation == models.Landscape {
			w := nonNegative((pageWidth - 3*s) / 2)
			h := nonNegative(pageHeight - 2*s)
			return []models.Rect{
				{X: s, Y: s, Width: w, Height: h},
				{X: w + 2*s, Y: s, Width: w, Height: h},
			}
		}
		w := nonNegative(pageWidth - 2*s)
		h := nonNegative((pageHeight - 3*s) / 2)
		return []models.Rect{
			{X: s, Y: s, Width: w, Height: h},
			{X: s, Y: h + 2*s, Width: w, Height: h},
		}

	default:
		return []models.Rect{{
			X:      s,
			Y:      s,
			Width:  nonNegative(pageWidth - 2*s),
			Height: nonNegative(pageHeight - 2*s),
		}}
	}
}

// NormalizeSlotCount maps any count onto a supported grid: 1, 2 or 4.
func NormalizeSlotCount(count int) int {
	switch {
	case count >= 4:
		return 4
	case count >= 2:
		return 2
	default:
		return 1
	}
}

// MaxSlotsPerPage estimates how many tickets of the given physical size fit
// on the page. The estimate is advisory and capped at MaxSlots.
func MaxSlotsPerPage(pageWidth, pageHeight float64, size models.TicketSize, orientation models.Orientation) int {
	availableWidth := pageWidth - 2*Spacing
	availableHeight := pageHeight - 2*Spacing

	ticketWidth := size.Width * utils.MMToPixel
	ticketHeight := size.Height * utils.MMToPixel

	if orientation == models.Landscape {
		availableWidth, availableHeight = availableHeight, availableWidth
	}

	perRow := int(math.Floor(availableWidth / (ticketWidth + Spacing)))
	perColumn := int(math.Floor(availableHeight / (ticketHeight + Spacing)))
	if perRow < 0 {
		perRow = 0
	}
	if perColumn < 0 {
		perColumn = 0
	}

	return max(1, min(perRow*perColumn, MaxSlots))
}

// ResolveSlotCount picks the slot count for a page. An explicit mode always
// wins; only Custom falls back to the auto-fit estimate.
func ResolveSlotCount(mode models.LayoutMode, estimate int) int {
	if mode == models.Custom {
		return NormalizeSlotCount(estimate)
	}
	return SlotCount(mode)
}

// FitUniform scales an image of imgW x imgH into slot preserving its aspect
// ratio and centres it.
func FitUniform(slot models.Rect, imgW, imgH int) models.Rect {
	if imgW <= 0 || imgH <= 0 || slot.Width <= 0 || slot.Height <= 0 {
		return models.Rect{X: slot.X, Y: slot.Y}
	}

	scale := math.Min(slot.Width/float64(imgW), slot.Height/float64(imgH))
	w := float64(imgW) * scale
	h := float64(imgH) * scale

	return models.Rect{
		X:      slot.X + (slot.Width-w)/2,
		Y:      slot.Y + (slot.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
