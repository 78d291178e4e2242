package layout_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sizuichu/SuperFaPiao/internal/layout"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

var _ = Describe("Paper sizes", func() {
	Context("ClampCustomSize", func() {
		DescribeTable("clamps each axis into range",
			func(w, h float64, expected models.PageDimensions) {
				Expect(layout.ClampCustomSize(w, h)).To(Equal(expected))
			},
			Entry("below the lower bound", 10.0, 297.0, models.PageDimensions{Width: 50, Height: 297}),
			Entry("above the upper bound", 5000.0, 297.0, models.PageDimensions{Width: 1000, Height: 297}),
			Entry("both out of range", -3.0, 1200.0, models.PageDimensions{Width: 50, Height: 1000}),
			Entry("in range", 120.0, 80.0, models.PageDimensions{Width: 120, Height: 80}),
			Entry("not a number", math.NaN(), 80.0, models.PageDimensions{Width: 50, Height: 80}),
		)
	})

	Context("ParsePaperLabel", func() {
		It("should read the selector format", func() {
			p, err := layout.ParsePaperLabel("A4 (210×297)")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name).To(Equal("A4"))
			Expect(p.Size).To(Equal(models.PageDimensions{Width: 210, Height: 297}))
		})

		It("should accept a plain x", func() {
			p, err := layout.ParsePaperLabel("Receipt (80x150)")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Size).To(Equal(models.PageDimensions{Width: 80, Height: 150}))
		})

		It("should fall back to the paper table by name", func() {
			p, err := layout.ParsePaperLabel("letter")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name).To(Equal("Letter"))
		})

		It("should round-trip Label", func() {
			p, err := layout.ParsePaperLabel(layout.A4.Label())
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(layout.A4))
		})

		DescribeTable("should clamp label sizes into the custom range",
			func(label string, expected models.PageDimensions) {
				p, err := layout.ParsePaperLabel(label)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.Size).To(Equal(expected))

				page := layout.PageFor(models.SinglePortrait, p, p.Size)
				Expect(page.Width).To(BeNumerically(">", 0))
				Expect(page.Height).To(BeNumerically(">", 0))

				w, h := page.Pixels()
				for _, slot := range layout.ComputeSlots(w, h, models.SinglePortrait) {
					Expect(slot.X).To(BeNumerically(">=", 0))
					Expect(slot.Right()).To(BeNumerically("<=", w))
					Expect(slot.Bottom()).To(BeNumerically("<=", h))
				}
			},
			Entry("zero and negative", "X (0x-20)", models.PageDimensions{Width: 50, Height: 50}),
			Entry("oversized", "Banner (1200x300)", models.PageDimensions{Width: 1000, Height: 300}),
			Entry("tiny", "Stamp (10×10)", models.PageDimensions{Width: 50, Height: 50}),
		)

		It("should not let a hand-built paper produce an empty page", func() {
			page := layout.PageFor(models.SingleLandscape, layout.Paper{Name: "bad", Size: models.PageDimensions{Width: -5}}, models.PageDimensions{})
			Expect(page).To(Equal(models.PageDimensions{Width: 50, Height: 50}))
		})

		It("should reject malformed sizes", func() {
			_, err := layout.ParsePaperLabel("Odd (abc×297)")
			Expect(err).To(HaveOccurred())
			_, err = layout.ParsePaperLabel("Nothing here")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("PageFor", func() {
		custom := models.PageDimensions{Width: 100, Height: 150}

		It("should keep the paper upright for portrait modes", func() {
			Expect(layout.PageFor(models.DoublePortrait, layout.A4, custom)).
				To(Equal(models.PageDimensions{Width: 210, Height: 297}))
		})

		It("should turn the paper for landscape modes", func() {
			Expect(layout.PageFor(models.QuadrupleLandscape, layout.A4, custom)).
				To(Equal(models.PageDimensions{Width: 297, Height: 210}))
		})

		It("should use the clamped custom size for custom mode", func() {
			Expect(layout.PageFor(models.Custom, layout.A4, models.PageDimensions{Width: 10, Height: 150})).
				To(Equal(models.PageDimensions{Width: 50, Height: 150}))
		})
	})
})
