package acceptance_test

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sizuichu/SuperFaPiao/internal/export"
	"github.com/sizuichu/SuperFaPiao/internal/pipeline"
	"github.com/sizuichu/SuperFaPiao/internal/render"
	"github.com/sizuichu/SuperFaPiao/internal/scanner"
	"github.com/sizuichu/SuperFaPiao/internal/session"
	"github.com/sizuichu/SuperFaPiao/internal/ticket"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
	"github.com/sizuichu/SuperFaPiao/tests/acceptance"
)

var (
	red   = color.RGBA{R: 220, A: 255}
	green = color.RGBA{G: 200, A: 255}
	blue  = color.RGBA{B: 220, A: 255}
)

var _ = Describe("SuperFaPiao End-to-End", Ordered, func() {
	var (
		inputDir   string
		outputDir  string
		tempDir    string
		ctx        context.Context
		testLogger *logger.Logger
		fixtures   *acceptance.Fixtures
	)

	BeforeAll(func() {
		var err error
		inputDir, err = os.MkdirTemp("", "superfapiao-acceptance-in-*")
		Expect(err).NotTo(HaveOccurred())
		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))

		fixtures, err = acceptance.NewFixtures(inputDir, testLogger)
		Expect(err).NotTo(HaveOccurred())

		train := ticket.SizeFor(models.TrainTicket)
		nested := filepath.Join(inputDir, "march")
		Expect(os.MkdirAll(nested, 0755)).To(Succeed())

		_, err = fixtures.PDF("Beijing-Shanghai.pdf", train, red)
		Expect(err).NotTo(HaveOccurred())
		_, err = fixtures.PNG("c-return.png", train, green)
		Expect(err).NotTo(HaveOccurred())
		_, err = fixtures.PNG("A-outbound.png", train, blue)
		Expect(err).NotTo(HaveOccurred())
		_, err = fixtures.PNG(filepath.Join("march", "b-transfer.png"), train, green)
		Expect(err).NotTo(HaveOccurred())
		_, err = fixtures.PNG("notes.txt", train, green)
		Expect(err).NotTo(HaveOccurred())
		Expect(fixtures.Cleanup()).To(Succeed())
	})

	AfterAll(func() {
		Expect(os.RemoveAll(inputDir)).To(Succeed())
	})

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		tempDir, err = os.MkdirTemp("", "superfapiao-acceptance-temp-*")
		Expect(err).NotTo(HaveOccurred())
		outputDir, err = os.MkdirTemp("", "superfapiao-acceptance-out-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
		Expect(os.RemoveAll(outputDir)).To(Succeed())
	})

	newService := func(sess *session.Session, dpi int) *pipeline.Service {
		exporter, err := export.NewExporter(tempDir, 0, testLogger)
		Expect(err).NotTo(HaveOccurred())
		rasterizer := render.NewFileRasterizer(dpi, testLogger)
		DeferCleanup(rasterizer.Close)
		return pipeline.NewService(sess, rasterizer, exporter, render.Options{DPI: dpi, Background: true}, testLogger)
	}

	importAll := func(sess *session.Session) {
		paths, err := scanner.New(testLogger).ExpandInputs(ctx, []string{inputDir})
		Expect(err).NotTo(HaveOccurred())
		sess.Import(paths)
	}

	Context("Train tickets four to a page", Label("happy-path"), func() {
		It("should import PDFs first, then images by name", func() {
			sess := session.New(testLogger)
			sess.SetTicketType(models.TrainTicket)
			importAll(sess)

			var names []string
			for _, doc := range sess.Documents() {
				names = append(names, doc.DisplayName)
			}
			Expect(names).To(Equal([]string{
				"Beijing-Shanghai.pdf",
				"A-outbound.png",
				"b-transfer.png",
				"c-return.png",
			}))
		})

		It("should place the PDF ticket in the first slot of the exported page", func() {
			sess := session.New(testLogger)
			sess.SetTicketType(models.TrainTicket)
			Expect(sess.SetLayoutMode(models.Quadruple)).To(Succeed())
			importAll(sess)

			out := filepath.Join(outputDir, "train.pdf")
			report, err := newService(sess, 96).Export(ctx, export.FormatPDF, out)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Pages).To(Equal(1))
			Expect(report.Placed).To(Equal(4))
			Expect(report.Skipped).To(BeEmpty())

			By("Checking the page size with pdfcpu")
			dims, err := export.PageDims(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(dims).To(HaveLen(1))
			Expect(dims[0].Width).To(BeNumerically("~", 210, 0.5))
			Expect(dims[0].Height).To(BeNumerically("~", 297, 0.5))

			By("Rendering the exported page back with go-fitz")
			doc, err := fitz.New(out)
			Expect(err).NotTo(HaveOccurred())
			defer doc.Close()

			page, err := doc.ImageDPI(0, float64(utils.ScreenDPI))
			Expect(err).NotTo(HaveOccurred())

			slots := sess.Slots()
			centre := func(r models.Rect) (int, int) {
				return int(r.X + r.Width/2), int(r.Y + r.Height/2)
			}

			x, y := centre(slots[0])
			r, g, b, _ := page.At(x, y).RGBA()
			Expect(r>>8).To(BeNumerically(">", 180), "first slot should hold the red PDF ticket")
			Expect(g>>8).To(BeNumerically("<", 60))
			Expect(b>>8).To(BeNumerically("<", 60))

			x, y = centre(slots[1])
			r, g, b, _ = page.At(x, y).RGBA()
			Expect(b>>8).To(BeNumerically(">", 180), "second slot should hold A-outbound.png")
			Expect(r>>8).To(BeNumerically("<", 60))

			By("Leaving the gutter white")
			r, g, b, _ = page.At(5, 5).RGBA()
			Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(HaveEach(BeNumerically(">", 240)))
		})

		It("should render identical pages on repeated runs", func() {
			sess := session.New(testLogger)
			sess.SetTicketType(models.TrainTicket)
			Expect(sess.SetLayoutMode(models.DoublePortrait)).To(Succeed())
			importAll(sess)

			first, err := newService(sess, 48).Export(ctx, export.FormatPNG, filepath.Join(outputDir, "run1", "train.png"))
			Expect(err).NotTo(HaveOccurred())
			second, err := newService(sess, 48).Export(ctx, export.FormatPNG, filepath.Join(outputDir, "run2", "train.png"))
			Expect(err).NotTo(HaveOccurred())

			Expect(first.Outputs).To(HaveLen(2))
			Expect(second.Outputs).To(HaveLen(2))
			for i := range first.Outputs {
				Expect(hashFile(first.Outputs[i])).To(Equal(hashFile(second.Outputs[i])))
			}
			Expect(hashFile(first.Outputs[0])).NotTo(Equal(hashFile(first.Outputs[1])))
		})
	})

	Context("Documents that cannot be read", func() {
		It("should skip them and keep the rest of the page", func() {
			broken, err := os.CreateTemp(inputDir, "zz-broken-*.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(broken.Close()).To(Succeed())
			DeferCleanup(os.Remove, broken.Name())

			sess := session.New(testLogger)
			sess.SetTicketType(models.TaxiReceipt)
			Expect(sess.SetLayoutMode(models.Quadruple)).To(Succeed())
			importAll(sess)
			Expect(sess.Documents()).To(HaveLen(5))

			report, err := newService(sess, 48).Export(ctx, export.FormatPDF, filepath.Join(outputDir, "taxi.pdf"))
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Pages).To(Equal(2))
			Expect(report.Placed).To(Equal(4))
			Expect(report.Skipped).To(HaveLen(1))
			Expect(report.Skipped[0].Err).To(MatchError(render.ErrUnreadable))
		})
	})

	Context("Switching ticket type", func() {
		It("should clear the imported documents", func() {
			sess := session.New(testLogger)
			importAll(sess)
			Expect(sess.Documents()).NotTo(BeEmpty())

			sess.SetTicketType(models.FlightItinerary)
			Expect(sess.Documents()).To(BeEmpty())
			Expect(sess.LayoutMode()).To(Equal(models.SingleLandscape))

			_, err := newService(sess, 48).Preview(ctx, filepath.Join(outputDir, "preview.png"))
			Expect(err).To(MatchError(pipeline.ErrNoDocuments))
		})
	})
})

func hashFile(path string) string {
	f, err := os.Open(path)
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()

	img, _, err := image.Decode(f)
	Expect(err).NotTo(HaveOccurred())
	hash, err := utils.GenerateImageHash(img)
	Expect(err).NotTo(HaveOccurred())
	return hash
}
