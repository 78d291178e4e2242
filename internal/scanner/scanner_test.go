package scanner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sizuichu/SuperFaPiao/internal/scanner"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
)

var _ = Describe("Scanner", func() {
	var (
		testDir    string
		testLogger *logger.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "scanner-test-*")
		Expect(err).NotTo(HaveOccurred())

		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when scanning an empty directory", func() {
		It("should return an error", func() {
			s := scanner.New(testLogger)
			_, err := s.FindDocuments(ctx, testDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no supported documents found"))
		})
	})

	Context("when scanning a directory with tickets", func() {
		BeforeEach(func() {
			for i, ext := range []string{"pdf", "PDF", "jpg", "png"} {
				err := os.WriteFile(
					filepath.Join(testDir, fmt.Sprintf("ticket%d.%s", i+1, ext)),
					[]byte("dummy content"),
					0644,
				)
				Expect(err).NotTo(HaveOccurred())
			}

			err := os.WriteFile(filepath.Join(testDir, "test.txt"), []byte("text file"), 0644)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should find only supported files", func() {
			s := scanner.New(testLogger)
			docs, err := s.FindDocuments(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(4))

			for _, doc := range docs {
				Expect(filepath.IsAbs(doc.AbsolutePath)).To(BeTrue())
				Expect(doc.RelativePath).NotTo(HaveSuffix(".txt"))
			}
		})
	})

	Context("when scanning nested directories", func() {
		BeforeEach(func() {
			nestedDir := filepath.Join(testDir, "nested")
			err := os.MkdirAll(nestedDir, 0755)
			Expect(err).NotTo(HaveOccurred())

			files := []string{
				filepath.Join(testDir, "root.pdf"),
				filepath.Join(nestedDir, "nested.tiff"),
			}

			for _, file := range files {
				err := os.WriteFile(file, []byte("dummy content"), 0644)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should find documents in all subdirectories", func() {
			s := scanner.New(testLogger)
			docs, err := s.FindDocuments(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())

			var relPaths []string
			for _, doc := range docs {
				relPaths = append(relPaths, doc.RelativePath)
			}
			Expect(relPaths).To(ConsistOf("root.pdf", filepath.Join("nested", "nested.tiff")))
		})

		It("should expand directories and pass files through", func() {
			loose := filepath.Join(os.TempDir(), "loose-ticket.txt")
			Expect(os.WriteFile(loose, []byte("x"), 0644)).To(Succeed())
			DeferCleanup(os.Remove, loose)

			s := scanner.New(testLogger)
			paths, err := s.ExpandInputs(ctx, []string{testDir, loose})
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(HaveLen(3))
			Expect(paths).To(ContainElement(loose))
		})

		It("should fail on inputs that do not exist", func() {
			s := scanner.New(testLogger)
			_, err := s.ExpandInputs(ctx, []string{filepath.Join(testDir, "missing.pdf")})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when context is cancelled", func() {
		It("should stop scanning", func() {
			deepDir := filepath.Join(testDir, "deep", "deeper", "deepest")
			err := os.MkdirAll(deepDir, 0755)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			s := scanner.New(testLogger)
			_, err = s.FindDocuments(ctx, testDir)

			Expect(err).To(Equal(context.Canceled))
		})
	})
})
