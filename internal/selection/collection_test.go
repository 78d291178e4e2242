package selection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sizuichu/SuperFaPiao/internal/selection"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

func sourcePaths(docs []models.ImportedDocument) []string {
	paths := make([]string, len(docs))
	for i, d := range docs {
		paths[i] = d.SourcePath
	}
	return paths
}

var _ = Describe("Collection", func() {
	var c *selection.Collection

	BeforeEach(func() {
		c = selection.NewCollection()
	})

	It("should import the same path only once", func() {
		first := c.AcceptImportBatch([]string{"/a/ticket.pdf"})
		Expect(first.Added).To(HaveLen(1))

		second := c.AcceptImportBatch([]string{"/a/ticket.pdf"})
		Expect(second.Added).To(BeEmpty())
		Expect(second.Duplicates).To(ConsistOf("/a/ticket.pdf"))
		Expect(c.Len()).To(Equal(1))
	})

	It("should drop duplicates inside a single batch", func() {
		result := c.AcceptImportBatch([]string{"/a/x.png", "/a/x.png", "/a/y.pdf"})
		Expect(result.Added).To(HaveLen(2))
		Expect(sourcePaths(c.Items())).To(Equal([]string{"/a/y.pdf", "/a/x.png"}))
	})

	It("should apply the ordering rule per batch and append batches", func() {
		c.AcceptImportBatch([]string{"/s/b.png", "/s/a.pdf"})
		c.AcceptImportBatch([]string{"/s/c.jpg", "/s/0.pdf"})
		Expect(sourcePaths(c.Items())).To(Equal([]string{"/s/a.pdf", "/s/b.png", "/s/0.pdf", "/s/c.jpg"}))
	})

	It("should skip unsupported files", func() {
		result := c.AcceptImportBatch([]string{"/s/notes.txt", "/s/a.pdf"})
		Expect(result.Unsupported).To(ConsistOf("/s/notes.txt"))
		Expect(c.Len()).To(Equal(1))
	})

	It("should record display name and kind", func() {
		c.AcceptImportBatch([]string{"/scans/taxi.JPG"})
		doc, ok := c.At(0)
		Expect(ok).To(BeTrue())
		Expect(doc.DisplayName).To(Equal("taxi.JPG"))
		Expect(doc.Kind).To(Equal(models.KindImage))
	})

	It("should allow re-importing after removal", func() {
		c.AcceptImportBatch([]string{"/a/1.pdf", "/a/2.pdf"})
		Expect(c.Remove("/a/1.pdf")).To(BeTrue())
		Expect(c.Remove("/a/1.pdf")).To(BeFalse())
		Expect(c.IndexOf("/a/2.pdf")).To(Equal(0))

		result := c.AcceptImportBatch([]string{"/a/1.pdf"})
		Expect(result.Added).To(HaveLen(1))
		Expect(c.Len()).To(Equal(2))
	})

	It("should hand out copies", func() {
		c.AcceptImportBatch([]string{"/a/1.pdf"})
		items := c.Items()
		items[0].SourcePath = "/elsewhere"
		Expect(c.IndexOf("/a/1.pdf")).To(Equal(0))
	})

	It("should forget everything on Clear", func() {
		c.AcceptImportBatch([]string{"/a/1.pdf"})
		c.Clear()
		Expect(c.Len()).To(BeZero())
		_, ok := c.At(0)
		Expect(ok).To(BeFalse())
		Expect(c.AcceptImportBatch([]string{"/a/1.pdf"}).Added).To(HaveLen(1))
	})
})
