package mosaic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

var _ = Describe("Builder", func() {
	It("returns copies instead of mutating the receiver", func() {
		base := mosaic.NewBuilder().WithSize(100, 100).WithRadius(10)
		wide := base.WithSize(400, 100).WithGap(1.5, 1.5)

		Expect(base.Size()).To(Equal(mosaic.Size{Width: 100, Height: 100}))
		Expect(base.Gap()).To(Equal(mosaic.Gap{X: 1, Y: 1}))
		Expect(wide.Size()).To(Equal(mosaic.Size{Width: 400, Height: 100}))
		Expect(wide.Seed().Radius).To(Equal(10.0))
	})

	It("matches Generate for the same inputs", func() {
		b := mosaic.NewBuilder().WithSize(300, 200).WithRadius(8).WithGap(1.1, 1.1).WithZ(2)
		fromBuilder, err := b.Build()
		Expect(err).NotTo(HaveOccurred())

		direct, err := mosaic.Generate(b.Size(), b.Seed(), b.Gap())
		Expect(err).NotTo(HaveOccurred())
		Expect(fromBuilder).To(Equal(direct))

		rings, err := b.Rings()
		Expect(err).NotTo(HaveOccurred())
		Expect(fromBuilder).To(HaveLen(mosaic.Count(rings)))
	})

	It("validates the seed radius", func() {
		_, err := mosaic.NewBuilder().WithSize(10, 10).WithRadius(-1).Build()
		Expect(err).To(MatchError(mosaic.ErrInvalidRadius))
	})
})
