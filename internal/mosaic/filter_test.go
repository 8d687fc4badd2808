package mosaic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

var _ = Describe("Visible", func() {
	It("always keeps a triangle centred on the origin", func() {
		for _, size := range []mosaic.Size{{1, 1}, {0.01, 500}, {1920, 1080}} {
			t := mosaic.Triangle{Radius: 10}
			Expect(t.Intersects(size)).To(BeTrue())
		}
	})

	It("drops triangles beyond half the width plus the radius", func() {
		size := mosaic.Size{Width: 100, Height: 100}
		Expect(mosaic.Triangle{X: 60.5, Radius: 10}.Intersects(size)).To(BeFalse())
		Expect(mosaic.Triangle{X: -60.5, Radius: 10}.Intersects(size)).To(BeFalse())
		Expect(mosaic.Triangle{Y: 61, Radius: 10}.Intersects(size)).To(BeFalse())
		Expect(mosaic.Triangle{X: 59.5, Radius: 10}.Intersects(size)).To(BeTrue())
	})

	It("treats touching circles as outside", func() {
		size := mosaic.Size{Width: 100, Height: 100}
		Expect(mosaic.Triangle{X: 60, Radius: 10}.Intersects(size)).To(BeFalse())
	})

	It("culls a generated set to the viewport in order", func() {
		size := mosaic.Size{Width: 100, Height: 100}
		all, err := mosaic.Generate(size, mosaic.Triangle{Radius: 10}, mosaic.Gap{X: 1.1, Y: 1.1})
		Expect(err).NotTo(HaveOccurred())

		visible := mosaic.Visible(all, size)
		Expect(visible).NotTo(BeEmpty())
		Expect(len(visible)).To(BeNumerically("<", len(all)))
		Expect(visible[0]).To(Equal(all[0]))

		for _, t := range visible {
			Expect(math.Abs(t.X)).To(BeNumerically("<", 60))
			Expect(math.Abs(t.Y)).To(BeNumerically("<", 60))
		}

		dropped := 0
		for _, t := range all {
			if math.Abs(t.X) >= 60 || math.Abs(t.Y) >= 60 {
				dropped++
			}
		}
		Expect(dropped).To(BeNumerically(">", 0))
		Expect(len(visible)).To(BeNumerically("<=", len(all)-dropped))
	})

	It("returns an empty set for empty input", func() {
		Expect(mosaic.Visible(nil, mosaic.Size{Width: 10, Height: 10})).To(BeEmpty())
	})
})
