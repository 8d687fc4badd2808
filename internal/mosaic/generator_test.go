package mosaic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

var _ = Describe("Generate", func() {
	var (
		seed mosaic.Triangle
		gap  mosaic.Gap
	)

	BeforeEach(func() {
		seed = mosaic.Triangle{Radius: 10}
		gap = mosaic.Gap{X: 1.1, Y: 1.1}
	})

	It("always keeps the seed first", func() {
		for _, size := range []mosaic.Size{{0, 0}, {5, 5}, {100, 100}, {1920, 1080}} {
			out, err := mosaic.Generate(size, seed, gap)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(BeEmpty())
			Expect(out[0]).To(Equal(seed))
		}
	})

	It("returns just the seed for a viewport smaller than one deviation", func() {
		out, err := mosaic.Generate(mosaic.Size{Width: 5, Height: 5}, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(1))
	})

	It("terminates after seven rings on a 1920x1080 viewport", func() {
		size := mosaic.Size{Width: 1920, Height: 1080}
		rings, err := mosaic.PlanRings(size, 10, gap, mosaic.DefaultMaxRings)
		Expect(err).NotTo(HaveOccurred())
		Expect(rings).To(Equal(7))

		out, err := mosaic.Generate(size, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(16384))
	})

	DescribeTable("grows by four per ring",
		func(width, height, radius float64) {
			size := mosaic.Size{Width: width, Height: height}
			rings, err := mosaic.PlanRings(size, radius, gap, mosaic.DefaultMaxRings)
			Expect(err).NotTo(HaveOccurred())

			out, err := mosaic.Generate(size, mosaic.Triangle{Radius: radius}, gap)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(int(math.Pow(4, float64(rings)))))
			Expect(len(out)).To(Equal(mosaic.Count(rings)))
		},
		Entry("tiny", 1.0, 1.0, 10.0),
		Entry("square", 100.0, 100.0, 10.0),
		Entry("wide", 800.0, 200.0, 6.0),
		Entry("full hd", 1920.0, 1080.0, 12.0),
	)

	It("flips the orientation of every shifted copy", func() {
		out, err := mosaic.Generate(mosaic.Size{Width: 400, Height: 300}, seed, gap)
		Expect(err).NotTo(HaveOccurred())

		for _, t := range out {
			Expect(t.Angle).To(Or(Equal(mosaic.Upright), Equal(mosaic.Inverted)))
		}

		for n := 1; 4*n <= len(out); n *= 4 {
			for batch := 0; batch < 3; batch++ {
				for i := 0; i < n; i++ {
					src := out[i]
					dst := out[n+batch*n+i]
					want := math.Mod(math.Pi-src.Angle+2*math.Pi, 2*math.Pi)
					Expect(dst.Angle).To(BeNumerically("~", want, 1e-12))
				}
			}
		}
	})

	It("places the first ring at the seed plus the deviation vectors", func() {
		out, err := mosaic.Generate(mosaic.Size{Width: 100, Height: 100}, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(256))

		side := 10 * math.Sqrt(3)
		expected := []mosaic.Vec2{
			{X: side / 2 * 1.1, Y: 10.0 / 2 * 1.1},
			{X: -side / 2 * 1.1, Y: 10.0 / 2 * 1.1},
			{X: 0, Y: -10 * 1.1},
		}
		for i, v := range expected {
			Expect(out[i+1].X).To(BeNumerically("~", v.X, 1e-9))
			Expect(out[i+1].Y).To(BeNumerically("~", v.Y, 1e-9))
			Expect(out[i+1].Angle).To(Equal(mosaic.Inverted))
		}
	})

	It("keeps radius, depth and colours of the seed on every triangle", func() {
		seed.Z = 3
		seed.Stroke = mosaic.Color{R: 1, A: 0.5}
		out, err := mosaic.Generate(mosaic.Size{Width: 200, Height: 200}, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		for _, t := range out {
			Expect(t.Radius).To(Equal(seed.Radius))
			Expect(t.Z).To(Equal(3.0))
			Expect(t.Stroke).To(Equal(seed.Stroke))
		}
	})

	It("is deterministic", func() {
		size := mosaic.Size{Width: 640, Height: 480}
		a, err := mosaic.Generate(size, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		b, err := mosaic.Generate(size, seed, gap)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	DescribeTable("rejects misconfiguration",
		func(size mosaic.Size, radius float64, g mosaic.Gap, want error) {
			out, err := mosaic.Generate(size, mosaic.Triangle{Radius: radius}, g)
			Expect(err).To(MatchError(want))
			Expect(out).To(BeNil())

			var cfgErr *mosaic.ConfigError
			Expect(err).To(BeAssignableToTypeOf(cfgErr))
		},
		Entry("zero gap", mosaic.Size{Width: 100, Height: 100}, 10.0, mosaic.Gap{X: 0, Y: 1}, mosaic.ErrInvalidGap),
		Entry("negative gap", mosaic.Size{Width: 100, Height: 100}, 10.0, mosaic.Gap{X: 1, Y: -1}, mosaic.ErrInvalidGap),
		Entry("NaN gap", mosaic.Size{Width: 100, Height: 100}, 10.0, mosaic.Gap{X: math.NaN(), Y: 1}, mosaic.ErrInvalidGap),
		Entry("zero radius", mosaic.Size{Width: 100, Height: 100}, 0.0, mosaic.Gap{X: 1, Y: 1}, mosaic.ErrInvalidRadius),
		Entry("infinite radius", mosaic.Size{Width: 100, Height: 100}, math.Inf(1), mosaic.Gap{X: 1, Y: 1}, mosaic.ErrInvalidRadius),
		Entry("negative width", mosaic.Size{Width: -1, Height: 100}, 10.0, mosaic.Gap{X: 1, Y: 1}, mosaic.ErrInvalidViewport),
		Entry("infinite height", mosaic.Size{Width: 100, Height: math.Inf(1)}, 10.0, mosaic.Gap{X: 1, Y: 1}, mosaic.ErrInvalidViewport),
	)

	It("refuses passes beyond the ring cap", func() {
		b := mosaic.NewBuilder().WithSize(1920, 1080).WithRadius(10).WithGap(1.1, 1.1).WithMaxRings(6)
		out, err := b.Build()
		Expect(err).To(MatchError(mosaic.ErrRingLimit))
		Expect(out).To(BeNil())

		out, err = b.WithMaxRings(7).Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(16384))
	})
})

var _ = Describe("Triangle", func() {
	It("derives the side from the radius", func() {
		Expect(mosaic.Triangle{Radius: 2}.Side()).To(BeNumerically("~", 2*math.Sqrt(3), 1e-12))
	})

	It("points upright triangles up and inverted ones down", func() {
		up := mosaic.Triangle{Radius: 1}.Vertices(1, 1)
		Expect(up[0].X).To(BeNumerically("~", 0, 1e-12))
		Expect(up[0].Y).To(BeNumerically("~", 1, 1e-12))

		down := mosaic.Triangle{Radius: 1, Angle: mosaic.Inverted}.Vertices(1, 1)
		Expect(down[0].Y).To(BeNumerically("~", -1, 1e-12))
	})

	It("shares an edge with its first-ring neighbour when there is no gap", func() {
		out, err := mosaic.Generate(mosaic.Size{Width: 50, Height: 50}, mosaic.Triangle{Radius: 1}, mosaic.Gap{X: 1, Y: 1})
		Expect(err).NotTo(HaveOccurred())

		seed := out[0].Vertices(1, 1)
		right := out[1].Vertices(1, 1)
		shared := 0
		for _, p := range seed {
			for _, q := range right {
				if math.Abs(p.X-q.X) < 1e-9 && math.Abs(p.Y-q.Y) < 1e-9 {
					shared++
				}
			}
		}
		Expect(shared).To(Equal(2))
	})

	It("collapses to its centre at zero scale", func() {
		t := mosaic.Triangle{X: 4, Y: -2, Radius: 3}
		for _, v := range t.Vertices(0, 0) {
			Expect(v).To(Equal(mosaic.Vec2{X: 4, Y: -2}))
		}
	})
})
