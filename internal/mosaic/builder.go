package mosaic

// Builder describes one generation pass. Every With method returns a
// modified copy, so a Builder can be shared and specialised freely.
type Builder struct {
	size     Size
	seed     Triangle
	gap      Gap
	maxRings int
}

// NewBuilder returns a pass over an empty viewport with a unit seed and
// edge-to-edge spacing.
func NewBuilder() Builder {
	return Builder{
		seed:     Triangle{Radius: 1, Angle: Upright},
		gap:      Gap{X: 1, Y: 1},
		maxRings: DefaultMaxRings,
	}
}

func (b Builder) WithSize(width, height float64) Builder {
	b.size = Size{Width: width, Height: height}
	return b
}

func (b Builder) WithRadius(radius float64) Builder {
	b.seed.Radius = radius
	return b
}

func (b Builder) WithGap(x, y float64) Builder {
	b.gap = Gap{X: x, Y: y}
	return b
}

// WithSeed replaces the seed triangle, including its radius.
func (b Builder) WithSeed(seed Triangle) Builder {
	b.seed = seed
	return b
}

func (b Builder) WithZ(z float64) Builder {
	b.seed.Z = z
	return b
}

func (b Builder) WithColors(stroke, fill Color) Builder {
	b.seed.Stroke = stroke
	b.seed.Fill = fill
	return b
}

func (b Builder) WithMaxRings(n int) Builder {
	b.maxRings = n
	return b
}

func (b Builder) Size() Size     { return b.size }
func (b Builder) Seed() Triangle { return b.seed }
func (b Builder) Gap() Gap       { return b.gap }

// Rings reports the ring count the pass would run.
func (b Builder) Rings() (int, error) {
	return PlanRings(b.size, b.seed.Radius, b.gap, b.maxRings)
}

// Build runs the pass.
func (b Builder) Build() ([]Triangle, error) {
	return generate(b.size, b.seed, b.gap, b.maxRings)
}
