package ring

type config struct {
	zeroVacated bool
}

// Option configures a Buffer at construction time.
type Option func(*config)

// WithVacatedZeroing makes the buffer write the zero value into every slot
// it vacates (pops, single-element linearization, clear). Required when the
// element type holds references that should become collectable as soon as
// the element logically leaves the buffer.
func WithVacatedZeroing() Option {
	return func(c *config) {
		c.zeroVacated = true
	}
}
