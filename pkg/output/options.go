package output

type Option func(c *config)

type config struct {
	name     string
	progmem  bool
	progress bool
}

func newConfig(opts []Option) *config {
	c := &config{progmem: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithName prefixes the generated array identifiers.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithProgmem toggles the PROGMEM attribute on the arrays.
func WithProgmem(on bool) Option {
	return func(c *config) {
		c.progmem = on
	}
}

// WithProgress shows a byte progress bar on stdout while saving.
func WithProgress(on bool) Option {
	return func(c *config) {
		c.progress = on
	}
}

func (c *config) paletteName() string {
	if c.name == "" {
		return "palette"
	}
	return c.name + "_palette"
}

func (c *config) dataName() string {
	if c.name == "" {
		return "image_data"
	}
	return c.name + "_data"
}
