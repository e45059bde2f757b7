package journaltex

// ConvertOptions holds options for normalization.
type ConvertOptions struct {
	FlattenHTML bool
	EnsureLatex bool
	Dialect     *Dialect
	Concurrency int
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithHTML sets whether HTML tags and entities are flattened first.
func WithHTML(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.FlattenHTML = enable
	}
}

// WithEnsureLatex sets whether article fields are normalized at all.
// Disabling it keeps the raw strings, which is only useful for comparisons.
func WithEnsureLatex(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.EnsureLatex = enable
	}
}

// WithDialect sets a custom compiled Dialect.
func WithDialect(d *Dialect) Option {
	return func(opts *ConvertOptions) {
		opts.Dialect = d
	}
}

// WithConcurrency sets the number of workers used by the batch APIs.
func WithConcurrency(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Concurrency = n
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		FlattenHTML: true,
		EnsureLatex: true,
		Dialect:     DefaultDialect(),
		Concurrency: 8,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Dialect == nil {
		options.Dialect = DefaultDialect()
	}
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}
	return options
}
