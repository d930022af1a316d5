package log

// Option applies a configuration option to config.
//
// Options are consumed by [New], [NewHandlerFactory], and the convenience
// factory functions [Get], [GetForType], and [GetForCaller], where only
// [WithLevel] and [WithClock] have any effect.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}
