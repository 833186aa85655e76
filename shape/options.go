package shape

import "github.com/go-text/typesetting/language"

// Option configures a Shaper.
type Option func(*config)

type config struct {
	language   language.Language
	cacheLimit int
	direction  Direction
}

func defaultConfig() config {
	return config{
		language:   language.NewLanguage("en"),
		cacheLimit: 16,
		direction:  DirectionAuto,
	}
}

// WithLanguage sets the BCP 47 language used for shaping, for example
// "ar" or "sr-Latn". The default is "en".
func WithLanguage(tag string) Option {
	return func(c *config) {
		if tag != "" {
			c.language = language.NewLanguage(tag)
		}
	}
}

// WithCacheLimit sets how many parsed fonts the Shaper keeps.
// 0 keeps every font.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.cacheLimit = n
		}
	}
}

// WithDirection sets the paragraph base direction. The default,
// DirectionAuto, takes it from the first strong character.
func WithDirection(d Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}
