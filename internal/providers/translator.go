package providers

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedPair reports a (source, target) combination outside the
	// two supported directions.
	ErrUnsupportedPair = errors.New("unsupported language pair")
	// ErrModelUnavailable reports that the model for a direction could not be
	// loaded or invoked.
	ErrModelUnavailable = errors.New("translation model unavailable")
)

// Direction is one of the two supported ordered language pairs.
type Direction string

const (
	DirectionEn2Vi Direction = "en2vi"
	DirectionVi2En Direction = "vi2en"
)

// ParseDirection maps a (sourceLang, targetLang) pair onto a Direction.
// Anything other than en→vi or vi→en fails with ErrUnsupportedPair.
func ParseDirection(sourceLang, targetLang string) (Direction, error) {
	switch {
	case sourceLang == "en" && targetLang == "vi":
		return DirectionEn2Vi, nil
	case sourceLang == "vi" && targetLang == "en":
		return DirectionVi2En, nil
	default:
		return "", ErrUnsupportedPair
	}
}

func (d Direction) SourceLang() string {
	if d == DirectionVi2En {
		return "vi"
	}
	return "en"
}

func (d Direction) TargetLang() string {
	if d == DirectionVi2En {
		return "en"
	}
	return "vi"
}

// Translator produces a translation in a fixed direction. Implementations
// must be safe for concurrent use; loaded translators live for the process
// lifetime.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, text string) (string, error)

func (f TranslatorFunc) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
