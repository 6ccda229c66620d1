package providers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsUnsupportedPair(t *testing.T) {
	r := NewRegistry(func(Direction) (Translator, error) {
		t.Fatal("factory must not run for an unsupported pair")
		return nil, nil
	})

	for _, pair := range [][2]string{
		{"en", "en"},
		{"vi", "vi"},
		{"en", "fr"},
		{"", ""},
	} {
		_, err := r.Translate(context.Background(), "hello", pair[0], pair[1])
		require.ErrorIs(t, err, ErrUnsupportedPair)
	}
}

func TestRegistryLoadsEachDirectionOnce(t *testing.T) {
	var calls atomic.Int32
	r := NewRegistry(func(d Direction) (Translator, error) {
		calls.Add(1)
		return TranslatorFunc(func(ctx context.Context, text string) (string, error) {
			return string(d) + ":" + text, nil
		}), nil
	})

	const workers = 32
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Translate(context.Background(), "hello", "en", "vi")
			if err != nil {
				results <- err.Error()
				return
			}
			results <- out
		}()
	}
	wg.Wait()
	close(results)
	for out := range results {
		require.Equal(t, "en2vi:hello", out)
	}

	require.Equal(t, int32(1), calls.Load())

	out, err := r.Translate(context.Background(), "xin chào", "vi", "en")
	require.NoError(t, err)
	require.Equal(t, "vi2en:xin chào", out)
	require.Equal(t, int32(2), calls.Load())
}

func TestRegistryRetriesAfterFailedLoad(t *testing.T) {
	boom := errors.New("model load failed")
	var calls atomic.Int32
	r := NewRegistry(func(d Direction) (Translator, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return TranslatorFunc(func(ctx context.Context, text string) (string, error) {
			return "ok", nil
		}), nil
	})

	_, err := r.Translate(context.Background(), "hello", "en", "vi")
	require.ErrorIs(t, err, boom)

	out, err := r.Translate(context.Background(), "hello", "en", "vi")
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, int32(2), calls.Load())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("en", "vi")
	require.NoError(t, err)
	require.Equal(t, DirectionEn2Vi, d)
	require.Equal(t, "en", d.SourceLang())
	require.Equal(t, "vi", d.TargetLang())

	d, err = ParseDirection("vi", "en")
	require.NoError(t, err)
	require.Equal(t, DirectionVi2En, d)
	require.Equal(t, "vi", d.SourceLang())
	require.Equal(t, "en", d.TargetLang())
}
