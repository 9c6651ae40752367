// Package assets loads the images the renderer needs before the game boots.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/sync/errgroup"
)

var ErrNoAssets = errors.New("no assets requested")

// LoadAll decodes every PNG concurrently and returns them in argument order.
// The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, paths ...string) ([]image.Image, error) {
	if len(paths) == 0 {
		return nil, ErrNoAssets
	}

	images := make([]image.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for idx, path := range paths {
		g.Go(func() error {
			img, err := load(ctx, path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			images[idx] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, ctx.Err()
}
