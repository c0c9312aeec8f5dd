package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Loader fetches and decodes a bitmap.
type Loader interface {
	Load(ctx context.Context, path string) (Bitmap, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (Bitmap, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, path string) (Bitmap, error) {
	return f(ctx, path)
}

// FileLoader decodes images from disk. Relative paths resolve against Root.
type FileLoader struct {
	Root string
}

// Load reads and decodes the image at path.
func (l FileLoader) Load(ctx context.Context, path string) (Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) && l.Root != "" {
		path = filepath.Join(l.Root, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", filepath.Base(path), err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode asset %s: empty %s image", filepath.Base(path), format)
	}
	return NewImageBitmap(img), nil
}
