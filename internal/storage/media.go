// Package storage keeps painting images on local disk, standing in for
// the hosted object bucket the storefront used to delegate to. Keys are
// timestamp-prefixed file names; public URLs are served under /media.
package storage

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"
)

const (
	bucket = "paintings"
	// Uploads wider than this are downscaled before saving.
	maxWidth = 1600
)

var ErrUnsupportedFormat = fmt.Errorf("unsupported image format (want jpg or png)")

type MediaStore struct {
	root string // media directory backing /media/*
}

func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
		return nil, err
	}
	return &MediaStore{root: root}, nil
}

// SavePainting decodes, bounds and stores an uploaded image, returning
// the public URL to persist on the painting row.
func (s *MediaStore) SavePainting(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, ext, err := decode(f, fh.Filename)
	if err != nil {
		return "", err
	}
	if img.Bounds().Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	key := objectKey(fh.Filename, ext)
	full := filepath.Join(s.root, bucket, key)
	out, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch ext {
	case ".png":
		err = png.Encode(out, img)
	default:
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 88})
	}
	if err != nil {
		return "", err
	}
	return "/media/" + bucket + "/" + key, nil
}

// RemoveByURL derives the object key from a stored public URL and deletes
// the backing file. Callers treat failure as non-fatal.
func (s *MediaStore) RemoveByURL(imageURL string) error {
	u, err := url.Parse(imageURL)
	if err != nil {
		return err
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("no object key in %q", imageURL)
	}
	return os.Remove(filepath.Join(s.root, bucket, name))
}

func decode(r io.Reader, filename string) (image.Image, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(r)
		return img, ".jpg", err
	case ".png":
		img, err := png.Decode(r)
		return img, ".png", err
	}
	return nil, "", ErrUnsupportedFormat
}

// objectKey builds "<unix-millis>_<sanitized original name>". The
// timestamp prefix keeps repeated uploads of the same file distinct.
func objectKey(filename, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "upload"
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), name, ext)
}
