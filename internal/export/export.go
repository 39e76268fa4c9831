// Package export writes rendered output to a destination: a directory on an
// afero filesystem or an S3 bucket.
package export

import (
	"context"
	"mime"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vango-dev/vdiff/internal/errors"
)

// Sink stores named documents.
type Sink interface {
	// Write stores data under name and returns where it went.
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// FileSink writes files below a directory.
type FileSink struct {
	fs  afero.Fs
	dir string
}

// NewFileSink creates dir on fs if needed.
func NewFileSink(fs afero.Fs, dir string) (*FileSink, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E501").WithDetail(dir).Wrap(err)
	}
	return &FileSink{fs: fs, dir: dir}, nil
}

// Write writes dir/name, creating parent directories.
func (s *FileSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := s.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return "", errors.New("E501").WithDetail(p).Wrap(err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0644); err != nil {
		return "", errors.New("E501").WithDetail(p).Wrap(err)
	}
	return p, nil
}

// contentType guesses the media type from name's extension.
func contentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// Multi writes to every sink in order and stops at the first failure.
type Multi []Sink

// Write returns the location reported by the first sink.
func (m Multi) Write(ctx context.Context, name string, data []byte) (string, error) {
	var first string
	for i, s := range m {
		loc, err := s.Write(ctx, name, data)
		if err != nil {
			return "", err
		}
		if i == 0 {
			first = loc
		}
	}
	return first, nil
}
