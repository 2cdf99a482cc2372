// Package batch expands command-line inputs into disclosure sources.
package batch

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jjenkins/lobbying/internal/disclosure"
)

var zipMagic = []byte("PK\x03\x04")

// ID derives a document identifier from a file name: the base name without
// its extension.
func ID(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Inputs are the sources expanded from the command line. Archive members are
// read on demand, so the archives stay open until Close.
type Inputs struct {
	Sources  []disclosure.Source
	archives []io.Closer
}

// Close releases every archive opened by Expand.
func (in *Inputs) Close() error {
	var errs []error
	for _, c := range in.archives {
		errs = append(errs, c.Close())
	}
	in.archives = nil
	return errors.Join(errs...)
}

// Expand turns each argument into sources. A directory yields its files in
// name order, a zip archive yields its members in archive order, and anything
// else is a single file. Nothing is read beyond a zip's directory until a
// source is opened.
func Expand(args []string) (*Inputs, error) {
	in := &Inputs{}
	for _, arg := range args {
		if err := in.expand(arg); err != nil {
			in.Close()
			return nil, err
		}
	}
	return in, nil
}

func (in *Inputs) expand(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", path, err)
	}

	if info.IsDir() {
		return in.expandDir(path)
	}

	isZip, err := hasZipMagic(path)
	if err != nil {
		return err
	}
	if isZip {
		return in.expandZip(path)
	}
	in.Sources = append(in.Sources, disclosure.FromPath(ID(path), path))
	return nil
}

func (in *Inputs) expandDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		in.Sources = append(in.Sources, disclosure.FromPath(ID(e.Name()), path))
	}
	return nil
}

// expandZip reads only the archive's directory. Members share the open
// archive and may be opened concurrently.
func (in *Inputs) expandZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	in.archives = append(in.archives, zr)

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		in.Sources = append(in.Sources, disclosure.FromOpener(ID(f.Name), member(path, f)))
	}
	return nil
}

func member(archive string, f *zip.File) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from %s: %w", f.Name, archive, err)
		}
		return rc, nil
	}
}

func hasZipMagic(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, len(zipMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.Equal(head[:n], zipMagic), nil
}
