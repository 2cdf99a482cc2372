package batch

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/lobbying/internal/disclosure"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func ids(sources []disclosure.Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.ID
	}
	return out
}

func expand(t *testing.T, args ...string) []disclosure.Source {
	t.Helper()
	in, err := Expand(args)
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	return in.Sources
}

func writeZip(t *testing.T, path string, members ...[2]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, m := range members {
		w, err := zw.Create(m[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(m[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func readSource(t *testing.T, src disclosure.Source) string {
	t.Helper()
	require.NotNil(t, src.Opener)
	rc, err := src.Opener()
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestID(t *testing.T) {
	assert.Equal(t, "300012345", ID("/data/2019_Q1/300012345.xml"))
	assert.Equal(t, "archive", ID("archive.zip"))
	assert.Equal(t, "noext", ID("noext"))
	assert.Equal(t, "a.b", ID("dir/a.b.xml"))
}

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.xml"), "<b/>")
	writeFile(t, filepath.Join(dir, "a.xml"), "<a/>")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	sources := expand(t, dir)
	assert.Equal(t, []string{"a", "b"}, ids(sources))
	assert.Equal(t, filepath.Join(dir, "a.xml"), sources[0].Path)
	assert.Nil(t, sources[0].Content)
}

func TestExpandZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2019_1stQuarter_XML.zip")
	writeZip(t, path,
		[2]string{"300000002.xml", "<two/>"},
		[2]string{"300000001.xml", "<one/>"},
		[2]string{"empty.xml", ""},
	)

	sources := expand(t, path)
	assert.Equal(t, []string{"300000002", "300000001", "empty"}, ids(sources))
	for _, src := range sources {
		assert.Nil(t, src.Content)
		assert.Empty(t, src.Path)
	}
	assert.Equal(t, "<two/>", readSource(t, sources[0]))
	assert.Equal(t, "<one/>", readSource(t, sources[1]))
	assert.Empty(t, readSource(t, sources[2]))

	// Members can be read more than once.
	assert.Equal(t, "<two/>", readSource(t, sources[0]))
}

func TestExpandZipMembersReadConcurrently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2019_Registrations_XML.zip")
	writeZip(t, path,
		[2]string{"a.xml", "<LOBBYINGDISCLOSURE1/>"},
		[2]string{"b.xml", "<LOBBYINGDISCLOSURE2/>"},
		[2]string{"c.xml", "<PublicFilings/>"},
	)
	sources := expand(t, path)

	kinds := make([]disclosure.Kind, len(sources))
	errs := make([]error, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kinds[i], errs[i] = disclosure.Classify(src)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []disclosure.Kind{disclosure.HouseRegistration, disclosure.HouseReport, disclosure.SenateFilings}, kinds)
}

func TestInputsCloseReleasesArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.zip")
	writeZip(t, path, [2]string{"a.xml", "<a/>"})

	in, err := Expand([]string{path})
	require.NoError(t, err)
	require.Len(t, in.Sources, 1)
	require.NoError(t, in.Close())
	require.NoError(t, in.Close())

	_, err = in.Sources[0].Opener()
	assert.Error(t, err)
}

func TestExpandFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "z.xml")
	second := filepath.Join(dir, "tiny")
	writeFile(t, first, "<z/>")
	writeFile(t, second, "P")

	sources := expand(t, first, second)
	assert.Equal(t, []string{"z", "tiny"}, ids(sources))
	assert.Equal(t, second, sources[1].Path)
}

func TestExpandMissing(t *testing.T) {
	_, err := Expand([]string{filepath.Join(t.TempDir(), "missing.xml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
