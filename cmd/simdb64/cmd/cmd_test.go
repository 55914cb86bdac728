package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnightingale/simdb64"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := New(args)
	out := new(bytes.Buffer)
	c.root.SetIn(strings.NewReader(stdin))
	c.root.SetOut(out)
	c.root.SetErr(new(bytes.Buffer))
	err := c.Run(context.Background())
	return out.String(), err
}

func TestEncodeStdin(t *testing.T) {
	out, err := run(t, "Hello World", "encode")
	require.NoError(t, err)
	require.Equal(t, "SGVsbG8gV29ybGQ=\n", out)
}

func TestEncodeEmptyStdin(t *testing.T) {
	out, err := run(t, "", "encode")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecodeStdin(t *testing.T) {
	out, err := run(t, "VGhlIGRvZyBsaWNrZWQgdGhlIG9pbCwgYW5kIGV2ZXJ5Ym9keSBsYXVnaGVkLg==\n", "decode")
	require.NoError(t, err)
	require.Equal(t, "The dog licked the oil, and everybody laughed.", out)
}

func TestDecodeStdinInvalid(t *testing.T) {
	_, err := run(t, "SGVsbG8gV29ybGQ~", "decode")
	require.ErrorIs(t, err, simdb64.ErrInvalidInput)
	require.ErrorContains(t, err, "<stdin>")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string][]byte{
		"a.txt": []byte("Hello World"),
		"b.bin": {0x00, 0xff, 0xfb, 0xef, 0xbe},
		"c.txt": bytes.Repeat([]byte("0123456789"), 1000),
	}
	var paths []string
	for name, data := range inputs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		paths = append(paths, path)
	}

	_, err := run(t, "", append([]string{"encode", "-j", "2"}, paths...)...)
	require.NoError(t, err)

	for name, data := range inputs {
		encoded, err := os.ReadFile(filepath.Join(dir, name+".b64"))
		require.NoError(t, err)
		want, err := simdb64.Encode(data)
		require.NoError(t, err)
		require.Equal(t, want, encoded)

		// the decoded copies land in outDir, not next to the input
		require.NoError(t, os.Remove(filepath.Join(dir, name)))
	}

	outDir := t.TempDir()
	var encodedPaths []string
	for _, p := range paths {
		encodedPaths = append(encodedPaths, p+".b64")
	}
	_, err = run(t, "", append([]string{"decode", "--outdir", outDir}, encodedPaths...)...)
	require.NoError(t, err)

	for name, data := range inputs {
		decoded, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func TestStdoutKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, content := range []string{"f", "fo", "foo", "foob", "fooba", "foobar"} {
		path := filepath.Join(dir, string(rune('a'+i)))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		paths = append(paths, path)
	}

	out, err := run(t, "", append([]string{"encode", "--stdout"}, paths...)...)
	require.NoError(t, err)
	require.Equal(t, "Zg==\nZm8=\nZm9v\nZm9vYg==\nZm9vYmE=\nZm9vYmFy\n", out)
}

func TestDecodeFileError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.b64")
	bad := filepath.Join(dir, "bad.b64")
	require.NoError(t, os.WriteFile(good, []byte("Zm9vYmFy"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("Zm9v*mFy"), 0o644))

	_, err := run(t, "", "decode", good, bad)
	require.ErrorIs(t, err, simdb64.ErrInvalidInput)
	require.ErrorContains(t, err, bad)
	require.ErrorContains(t, err, "offset 4")
}

func TestDecodeOutputName(t *testing.T) {
	require.Equal(t, "x/file", decoder.outPath("x/file.b64"))
	require.Equal(t, "x/file.txt.bin", decoder.outPath("x/file.txt"))
	require.Equal(t, "x/file.b64", encoder.outPath("x/file"))
}

func TestKernel(t *testing.T) {
	out, err := run(t, "", "kernel")
	require.NoError(t, err)
	require.Contains(t, out, "encode: "+simdb64.EncodeKernel())
	require.Contains(t, out, "decode: "+simdb64.DecodeKernel())
	require.Contains(t, out, "version: "+simdb64.Version())

	_, err = run(t, "", "kernel", "extra")
	require.Error(t, err)
}

func TestBufferPool(t *testing.T) {
	buf := getBuffer()
	require.Empty(t, buf)
	require.GreaterOrEqual(t, cap(buf), pooledBufferSize)
	putBuffer(append(buf, "data"...))

	putBuffer(make([]byte, 0, maxPooledBuffer+1))
	require.Empty(t, getBuffer())
}
