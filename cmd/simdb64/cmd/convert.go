package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mnightingale/simdb64"
)

const encodedExt = ".b64"

// converter is one direction of the tool.
type converter struct {
	name    string
	convert func(dst, src []byte) ([]byte, error)
	outPath func(path string) string
	newline bool // terminate stdout output with a newline
}

var encoder = converter{
	name:    "encode",
	convert: encodeInput,
	outPath: func(path string) string { return path + encodedExt },
	newline: true,
}

var decoder = converter{
	name:    "decode",
	convert: decodeInput,
	outPath: func(path string) string {
		if strings.HasSuffix(path, encodedExt) {
			return strings.TrimSuffix(path, encodedExt)
		}
		return path + ".bin"
	},
}

// encodeInput treats an empty input as an empty encoding.
func encodeInput(dst, src []byte) ([]byte, error) {
	out, err := simdb64.AppendEncode(dst, src)
	if errors.Is(err, simdb64.ErrEmptyInput) {
		return dst, nil
	}
	return out, err
}

// decodeInput ignores trailing whitespace such as the newline written by
// encode or by most editors.
func decodeInput(dst, src []byte) ([]byte, error) {
	return simdb64.AppendDecode(dst, bytes.TrimRight(src, " \t\r\n"))
}

func newEncodeCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [files]",
		Short: "encode files or stdin to base64",
		Long: `Encode writes the padded base64 encoding of every file to file.b64,
or of stdin to stdout when no files are given.`,
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			return runConvert(cmd, encoder, args)
		}),
	}
}

func newDecodeCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [files]",
		Short: "decode base64 files or stdin",
		Long: `Decode writes the bytes represented by every base64 file. The output
name drops a .b64 extension, or adds .bin when there is none. With no
files stdin is decoded to stdout. Trailing whitespace is ignored.`,
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			return runConvert(cmd, decoder, args)
		}),
	}
}

func runConvert(cmd *Command, conv converter, args []string) error {
	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		out, err := conv.convert(nil, src)
		if err != nil {
			return fmt.Errorf("<stdin>: %w", err)
		}
		return writeStdout(cmd, conv, out)
	}

	var (
		jobs     = flagJobs.Int(cmd)
		toStdout = flagStdout.Bool(cmd)
		outDir   = flagOutDir.String(cmd)
		verbose  = flagVerbose.Bool(cmd)
	)

	// Results are only kept for --stdout, so they can be printed in
	// argument order once every file is done.
	results := make([][]byte, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if toStdout {
				out, err := conv.convert(nil, src)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = out
				return nil
			}

			buf := getBuffer()
			defer func() { putBuffer(buf) }()

			if buf, err = conv.convert(buf, src); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			dst := conv.outPath(path)
			if outDir != "" {
				dst = filepath.Join(outDir, filepath.Base(dst))
			}
			if err := os.WriteFile(dst, buf, 0o644); err != nil {
				return err
			}

			if verbose {
				log.Printf("%s %s -> %s (%d -> %d bytes)", conv.name, path, dst, len(src), len(buf))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if err := writeStdout(cmd, conv, out); err != nil {
			return err
		}
	}
	return nil
}

func writeStdout(cmd *Command, conv converter, out []byte) error {
	w := cmd.OutOrStdout()
	if _, err := w.Write(out); err != nil {
		return err
	}
	if conv.newline && len(out) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
