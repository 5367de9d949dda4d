// Command dmtx encodes data as a Data Matrix ECC 200 symbol and writes it
// as PNG, PBM or ASCII art.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	datamatrix "github.com/woo-j/OkapiBarcode-sub001"
)

var (
	output  = getopt.StringLong("output", 'o', "", "write to `file` instead of standard output")
	format  = getopt.StringLong("type", 't', "", "output `format`: png, pbm or txt")
	scale   = getopt.IntLong("scale", 's', 4, "module size in `pixels`")
	margin  = getopt.IntLong("margin", 'm', 1, "quiet zone in `modules`")
	gs1     = getopt.BoolLong("gs1", 'g', "treat input as GS1 data, with [ as FNC1")
	rdrInit = getopt.BoolLong("reader-init", 'p', "encode a reader programming symbol")
	eci     = getopt.IntLong("eci", 'E', 0, "emit ECI `value` and transcode input to it")
	size    = getopt.IntLong("size", 'z', 0, "symbol size `1-30` (0 = automatic)")
	square  = getopt.BoolLong("square", 'q', "restrict automatic selection to square symbols")
	rect    = getopt.BoolLong("rect", 'r', "restrict automatic selection to rectangular symbols")
	saPos   = getopt.StringLong("append", 'S', "", "structured append position `m/n`")
	fileID  = getopt.IntLong("file-id", 'F', 1, "structured append file `id`")
	help    = getopt.BoolLong("help", 'h', "print this help")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dmtx: ")
	getopt.SetParameters("[data]")
	getopt.Parse()
	if *help {
		getopt.PrintUsage(os.Stdout)
		return
	}

	opts := &datamatrix.Options{
		GS1:        *gs1,
		ReaderInit: *rdrInit,
		ECI:        *eci,
		Size:       *size,
	}
	switch {
	case *square && *rect:
		log.Fatalln("-q and -r are mutually exclusive")
	case *square:
		opts.Shape = datamatrix.ShapeSquare
	case *rect:
		opts.Shape = datamatrix.ShapeRectangle
	}
	if *saPos != "" {
		var pos, total int
		if n, err := fmt.Sscanf(*saPos, "%d/%d", &pos, &total); n != 2 || err != nil {
			log.Fatalln("-S wants the form m/n, e.g. 2/5")
		}
		opts.StructuredAppend = &datamatrix.StructuredAppend{
			Position: pos,
			Total:    total,
			FileID:   *fileID,
		}
	}

	sym, err := encodeInput(getopt.Args(), opts)
	if err != nil {
		log.Fatalln(err)
	}

	w, name := openOutput(*output)
	switch pickFormat(*format, name, w) {
	case "png":
		err = writePNG(w, sym, *scale, *margin)
	case "pbm":
		err = writePBM(w, sym, *scale, *margin)
	case "txt":
		err = writeText(w, sym, *margin)
	default:
		log.Fatalln("unknown output type; want png, pbm or txt")
	}
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// encodeInput encodes the joined arguments, or standard input when no
// arguments are given.
func encodeInput(args []string, opts *datamatrix.Options) (*datamatrix.Symbol, error) {
	if len(args) > 0 {
		return datamatrix.EncodeString(strings.Join(args, " "), opts)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	data = trimNewline(data)
	if opts.ECI != 0 {
		return datamatrix.EncodeString(string(data), opts)
	}
	return datamatrix.Encode(data, opts)
}

func trimNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}

func openOutput(path string) (io.WriteCloser, string) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, ""
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalln(err)
	}
	return f, path
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// pickFormat resolves the output format from the flag, the output file
// extension, or whether standard output is a terminal.
func pickFormat(flag, name string, w io.Writer) string {
	if flag != "" {
		return flag
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		switch ext := name[i+1:]; ext {
		case "png", "pbm", "txt":
			return ext
		}
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		return "txt"
	}
	if name == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			return "txt"
		}
	}
	return "png"
}

func writePNG(w io.Writer, sym *datamatrix.Symbol, scale, margin int) error {
	width := (sym.Width + 2*margin) * scale
	height := (sym.Height + 2*margin) * scale
	img := image.NewPaletted(image.Rect(0, 0, width, height),
		color.Palette{color.White, color.Black})
	for y := 0; y < sym.Height; y++ {
		for x := 0; x < sym.Width; x++ {
			if !sym.Matrix.Get(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex((x+margin)*scale+dx, (y+margin)*scale+dy, 1)
				}
			}
		}
	}
	return png.Encode(w, img)
}

func writePBM(w io.Writer, sym *datamatrix.Symbol, scale, margin int) error {
	width := (sym.Width + 2*margin) * scale
	height := (sym.Height + 2*margin) * scale
	if _, err := fmt.Fprintf(w, "P4\n%d %d\n", width, height); err != nil {
		return err
	}
	row := make([]byte, (width+7)/8)
	for y := 0; y < height; y++ {
		for i := range row {
			row[i] = 0
		}
		my := y/scale - margin
		if my >= 0 && my < sym.Height {
			for x := 0; x < width; x++ {
				mx := x/scale - margin
				if mx >= 0 && mx < sym.Width && sym.Matrix.Get(mx, my) {
					row[x/8] |= 0x80 >> (x % 8)
				}
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, sym *datamatrix.Symbol, margin int) error {
	var sb strings.Builder
	blank := strings.Repeat("  ", sym.Width+2*margin) + "\n"
	for i := 0; i < margin; i++ {
		sb.WriteString(blank)
	}
	for _, row := range sym.Rows() {
		sb.WriteString(strings.Repeat("  ", margin))
		for _, dark := range row {
			if dark {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(strings.Repeat("  ", margin))
		sb.WriteByte('\n')
	}
	for i := 0; i < margin; i++ {
		sb.WriteString(blank)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
