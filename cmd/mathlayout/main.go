// Package main provides the CLI entry point for mathlayout.
//
// Usage:
//
//	mathlayout layout input.mml --font font.ttf
//	mathlayout input.mml --font font.ttf -o boxes.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	gofont "github.com/go-text/typesetting/font"

	"github.com/typeset/mathlayout/mathml"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
	"github.com/typeset/mathlayout/mlayout"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "layout", "l":
		if err := runLayout(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		// Assume the bare argument list is an input file for "layout".
		if err := runLayout(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`mathlayout - MathML to positioned glyph boxes

Usage:
  mathlayout layout <input.mml> --font <font.ttf> [-o <output.txt>]
  mathlayout <input.mml> --font <font.ttf>
  mathlayout help
  mathlayout version

Commands:
  layout, l     Lay out a MathML document against a font's MATH table
  help          Show this help message
  version       Show version information

Options:
  -o, --output  Output file path (default: stdout)
  --font        Path to an OpenType font carrying a MATH table (required)`)
}

func printVersion() {
	fmt.Println("mathlayout version 0.1.0")
}

func runLayout(args []string) error {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	output := fs.String("o", "", "Output file path")
	outputLong := fs.String("output", "", "Output file path (long form)")
	fontPath := fs.String("font", "", "Path to an OpenType font carrying a MATH table")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	inputPath := fs.Arg(0)
	// Flags may also follow the input file name.
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return err
	}
	if *fontPath == "" {
		return fmt.Errorf("missing required --font")
	}

	outPath := *output
	if outPath == "" {
		outPath = *outputLong
	}

	return layoutFile(inputPath, *fontPath, outPath)
}

// layoutFile runs the full pipeline: read MathML -> parse -> load font ->
// lay out -> dump the resulting box tree.
func layoutFile(inputPath, fontPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input: %w", err)
	}
	defer in.Close()

	expr, err := mathml.Parse(in)
	if err != nil {
		return fmt.Errorf("cannot parse MathML: %w", err)
	}

	shaper, err := loadShaper(fontPath)
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}

	box := mlayout.Layout(expr, shaper)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	dumpBoxTree(out, box, 0)
	return nil
}

// loadShaper reads an OpenType font from disk and builds a shaper around
// its glyph metrics and MATH table. Fonts with no MATH table still shape
// (every MATH constant simply reads back as zero).
func loadShaper(path string) (*mathshape.OpenTypeShaper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}

	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	math, err := mathshape.ParseMathTable(data)
	if err != nil {
		// No MATH table at all is not fatal: layout proceeds with every
		// constant reading back as zero.
		math = nil
	}

	return mathshape.NewOpenTypeShaper(face, math), nil
}

// dumpBoxTree writes a box and its descendants as indented lines giving
// each box's SVG-ready geometry: origin, width, ascent/descent, and its
// content (a single glyph ID, a drawn rule, or a nested box list).
func dumpBoxTree(w io.Writer, box *mbox.MathBox, depth int) {
	indent := strings.Repeat("  ", depth)
	content := box.Content()

	switch content.Kind {
	case mbox.ContentEmpty:
		fmt.Fprintf(w, "%sbox x=%v y=%v w=%v ascent=%v descent=%v empty\n",
			indent, box.Origin.X, box.Origin.Y, box.Width(), box.Ascent(), box.Descent())
	case mbox.ContentGlyph:
		fmt.Fprintf(w, "%sbox x=%v y=%v w=%v ascent=%v descent=%v glyph=%d scale=%v%%\n",
			indent, box.Origin.X, box.Origin.Y, box.Width(), box.Ascent(), box.Descent(),
			content.GlyphID, content.GlyphScale)
	case mbox.ContentLine:
		fmt.Fprintf(w, "%sbox x=%v y=%v w=%v ascent=%v descent=%v rule dx=%v dy=%v thickness=%v\n",
			indent, box.Origin.X, box.Origin.Y, box.Width(), box.Ascent(), box.Descent(),
			content.LineVector.X, content.LineVector.Y, content.LineThickness)
	case mbox.ContentBoxes:
		fmt.Fprintf(w, "%sbox x=%v y=%v w=%v ascent=%v descent=%v children=%d\n",
			indent, box.Origin.X, box.Origin.Y, box.Width(), box.Ascent(), box.Descent(), len(content.Boxes))
		for _, child := range content.Boxes {
			dumpBoxTree(w, child, depth+1)
		}
	}
}
