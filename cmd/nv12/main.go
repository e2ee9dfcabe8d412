// Command nv12 converts images to raw YUV420 NV12 frame files and back.
//
//	nv12 convert input.jpg output.yuv [-fit-even] [-show-info]
//	nv12 read input.yuv 1920 1080 -o restored.png
//	nv12 info frame.yuv
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mediakit/nv12"
	"github.com/mediakit/nv12/internal/logging"
	"github.com/mediakit/nv12/pkg/frame"
	"github.com/mediakit/nv12/pkg/imageio"
	"github.com/mediakit/nv12/pkg/nv12info"
)

var log = logging.NewLogger("nv12")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "convert":
		err = runConvert(os.Args[2:])
	case "read":
		err = runRead(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, frame.ErrOddDimensions) {
			fmt.Fprintln(os.Stderr, "Suggestion: resize the image to even dimensions, or pass -fit-even to convert.")
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: nv12 <command> [arguments]

Commands:
  convert <input> <output>          convert an image file to an NV12 frame file
  read <input> <width> <height>     decode an NV12 frame file back to an image
  info <file>                       inspect a file and suggest frame dimensions

Run "nv12 <command> -h" for command flags.
`)
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fitEven := fs.Bool("fit-even", false, "scale odd dimensions down to even before converting")
	showInfo := fs.Bool("show-info", false, "print output file information after converting")
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("convert needs an input image and an output path, got %d arguments", fs.NArg())
	}
	input, output := fs.Arg(0), fs.Arg(1)

	if !nv12info.IsImageExt(input) {
		log.Warnf("input extension %q is not a common image format; supported inputs are JPEG, PNG, GIF, BMP, TIFF and WebP", filepath.Ext(input))
	}

	var img image.Image
	img, err := imageio.Load(input)
	if err != nil {
		return err
	}
	if *fitEven {
		fitted := imageio.FitEven(img, nil)
		if fb, ib := fitted.Bounds(), img.Bounds(); fb != ib {
			log.Infof("scaled %dx%d input down to %dx%d", ib.Dx(), ib.Dy(), fb.Dx(), fb.Dy())
		}
		img = fitted
	}

	enc, err := frame.NewEncoder(frame.FormatNV12)
	if err != nil {
		return err
	}
	log.Debugf("encoding %s", input)
	buf, err := enc.Encode(img)
	if err != nil {
		return err
	}
	if err := imageio.WriteFileAtomic(output, buf); err != nil {
		return err
	}

	bounds := img.Bounds()
	fmt.Println("Converted to YUV420 NV12 format")
	fmt.Printf("  Dimensions: %dx%d\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("  Output: %s\n", output)

	if *showInfo {
		return printInfo(output)
	}
	return nil
}

func runRead(args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	output := fs.String("o", "", "save the decoded image to this path (.png, .jpg, .bmp, .tif)")
	fs.Parse(args)
	if fs.NArg() != 3 {
		return fmt.Errorf("read needs an input file, width and height, got %d arguments", fs.NArg())
	}
	input := fs.Arg(0)

	width, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid width %q", fs.Arg(1))
	}
	height, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid height %q", fs.Arg(2))
	}

	// Extension check only; the layout itself has no magic to look for.
	if nv12info.IsImageExt(input) {
		return fmt.Errorf("%w: %s looks like an image file, not a raw NV12 frame; use \"nv12 convert\" on it instead",
			frame.ErrFormat, input)
	}

	img, err := nv12.ReadFile(input, width, height)
	if err != nil {
		return err
	}
	fmt.Printf("Decoded %s as %dx%d\n", input, width, height)

	if *output != "" {
		if err := imageio.Save(img, *output); err != nil {
			return err
		}
		fmt.Printf("  Saved: %s\n", *output)
	}
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("info needs exactly one file, got %d arguments", fs.NArg())
	}
	return printInfo(fs.Arg(0))
}

func printInfo(path string) error {
	info, err := nv12info.Inspect(path)
	if err != nil {
		return err
	}

	fmt.Println("File Information:")
	fmt.Printf("  File: %s\n", info.Path)
	fmt.Printf("  Size: %d bytes\n", info.Size)
	fmt.Printf("  Format: %s\n", info.Format)
	if info.IsImage {
		if info.Width > 0 {
			fmt.Printf("  Dimensions: %dx%d\n", info.Width, info.Height)
		}
		fmt.Println("  Note: this is an image file; use \"nv12 convert\" to produce an NV12 frame file.")
		return nil
	}

	fmt.Printf("  Total pixels: %d\n", info.TotalPixels)
	if len(info.Suggested) > 0 {
		var dims []string
		for _, d := range info.Suggested {
			dims = append(dims, d.String())
		}
		fmt.Printf("  Suggested dimensions: %s\n", strings.Join(dims, ", "))
	}
	return nil
}
