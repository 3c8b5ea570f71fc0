// Command pfinfo prints pixel format properties and storage
// requirements from the pixelfmt registry.
//
// List every format:
//
//	pfinfo -list
//
// Show one format, with sizes for a given extent:
//
//	pfinfo -format BC1_UNORM -width 1024 -height 1024 -mips 0
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/pixelfmt"
)

func main() {
	var (
		list   = flag.Bool("list", false, "list all known formats")
		name   = flag.String("format", "", "format name to describe")
		width  = flag.Uint("width", 256, "texture width in pixels")
		height = flag.Uint("height", 256, "texture height in pixels")
		depth  = flag.Uint("depth", 1, "texture depth")
		slices = flag.Uint("slices", 1, "array slice count")
		mips   = flag.Uint("mips", 1, "mipmap count (0 = full chain)")
		align  = flag.Uint("align", 4, "row alignment in bytes")
	)
	flag.Parse()

	switch {
	case *list:
		listFormats()
	case *name != "":
		describe(*name, uint32(*width), uint32(*height), uint32(*depth),
			uint32(*slices), uint8(*mips), uint32(*align))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func listFormats() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBYTES/PIXEL\tCOMPONENTS\tFLAGS")
	for f := pixelfmt.FormatUnknown; f < pixelfmt.FormatCount; f++ {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			f, pixelfmt.BytesPerPixel(f), pixelfmt.ComponentCount(f), flagNames(f))
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write format list: %v", err)
	}
}

func describe(name string, width, height, depth, slices uint32, mips uint8, align uint32) {
	f := pixelfmt.FormatFromName(name, 0)
	if f == pixelfmt.FormatUnknown && name != pixelfmt.FormatUnknown.String() {
		log.Fatalf("Unknown format %q (use -list to see all names)", name)
	}

	fmt.Printf("Format:        %s\n", f)
	fmt.Printf("Family:        %s\n", pixelfmt.Family(f))
	fmt.Printf("Components:    %d\n", pixelfmt.ComponentCount(f))
	fmt.Printf("Bytes/pixel:   %d\n", pixelfmt.BytesPerPixel(f))
	fmt.Printf("Flags:         %s\n", flagNames(f))

	if mips == 0 {
		mips = pixelfmt.MaxMipmapCount3D(width, height, depth)
	}

	levelSize, err := pixelfmt.SizeBytes(width, height, depth, slices, f, align)
	if err != nil {
		log.Fatalf("Failed to compute size: %v", err)
	}
	fmt.Printf("Level 0 size:  %d bytes (%dx%dx%d, %d slice(s), align %d)\n",
		levelSize, width, height, depth, slices, align)

	chainSize, err := pixelfmt.MipChainSizeBytes(width, height, depth, slices, f, mips, align)
	if err != nil {
		log.Fatalf("Failed to compute mip chain size: %v", err)
	}
	fmt.Printf("Chain size:    %d bytes (%d mip level(s))\n", chainSize, mips)
}

func flagNames(f pixelfmt.PixelFormat) string {
	var names []string
	for _, fl := range []struct {
		bit  pixelfmt.FormatFlags
		name string
	}{
		{pixelfmt.FlagFloat, "float"},
		{pixelfmt.FlagHalf, "half"},
		{pixelfmt.FlagFloatRare, "float-rare"},
		{pixelfmt.FlagInteger, "integer"},
		{pixelfmt.FlagSigned, "signed"},
		{pixelfmt.FlagNormalized, "normalized"},
		{pixelfmt.FlagDepth, "depth"},
		{pixelfmt.FlagStencil, "stencil"},
		{pixelfmt.FlagSRGB, "srgb"},
		{pixelfmt.FlagCompressed, "compressed"},
		{pixelfmt.FlagPalette, "palette"},
	} {
		if pixelfmt.Flags(f)&fl.bit != 0 {
			names = append(names, fl.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
