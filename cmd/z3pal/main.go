package main

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/ironsheep/z3pal/internal/colorspace"
	"github.com/ironsheep/z3pal/internal/offsets"
	"github.com/ironsheep/z3pal/internal/palette"
	"github.com/ironsheep/z3pal/internal/patch"
	"github.com/ironsheep/z3pal/internal/preview"
	"github.com/ironsheep/z3pal/internal/rom"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// outputSuffix is appended to the input file name when no -o is given.
const outputSuffix = "-rand-pal"

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("z3pal %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// All diagnostics go to stderr; stdout stays clean.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := run(os.Args[1:]); err != nil {
		log.Printf("z3pal: %v", err)
		if errors.Is(err, patch.ErrPatch) || errors.Is(err, colorspace.ErrDecode) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("z3pal - palette randomizer for game binary images")
	fmt.Println()
	fmt.Println("Usage: z3pal [options] <image-file>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -mode <name>     generation mode: none, maseya (default), grayscale,")
	fmt.Println("                   negative, blackout, classic, dizzy, sick, puke, acid")
	fmt.Println("  -seed <n>        random seed; omitted, one is drawn from system")
	fmt.Println("                   entropy and logged so the run can be replayed")
	fmt.Println("  -offsets <path>  offset spec file or directory (required)")
	fmt.Println("  -o <path>        output file; default appends " + outputSuffix)
	fmt.Println("  -fill <hex>      blackout fill color, e.g. #202040 (default #000000)")
	fmt.Println("  -preview <path>  write a before/after swatch sheet PNG")
	fmt.Println("  --version, -v    print version information")
	fmt.Println("  --help, -h       print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  Z3PAL_LOG_LEVEL=debug    enable debug logging")
}

func run(args []string) error {
	fs := flag.NewFlagSet("z3pal", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	modeName := fs.String("mode", "maseya", "generation mode")
	seedFlag := fs.Int64("seed", 0, "random seed")
	offsetsPath := fs.String("offsets", "", "offset spec file or directory")
	outPath := fs.String("o", "", "output file path")
	fillHex := fs.String("fill", "#000000", "blackout fill color")
	previewPath := fs.String("preview", "", "preview sheet PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	debug := os.Getenv("Z3PAL_LOG_LEVEL") == "debug"

	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one image file argument, got %d", fs.NArg())
	}
	if *offsetsPath == "" {
		return fmt.Errorf("-offsets is required")
	}

	mode, err := palette.ParseMode(*modeName)
	if err != nil {
		return err
	}
	fill, err := colorspace.ParseHex(*fillHex)
	if err != nil {
		return err
	}

	// An explicit seed makes the run reproducible directly; otherwise one
	// is drawn from system entropy and logged so it can be replayed.
	seed, seeded := *seedFlag, false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})
	if !seeded {
		seed, err = entropySeed()
		if err != nil {
			return err
		}
		log.Printf("no seed given; using seed %d", seed)
	} else if debug {
		log.Printf("using seed %d", seed)
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	img, err := rom.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	table, err := offsets.Load(*offsetsPath)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("loaded %d bytes, %d offset groups, mode %s", img.Len(), table.Len(), mode)
	}

	var sheets []preview.GroupSwatches
	if *previewPath != "" {
		sheets, err = decodeAll(img.Bytes(), table)
		if err != nil {
			return err
		}
	}

	gen := palette.Generator{Mode: mode, Fill: fill}
	if err := patch.Apply(img.Bytes(), table, gen, rng); err != nil {
		return err
	}

	if *previewPath != "" {
		for i := range sheets {
			g, _ := table.Group(sheets[i].Name)
			after, err := patch.DecodeGroup(img.Bytes(), g)
			if err != nil {
				return err
			}
			sheets[i].After = after
		}
		sheet, err := preview.Render(sheets)
		if err != nil {
			return err
		}
		if err := preview.Save(sheet, *previewPath); err != nil {
			return err
		}
		if debug {
			log.Printf("wrote preview sheet to %s", *previewPath)
		}
	}

	out := *outPath
	if out == "" {
		out = rom.OutputPath(fs.Arg(0), outputSuffix)
	}
	if err := img.Save(out); err != nil {
		return err
	}
	log.Printf("wrote %s (mode %s, seed %d)", out, mode, seed)
	return nil
}

// decodeAll snapshots every group's palette, sorted the same way the patch
// pipeline iterates, for the before half of the preview sheet.
func decodeAll(image []byte, table *offsets.Table) ([]preview.GroupSwatches, error) {
	groups := table.Sorted()
	sheets := make([]preview.GroupSwatches, 0, len(groups))
	for _, g := range groups {
		if g.End() > len(image) {
			return nil, fmt.Errorf("group %q: extent [%#x,%#x) exceeds image size %#x: %w",
				g.Name, g.BaseAddress, g.End(), len(image), patch.ErrPatch)
		}
		pal, err := patch.DecodeGroup(image, g)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, preview.GroupSwatches{Name: g.Name, Before: pal})
	}
	return sheets, nil
}

// entropySeed draws a one-off seed from the system entropy source.
func entropySeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to draw entropy seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
