// Command vibrant parses CSS color strings from its arguments and
// prints the resolved sRGB channels, one line per color.
//
//	vibrant 'hsl(180, 50%, 50%)' rebeccapurple '#2ae'
//	vibrant -format hex 'oklch(0.628 0.258 29.23)'
//	vibrant -palette 'tokens/**/*.json'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AppsByDan/vibrant"
	"github.com/AppsByDan/vibrant/internal/log"
	"github.com/AppsByDan/vibrant/internal/palette"
	"github.com/AppsByDan/vibrant/internal/version"
)

func main() {
	format := flag.String("format", "u8", "output format: u8, f32, f64, hex or css")
	paletteMode := flag.Bool("palette", false, "treat arguments as palette file globs")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersion())
		return
	}
	if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vibrant [-format u8|f32|f64|hex|css] <color>...")
		fmt.Fprintln(os.Stderr, "       vibrant -palette <glob>...")
		os.Exit(2)
	}

	var err error
	if *paletteMode {
		err = runPalette(flag.Args())
	} else {
		err = runColors(flag.Args(), *format)
	}
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func runColors(args []string, format string) error {
	for _, arg := range args {
		line, err := formatColor(arg, format)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}

func formatColor(input, format string) (string, error) {
	switch format {
	case "u8":
		var c vibrant.ValU8
		if err := vibrant.ParseString(input, &c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.A), nil
	case "f32":
		var c vibrant.ValF32
		if err := vibrant.ParseString(input, &c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%g %g %g %g", c.R, c.G, c.B, c.A), nil
	case "f64":
		var c vibrant.ValF64
		if err := vibrant.ParseString(input, &c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%g %g %g %g", c.R, c.G, c.B, c.A), nil
	case "hex":
		var c vibrant.ValU8
		if err := vibrant.ParseString(input, &c); err != nil {
			return "", err
		}
		return palette.Color{R: c.R, G: c.G, B: c.B, A: c.A}.Hex(), nil
	case "css":
		var c vibrant.ValU8
		if err := vibrant.ParseString(input, &c); err != nil {
			return "", err
		}
		if c.A == 255 {
			return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B), nil
		}
		return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, float64(c.A)/255), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func runPalette(patterns []string) error {
	files, err := palette.Discover(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no palette files match %v", patterns)
	}
	for _, file := range files {
		pal, err := palette.Load(file)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", file)
		for _, name := range pal.Names() {
			fmt.Printf("  %s: %s\n", name, pal[name].Hex())
		}
	}
	return nil
}
