// Command vdu emulates a small microcomputer's text-mode display: a 40- or
// 80-column, 30-row character grid rendered through an 8x16 font to a
// 640x480 raster. Bytes from a file argument and from the keyboard are fed
// to the display through a terminal adapter.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nbarth/vdu/gpu"
	"github.com/nbarth/vdu/term"
)

func main() {
	log.SetPrefix("vdu: ")
	log.SetFlags(0)

	var (
		cliFlag  = flag.Bool("cli", false, "render to the terminal instead of a window")
		devFlag  = flag.Bool("dev", false, "watch the file and replay it on change, with a debug console")
		wideFlag = flag.Bool("80", false, "start in 80-column mode")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-cli] [-80] [file]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [-80] -dev <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() > 1 || (*devFlag && flag.NArg() != 1) {
		flag.Usage()
	}

	g := gpu.New()
	if *wideFlag {
		g.SetMode(gpu.Mode80)
	}

	if *devFlag {
		if err := devMode(!*cliFlag, g, flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(g, flag.Arg(0), *cliFlag); err != nil {
		log.Fatal(err)
	}
}

func run(g *gpu.GPU, file string, cli bool) error {
	w := term.NewWriter(g)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		w.Write(data)
	}
	if cli {
		return runCLI(g, w)
	}
	ui := gpu.NewGUI(g, func(b byte) { w.WriteByte(b) })
	return ui.Run(make(chan bool))
}
