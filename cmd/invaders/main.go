// Command invaders is a standalone ebiten frontend for the 8080-based
// Space Invaders cabinet emulator.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/invaders8080/invaders"
	"github.com/user-none/invaders8080/romloader"
)

func main() {
	romDir := flag.String("rom-dir", "", "directory containing invaders.h, invaders.g, invaders.f, invaders.e")
	trace := flag.Bool("trace", false, "enable CPU disassembly trace logging")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	dir := *romDir
	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if dir == "" {
		log.Fatal("usage: invaders -rom-dir <directory> (or pass the directory as a positional argument)")
	}

	banks, err := romloader.LoadROMSet(dir)
	if err != nil {
		log.Fatalf("failed to load ROM set: %v", err)
	}
	for i, sum := range romloader.Checksums(banks) {
		log.Printf("%s: crc32 %08x", romloader.BankNames[i], sum)
	}

	sys := invaders.NewSystem()
	sys.SetLogger(log.New(os.Stderr, "", log.LstdFlags))

	readers := [4]func() ([]byte, error){}
	for i, bank := range banks {
		data := bank
		readers[i] = func() ([]byte, error) { return data, nil }
	}
	if err := sys.LoadROMs(readers); err != nil {
		log.Fatalf("failed to load ROMs into system: %v", err)
	}
	sys.CPU.Trace = *trace

	runner := NewRunner(sys)

	ebiten.SetWindowSize(invaders.DisplayWidth*3, invaders.DisplayHeight*3)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
