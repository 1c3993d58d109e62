// Command asciiplay plays a video in the terminal as monochrome text.
//
// Every frame is stretched to a fixed grid of character cells and each cell
// is drawn with the glyph whose reference color is nearest to the pixel.
// Frames are decoded and converted up front, then shown at a fixed rate.
//
// The input is either a video file (decoded via ffmpeg, which must be on
// PATH) or a directory of PNG, JPEG, BMP or WebP frames.
//
// # Usage
//
//	asciiplay [flags] <video_file|frame_directory>
//	asciiplay palette schema
//	asciiplay palette show [palette.yaml]
//
// # Flags
//
//	-f, --fps float        playback frames per second (default 30)
//	-a, --autosize         size the grid from the terminal
//	    --size-x int       grid width in characters (default 120)
//	    --size-y int       grid height in characters (default 40)
//	    --skip int         drop every Nth decoded frame (default 0)
//	    --palette string   YAML palette file
//	    --wait             wait for enter before playback (default true)
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"go.jacobcolvin.com/asciiplay/autosize"
)

func main() {
	os.Exit(run())
}

func run() int {
	a := &app{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		detect:      autosize.Terminal(int(os.Stdout.Fd())),
		interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	}

	err := a.newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
