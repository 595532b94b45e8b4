package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tinte"
	"github.com/npillmayer/tinte/backend/gfx/bmpadapter"
	"github.com/npillmayer/tinte/core"
	"github.com/npillmayer/tinte/engine/frame"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tinte.engine'
func tracer() tracing.Trace {
	return tracing.Select("tinte.engine")
}

func main() {
	// command line flags
	htmlFile := flag.String("html", "", "HTML input file")
	cssFile := flag.String("css", "", "CSS input file (optional)")
	outFile := flag.String("out", "out.png", "Output image file (.png or .bmp)")
	width := flag.Int("width", 800, "Viewport width in pixels")
	height := flag.Int("height", 600, "Viewport height in pixels")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.tinte.engine": *tlevel,
		"trace.tinte.dom":    *tlevel,
		"trace.tinte.frame":  *tlevel,
		"trace.tinte.gfx":    *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if *htmlFile == "" {
		pterm.Error.Println("no HTML input given (use -html)")
		flag.Usage()
		os.Exit(2)
	}
	htmlSrc, err := os.ReadFile(*htmlFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	var cssSrc []byte
	if *cssFile != "" {
		if cssSrc, err = os.ReadFile(*cssFile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
	}

	viewport := frame.Rect{W: float64(*width), H: float64(*height)}
	tracer().Infof("rendering %s at %v", *htmlFile, viewport)
	canvas, err := tinte.Render(string(htmlSrc), string(cssSrc), viewport)
	if err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	if err := bmpadapter.Save(*outFile, canvas); err != nil {
		core.UserError(err)
		os.Exit(5)
	}
	pterm.Info.Printfln("wrote %s (%d×%d)", *outFile, canvas.Width(), canvas.Height())
}
