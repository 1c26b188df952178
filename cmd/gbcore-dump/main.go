package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"gonum.org/v1/plot/vg"

	"gbcore"
	"gbcore/internal/diagnostics"
	"gbcore/internal/joypad"
	"gbcore/internal/logging"
	"gbcore/internal/spectate"
)

// noInputs is the zero-valued input vector gbcore.System.Tick expects
// on every M-cycle with no new button edges.
func noInputs() joypad.Inputs { return joypad.Inputs{} }

func main() {
	romPath := flag.String("rom", "", "the rom file to load (a raw image or a .7z archive)")
	asModel := flag.String("model", "dmg", "the model to emulate: dmg or cgb")
	frames := flag.Int("frames", 60, "number of frames to advance before dumping")
	out := flag.String("out", "frame.png", "path to write the PNG snapshot to")
	scale := flag.Int("scale", 1, "integer upscale factor for the snapshot")
	verbose := flag.Bool("v", false, "log subsystem activity to stderr")
	tickBudget := flag.Int("tick-budget", 0, "kill the run after this many ticks (0 disables)")
	nopBudget := flag.Int("nop-budget", 0, "kill the run after this many executed NOPs (0 disables)")
	spectateAddr := flag.String("spectate", "", "if set, serve a live frame/serial feed over websocket at this address")
	timingOut := flag.String("timing", "", "if set, write a frame-cadence histogram PNG to this path")
	copySerial := flag.Bool("copy-serial", false, "copy the accumulated serial-output log to the clipboard on exit")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "gbcore-dump: -rom is required")
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("gbcore-dump: %v", err)
	}

	var opts []gbcore.Option
	switch *asModel {
	case "dmg":
		opts = append(opts, gbcore.WithModel(gbcore.ModelDMG))
	case "cgb":
		opts = append(opts, gbcore.WithModel(gbcore.ModelCGB))
	default:
		log.Fatalf("gbcore-dump: unknown -model %q, want dmg or cgb", *asModel)
	}
	if *verbose {
		opts = append(opts, gbcore.WithLogger(logging.NewStdLogger()))
	}
	if *tickBudget != 0 || *nopBudget != 0 {
		opts = append(opts, gbcore.WithDebugBudget(*tickBudget, *nopBudget))
	}
	if *spectateAddr != "" {
		opts = append(opts, gbcore.WithSpectator(*spectateAddr))
	}

	sys, err := gbcore.New(rom, opts...)
	if err != nil {
		log.Fatalf("gbcore-dump: %v", err)
	}

	var spec *spectate.Server
	if sys.Options.SpectateAddr != "" {
		spec = spectate.NewServer()
		stop := make(chan struct{})
		go spec.Run(stop)
		mux := http.NewServeMux()
		mux.HandleFunc("/", spec.Handler())
		go func() {
			if err := http.ListenAndServe(sys.Options.SpectateAddr, mux); err != nil {
				log.Printf("gbcore-dump: spectate server: %v", err)
			}
		}()
	}

	seen := 0
	ticks := 0
	lastFrameTick := 0
	var cadences []int
	serialSent := 0
	for seen < *frames {
		if err := sys.Tick(noInputs()); err != nil {
			log.Fatalf("gbcore-dump: %v", err)
		}
		ticks++
		if spec != nil {
			serial := sys.SerialLog()
			for _, b := range serial[serialSent:] {
				spec.BroadcastSerial(b)
			}
			serialSent = len(serial)
		}
		if sys.ConsumeRenderPending() {
			seen++
			cadences = append(cadences, ticks-lastFrameTick)
			lastFrameTick = ticks
			if spec != nil {
				var buf pngBuffer
				if err := diagnostics.SnapshotPNG(&buf, sys.Framebuffer(), 1); err == nil {
					spec.BroadcastFrame(buf.b)
				}
			}
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("gbcore-dump: %v", err)
	}
	defer f.Close()

	if err := diagnostics.SnapshotPNG(f, sys.Framebuffer(), *scale); err != nil {
		log.Fatalf("gbcore-dump: %v", err)
	}
	fmt.Printf("wrote %s after %d frames\n", *out, *frames)

	if *timingOut != "" {
		tf, err := os.Create(*timingOut)
		if err != nil {
			log.Fatalf("gbcore-dump: %v", err)
		}
		defer tf.Close()
		if err := diagnostics.TimingReport(tf, cadences, 6*vg.Inch, 4*vg.Inch); err != nil {
			log.Fatalf("gbcore-dump: %v", err)
		}
		fmt.Printf("wrote %s\n", *timingOut)
	}

	if *copySerial {
		if err := diagnostics.CopySerial(sys.SerialLog()); err != nil {
			log.Printf("gbcore-dump: copy serial log: %v", err)
		}
	}
}

// pngBuffer is a minimal io.Writer sink for the frames fed to the
// spectator server, which wants the whole encoded image in one slice.
type pngBuffer struct{ b []byte }

func (p *pngBuffer) Write(b []byte) (int, error) {
	p.b = append(p.b, b...)
	return len(b), nil
}
