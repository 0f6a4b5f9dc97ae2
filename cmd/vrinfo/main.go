// Command vrinfo sets up a VR session with the built-in modules, prints
// what was detected and bound, and optionally renders a few frames into a
// mirror image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vr"
	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/backend/anaglyph"
	"github.com/gogpu/vr/backend/quadbuffer"
	"github.com/gogpu/vr/backend/sbs"
	"github.com/gogpu/vr/backend/sim"
)

func main() {
	var (
		width   = flag.Int("width", 1280, "window width")
		height  = flag.Int("height", 720, "window height")
		frames  = flag.Int("frames", 3, "frames to render")
		output  = flag.String("mirror", "", "write the mirror image to this PNG file")
		stereo  = flag.Bool("stereo", false, "pretend the window surface is quad-buffered")
		noSim   = flag.Bool("nosim", false, "leave out the simulated HMD and controllers")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	vr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	factories := []backend.Factory{sbs.New, anaglyph.New, quadbuffer.New}
	if !*noSim {
		factories = append(factories, sim.NewHMD, sim.NewController)
	}

	mirror := image.NewRGBA(image.Rect(0, 0, *width, *height))
	s := vr.NewSession(
		vr.WithModules(factories...),
		vr.WithStereoSurface(*stereo),
		vr.WithMirror(mirror),
	)
	if err := s.Init(); err != nil {
		log.Fatalf("init: %v", err)
	}
	defer s.Shutdown()

	printModules(s)

	s.SetFBSize(*width, *height)
	if err := s.StartVR(); err != nil {
		log.Fatalf("start: %v", err)
	}

	printSources(s)
	printInputs(s)

	for i := 0; i < *frames; i++ {
		if err := drawFrame(s); err != nil {
			log.Fatalf("frame %d: %v", i, err)
		}
	}
	fmt.Printf("framebuffer: %dx%d (texture %dx%d, scale %.2f)\n",
		s.FBWidth(), s.FBHeight(), s.FBTexWidth(), s.FBTexHeight(), s.FBScale())

	if *output != "" {
		if err := savePNG(*output, mirror); err != nil {
			log.Fatalf("mirror: %v", err)
		}
		log.Printf("mirror saved to %s", *output)
	}
}

func printModules(s *vr.Session) {
	fmt.Printf("modules (%d):\n", s.NumModules())
	for i := 0; i < s.NumModules(); i++ {
		m := s.Module(i)
		mark := " "
		if m.Active() {
			mark = "*"
		}
		fmt.Printf(" %s %-10s %-7s priority %3d usable %v\n", mark, m.Name(), m.Kind(), m.Priority(), m.Usable())
	}
	fmt.Printf("display: %s\n", s.DisplayModule().Name())
}

func printSources(s *vr.Session) {
	fmt.Printf("sources (%d):\n", s.NumSources())
	for i := 0; i < s.NumSources(); i++ {
		src := s.Source(i)
		fmt.Printf("   %-14s spatial %v (%s)\n", src.Name(), src.Spatial(), src.Module().Name())
	}
	fmt.Printf("head: %s, left hand: %s, right hand: %s\n",
		orNone(s.HeadSource()), orNone(s.HandSource(backend.LeftHand)), orNone(s.HandSource(backend.RightHand)))
}

func printInputs(s *vr.Session) {
	fmt.Printf("buttons: %d, axes: %d, sticks: %d\n", s.NumButtons(), s.NumAxes(), s.NumSticks())
	for i := 0; i < s.NumButtons(); i++ {
		fmt.Printf("   button %d: %s\n", i, s.ButtonName(i))
	}
}

func drawFrame(s *vr.Session) error {
	if err := s.DrawStart(); err != nil {
		return err
	}
	for _, eye := range []backend.Eye{backend.LeftEye, backend.RightEye} {
		if err := s.DrawEye(eye); err != nil {
			return err
		}
	}
	if err := s.DrawDone(); err != nil {
		return err
	}
	s.DrawMirror()
	return nil
}

func orNone(name string) string {
	if name == "" {
		return "none"
	}
	return name
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
