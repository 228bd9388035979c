// wirectl checks, inspects and renders wire programs from the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/wirebender/internal/config"
	"github.com/Faultbox/wirebender/internal/engine/debug"
	"github.com/Faultbox/wirebender/internal/logger"
	"github.com/Faultbox/wirebender/internal/raster"
	"github.com/Faultbox/wirebender/internal/scene"
	"github.com/Faultbox/wirebender/pkg/batch"
	"github.com/Faultbox/wirebender/pkg/wire"
	"github.com/Faultbox/wirebender/pkg/wire/collide"
)

// Exit codes.
const (
	exitOK        = 0
	exitInvalid   = 1  // the program intersects itself
	exitUsage     = 2  // bad arguments
	exitFailure   = 3  // I/O or configuration error
	exitMalformed = 42 // the program contains a symbol other than R, U or D
)

func main() {
	if lvl := os.Getenv("WIRECTL_LOG"); lvl != "" {
		if err := logger.Init(lvl, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		}
		defer logger.Sync()
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	c := &cli{stdout: stdout, stderr: stderr, log: logger.Named("wirectl")}
	command, args := args[0], args[1:]

	switch command {
	case "check":
		return c.check(args)
	case "curves":
		return c.curves(args)
	case "bounds":
		return c.bounds(args)
	case "enumerate", "enum":
		return c.enumerate(args)
	case "render":
		return c.render(args)
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `wirectl - wire bending program utility

Usage:
  wirectl <command> [options]

Programs are strings of R (roll), U (bend up) and D (bend down). The last
symbol is the op at the hubs.

Commands:
  check [-sm M] <program>            Exit 0 if valid, 1 if it intersects itself
  curves [-sm M] <program>           Print the collision curves
  bounds <program>                   Print the bounding rectangle
  enumerate [-sm M] [-valid] <L>     Count symmetry classes of length L
  render [-o file] [-w W] [-h H] [-config file] <program>
                                     Save a PNG or BMP snapshot

Examples:
  wirectl check UUUR
  wirectl enumerate -valid 4
  wirectl render -o uru.png URU`)
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// newFlags returns a flag set that reports errors to stderr.
func (c *cli) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// parse parses flags placed before or after a single positional argument.
func parse(fs *flag.FlagSet, args []string) (string, bool) {
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() < 1 {
		return "", false
	}
	arg := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil || fs.NArg() > 0 {
		return "", false
	}
	return arg, true
}

// program parses s, reporting malformed input on stderr.
func (c *cli) program(s string) (wire.Program, int) {
	p, err := wire.Parse(s)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return nil, exitMalformed
	}
	return p, exitOK
}

// checker builds a collision checker, reporting a bad multiplier on stderr.
func (c *cli) checker(sm float64) (*collide.Checker, int) {
	checker, err := collide.NewChecker(sm)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return nil, exitUsage
	}
	return checker, exitOK
}

func (c *cli) check(args []string) int {
	fs := c.newFlags("check")
	sm := fs.Float64("sm", collide.DefaultSizeMultiplier, "size multiplier in (0, 1)")
	arg, ok := parse(fs, args)
	if !ok {
		fmt.Fprintln(c.stderr, "Usage: wirectl check [-sm M] <program>")
		return exitUsage
	}

	checker, code := c.checker(*sm)
	if code != exitOK {
		return code
	}
	p, code := c.program(arg)
	if code != exitOK {
		return code
	}

	hit, collides := checker.Detect(p)
	if !collides {
		fmt.Fprintln(c.stdout, "valid")
		return exitOK
	}

	where := "itself"
	if hit.Boundary {
		where = "the machine"
	}
	fmt.Fprintf(c.stdout, "invalid: curve %d hits curve %d (%s)\n", hit.A, hit.B, where)
	c.log.Debug("collision",
		zap.Stringer("program", p),
		zap.Int("curve_a", hit.A),
		zap.Int("curve_b", hit.B),
		zap.Bool("boundary", hit.Boundary),
	)
	return exitInvalid
}

func (c *cli) curves(args []string) int {
	fs := c.newFlags("curves")
	sm := fs.Float64("sm", collide.DefaultSizeMultiplier, "size multiplier in (0, 1)")
	arg, ok := parse(fs, args)
	if !ok {
		fmt.Fprintln(c.stderr, "Usage: wirectl curves [-sm M] <program>")
		return exitUsage
	}

	checker, code := c.checker(*sm)
	if code != exitOK {
		return code
	}
	p, code := c.program(arg)
	if code != exitOK {
		return code
	}

	curves := checker.Curves(p)
	wireEnd := len(p) * collide.CurvesPerOp
	for i, cv := range curves {
		owner := "boundary"
		if i < wireEnd {
			// Curves are laid out from the op at the hubs outwards.
			owner = fmt.Sprintf("op %d %s", len(p)-1-i/collide.CurvesPerOp, p[len(p)-1-i/collide.CurvesPerOp])
		}
		fmt.Fprintf(c.stdout, "%3d  %-12s %s\n", i, owner, cv)
	}
	return exitOK
}

func (c *cli) bounds(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Usage: wirectl bounds <program>")
		return exitUsage
	}
	p, code := c.program(args[0])
	if code != exitOK {
		return code
	}

	r := wire.Bounds(p)
	fmt.Fprintf(c.stdout, "x=%.4f y=%.4f w=%.4f h=%.4f\n", r.X, r.Y, r.W, r.H)
	return exitOK
}

func (c *cli) enumerate(args []string) int {
	fs := c.newFlags("enumerate")
	sm := fs.Float64("sm", collide.DefaultSizeMultiplier, "size multiplier in (0, 1)")
	valid := fs.Bool("valid", false, "list the valid class representatives")
	arg, ok := parse(fs, args)
	if !ok {
		fmt.Fprintln(c.stderr, "Usage: wirectl enumerate [-sm M] [-valid] <L>")
		return exitUsage
	}

	l, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: length %q is not a number\n", arg)
		return exitUsage
	}

	if !*valid {
		n, err := wire.CountClasses(l)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintf(c.stdout, "classes: %d\n", n)
		return exitOK
	}

	checker, code := c.checker(*sm)
	if code != exitOK {
		return code
	}
	reps, err := wire.Classes(l)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return exitUsage
	}

	n := 0
	for _, p := range reps {
		if checker.IsValid(p) {
			fmt.Fprintln(c.stdout, p)
			n++
		}
	}
	fmt.Fprintf(c.stdout, "classes: %d\nvalid: %d\n", len(reps), n)
	return exitOK
}

func (c *cli) render(args []string) int {
	fs := c.newFlags("render")
	out := fs.String("o", "wire.png", "output image, .png or .bmp")
	width := fs.Int("w", 800, "image width in pixels")
	height := fs.Int("h", 600, "image height in pixels")
	configPath := fs.String("config", "", "path to config file")
	arg, ok := parse(fs, args)
	if !ok {
		fmt.Fprintln(c.stderr, "Usage: wirectl render [-o file] [-w W] [-h H] [-config file] <program>")
		return exitUsage
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(c.stderr, "Error: invalid size %dx%d\n", *width, *height)
		return exitUsage
	}

	p, code := c.program(arg)
	if code != exitOK {
		return code
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		if errors.Is(err, config.ErrInvalid) {
			return exitUsage
		}
		return exitFailure
	}

	style := scene.StyleFrom(cfg.Render)
	b := batch.New()
	scene.NewBuilder(style).Build(b, p, len(p) > 0, wire.Bounds(p), float64(*width)/float64(*height))

	img := raster.Rasterize(b, *width, *height, style.Background)
	if err := debug.SaveImage(img, *out); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return exitFailure
	}

	c.log.Info("rendered",
		zap.Stringer("program", p),
		zap.String("path", *out),
		zap.Int("triangles", b.IndexCount()/3),
	)
	fmt.Fprintln(c.stdout, *out)
	return exitOK
}
