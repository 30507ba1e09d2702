// Package sim drives a panel without hardware.
//
// A Player is a touch.Sensor that replays a script of taps, drags and
// waits.  Scripts are plain text, one command per line:
//
//	tap X Y            touch at X,Y for two polls, then release
//	hold X Y N         touch at X,Y for N polls, then release
//	drag X0 Y0 X1 Y1 [N]  slide from X0,Y0 to X1,Y1 over N polls (5), release
//	wait N             N polls with nothing touching
//	raw X Y Z          one contact sample in controller units
//	up                 one poll with nothing touching
//
// Coordinates are screen pixels except for raw.  # starts a comment.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/merliot/touchdeck/touch"
)

// Frame is what the sensor reports on one poll
type Frame struct {
	Touched bool
	Sample  touch.Sample
}

// Step is one parsed script command
type Step struct {
	Cmd  string
	Args []int
	Line int
}

var arity = map[string][2]int{
	"tap":  {2, 2},
	"hold": {3, 3},
	"drag": {4, 5},
	"wait": {1, 1},
	"raw":  {3, 3},
	"up":   {0, 0},
}

// ParseScript reads a script
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToLower(fields[0])
		limits, ok := arity[cmd]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", n, fields[0])
		}
		args := fields[1:]
		if len(args) < limits[0] || len(args) > limits[1] {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d", n, cmd, limits[0], len(args))
		}
		step := Step{Cmd: cmd, Line: n}
		for _, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", n, cmd, err)
			}
			step.Args = append(step.Args, v)
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

// Compile turns steps into per-poll frames, mapping screen pixels back to
// raw units through cal
func Compile(steps []Step, cal touch.Calibration) []Frame {
	const pressure = 400
	var frames []Frame
	contact := func(x, y int) {
		frames = append(frames, Frame{true, cal.Unmap(touch.Point{X: x, Y: y}, pressure)})
	}
	release := func(n int) {
		for i := 0; i < n; i++ {
			frames = append(frames, Frame{})
		}
	}
	for _, s := range steps {
		a := s.Args
		switch s.Cmd {
		case "tap":
			contact(a[0], a[1])
			contact(a[0], a[1])
			release(1)
		case "hold":
			for i := 0; i < a[2]; i++ {
				contact(a[0], a[1])
			}
			release(1)
		case "drag":
			n := 5
			if len(a) == 5 && a[4] > 0 {
				n = a[4]
			}
			for i := 0; i <= n; i++ {
				contact(a[0]+(a[2]-a[0])*i/n, a[1]+(a[3]-a[1])*i/n)
			}
			release(1)
		case "wait":
			release(a[0])
		case "raw":
			frames = append(frames, Frame{true, touch.Sample{X: a[0], Y: a[1], Z: a[2]}})
		case "up":
			release(1)
		}
	}
	return frames
}

// Player replays frames as a touch.Sensor.  Each Touched call advances one
// frame; after the last frame nothing is touching.
type Player struct {
	frames []Frame
	next   int
	cur    Frame
}

func NewPlayer(frames []Frame) *Player {
	return &Player{frames: frames}
}

// Load parses and compiles a script into a Player
func Load(r io.Reader, cal touch.Calibration) (*Player, error) {
	steps, err := ParseScript(r)
	if err != nil {
		return nil, err
	}
	return NewPlayer(Compile(steps, cal)), nil
}

func (p *Player) Touched() bool {
	p.cur = Frame{}
	if p.next < len(p.frames) {
		p.cur = p.frames[p.next]
		p.next++
	}
	return p.cur.Touched
}

func (p *Player) ReadTouchPoint() touch.Sample {
	return p.cur.Sample
}

// Done is true once every frame has been played
func (p *Player) Done() bool {
	return p.next >= len(p.frames)
}

// Remaining is the number of frames not yet played
func (p *Player) Remaining() int {
	return len(p.frames) - p.next
}
