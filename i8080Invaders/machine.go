package i8080Invaders

import (
	"time"

	"github.com/is386/GoInvaders/i8080"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	CYCLES_PER_FRAME = uint64(i8080.ClockSpeed / 60)
	FRAME_MS         = uint32(1000 / 60)
)

type InvadersMachine struct {
	cpu    *i8080.CPU
	screen *Screen
	sound  SoundPlayer
	trace  i8080.Tracer
}

func NewInvadersMachine(romDir string, trace i8080.Tracer) (*InvadersMachine, error) {
	cpu := i8080.NewCPU()
	if err := LoadInvadersROMs(cpu, romDir); err != nil {
		return nil, err
	}
	return &InvadersMachine{cpu: cpu, sound: NullPlayer{}, trace: trace}, nil
}

func (im *InvadersMachine) CPU() *i8080.CPU {
	return im.cpu
}

func (im *InvadersMachine) SetSound(s SoundPlayer) {
	im.sound = s
}

// RunBatch steps the CPU until at least steps instructions have retired.
// Injected interrupts count as instructions, so the total can exceed steps
// by one when an interrupt lands in the final step. Returns the number
// actually retired; short counts mean the CPU halted.
func (im *InvadersMachine) RunBatch(steps uint64) uint64 {
	start := im.cpu.GetInstructions()
	for im.cpu.GetInstructions()-start < steps {
		if !im.cpu.Step(im.trace) {
			break
		}
	}
	return im.cpu.GetInstructions() - start
}

type BenchResult struct {
	Instructions uint64
	Cycles       uint64
	Simulated    float64
	Wall         float64
}

// RunBench runs a traceless batch and reports simulated vs wall time.
func (im *InvadersMachine) RunBench(steps uint64) BenchResult {
	saved := im.trace
	im.trace = i8080.NopTracer
	start := time.Now()
	n := im.RunBatch(steps)
	wall := time.Since(start).Seconds()
	im.trace = saved
	cycles := im.cpu.GetCycles()
	return BenchResult{
		Instructions: n,
		Cycles:       cycles,
		Simulated:    float64(cycles) / float64(i8080.ClockSpeed),
		Wall:         wall,
	}
}

// Run is the real-time mode: one display frame of emulation per iteration,
// paced to 60 fps, with input polling and sound edge detection in between.
func (im *InvadersMachine) Run() {
	im.screen = NewScreen()
	defer im.screen.Destroy()

	running := true
	for running && !im.cpu.Halted() {
		frameStart := sdl.GetTicks()
		running = im.pollSDL()

		port3 := im.cpu.GetPort3()
		port5 := im.cpu.GetPort5()

		target := im.cpu.GetCycles() + CYCLES_PER_FRAME
		for im.cpu.GetCycles() < target {
			if !im.cpu.Step(im.trace) {
				break
			}
		}

		im.playEdges(port3, port5)
		im.screen.Draw(im.cpu.GetMemory())
		im.screen.Update()

		elapsed := sdl.GetTicks() - frameStart
		if elapsed < FRAME_MS {
			sdl.Delay(FRAME_MS - elapsed)
		}
	}
}

func (im *InvadersMachine) pollSDL() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					return false
				}
				im.setKey(e.Keysym.Sym, true)
			case sdl.KEYUP:
				im.setKey(e.Keysym.Sym, false)
			}
		}
	}
	return true
}

func (im *InvadersMachine) setKey(key sdl.Keycode, down bool) {
	b := &im.cpu.Buttons
	switch key {
	case sdl.K_c:
		b.Coin = down
	case sdl.K_RETURN:
		b.P1Start = down
	case sdl.K_2:
		b.P2Start = down
	case sdl.K_a, sdl.K_LEFT:
		b.P1Left = down
	case sdl.K_d, sdl.K_RIGHT:
		b.P1Right = down
	case sdl.K_SPACE, sdl.K_j:
		b.P1Fire = down
	}
}
