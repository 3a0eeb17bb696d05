package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Profiler captures a CPU profile and an execution trace when a tick takes
// longer than its budget. It runs only while debug drawing is on.
type Profiler struct {
	mu     sync.Mutex
	logger *log.Logger
	dir    string

	budget   time.Duration
	cooldown time.Duration
	duration time.Duration

	busy bool
	last time.Time

	now func() time.Time
	run func(base string)
}

// NewProfiler creates a profiler writing to dir. A tick is slow when it
// takes more than two frames at the given tick rate.
func NewProfiler(dir string, tps int, logger *log.Logger) *Profiler {
	p := &Profiler{
		logger:   logger,
		dir:      dir,
		budget:   2 * time.Second / time.Duration(tps),
		cooldown: 10 * time.Second,
		duration: 3 * time.Second,
		now:      time.Now,
	}
	p.run = p.capture
	return p
}

// Observe reports a tick duration and starts a capture in the background
// when the tick was slow. It returns true when a capture started.
func (p *Profiler) Observe(elapsed time.Duration) bool {
	if elapsed <= p.budget {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	if p.busy || (!p.last.IsZero() && now.Sub(p.last) < p.cooldown) {
		return false
	}
	p.busy = true
	p.last = now

	base := fmt.Sprintf("slow-tick-%s", now.Format("20060102-150405"))
	p.logger.Warn("slow tick, capturing profile", "elapsed", elapsed, "budget", p.budget, "name", base)
	go func() {
		defer func() {
			p.mu.Lock()
			p.busy = false
			p.mu.Unlock()
		}()
		p.run(base)
	}()
	return true
}

// Busy reports whether a capture is in progress
func (p *Profiler) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// capture records the CPU profile and the trace in parallel
func (p *Profiler) capture(base string) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		p.logger.Error("failed to create profile dir", "err", err)
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := p.captureCPU(base); err != nil {
			p.logger.Error("cpu profile failed", "err", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := p.captureTrace(base); err != nil {
			p.logger.Error("trace failed", "err", err)
		}
	}()
	wg.Wait()
	p.logger.Info("profile saved", "dir", p.dir, "view", "go tool pprof -http=:8080 "+filepath.Join(p.dir, base+".cpu.prof"))
}

func (p *Profiler) captureCPU(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".trace"))
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()
	return nil
}
