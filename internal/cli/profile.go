package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

// Profiler collects a CPU profile and periodic heap dumps for the lifetime of a command. Heap dumps are kept in
// memory and only written to disk on Stop, so writing them does not show up in the profiles.
type Profiler struct {
	cpuOutput *os.File

	dumpPath  string
	dumpsLock sync.Mutex
	heapDumps [][]byte
	stop      chan struct{}
	stopped   sync.WaitGroup
}

func StartProfiler(cpuProfilePath, memProfileDir string) (*Profiler, error) {
	p := &Profiler{dumpPath: memProfileDir, stop: make(chan struct{})}

	if cpuProfilePath != "" {
		cpuOutput, err := os.Create(cpuProfilePath)
		if err != nil {
			return nil, err
		}
		runtime.SetCPUProfileRate(500)
		if err = pprof.StartCPUProfile(cpuOutput); err != nil {
			cpuOutput.Close()
			return nil, fmt.Errorf("starting CPU profiler: %w", err)
		}
		p.cpuOutput = cpuOutput
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		p.stopped.Add(1)
		go p.sampleMemory(time.Duration((1 / MemorySampleRate) * float64(time.Second)))
	}
	return p, nil
}

func (p *Profiler) sampleMemory(interval time.Duration) {
	defer p.stopped.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.dumpMemoryProfile()
		}
	}
}

func (p *Profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		return
	}

	p.dumpsLock.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.dumpsLock.Unlock()
}

// Stop ends the CPU profile and writes every heap dump taken, plus a final one, as mem-N.mprof.
func (p *Profiler) Stop() error {
	if p.cpuOutput != nil {
		pprof.StopCPUProfile()
		if err := p.cpuOutput.Close(); err != nil {
			return err
		}
		p.cpuOutput = nil
	}

	if p.dumpPath == "" {
		return nil
	}

	close(p.stop)
	p.stopped.Wait()
	p.dumpMemoryProfile()

	if err := os.MkdirAll(p.dumpPath, os.ModePerm); err != nil {
		return err
	}
	for dIdx, dump := range p.heapDumps {
		if err := os.WriteFile(filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644); err != nil {
			return fmt.Errorf("writing memory profile to disk: %w", err)
		}
	}
	return nil
}
