// Package engine provides concurrent batch conversion of LHE files.
// Each job parses one file and writes its four arrays as Arrow IPC files;
// every job owns its own file handle and buffers, so jobs parallelize
// cleanly while each parse stays single-threaded.
package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	lhearrow "github.com/hepstack/lhevec/arrow"
	"github.com/hepstack/lhevec/data"
	"github.com/hepstack/lhevec/lhe"
)

// ErrPoolClosed is returned when submitting to a shut-down pool.
var ErrPoolClosed = errors.New("pool is shut down")

// Suffixes of the four output files written per input, in canonical order.
var outputSuffixes = [4]string{".i_evt.arrows", ".f_evt.arrows", ".i_ptc.arrows", ".f_ptc.arrows"}

// Job is one file conversion request.
type Job struct {
	ID     string
	Path   string
	OutDir string
	Ctx    context.Context
}

// Result is the outcome of one conversion.
type Result struct {
	JobID     string
	Path      string
	Outputs   []string
	Events    int
	Particles int
	Err       error
	Duration  time.Duration
	WorkerID  int
}

// PoolStats contains worker pool statistics.
type PoolStats struct {
	Name        string  `json:"name"`
	Workers     int     `json:"workers"`
	Active      int64   `json:"active"`
	Completed   int64   `json:"completed"`
	Failed      int64   `json:"failed"`
	Pending     int     `json:"pending"`
	SuccessRate float64 `json:"success_rate"`
}

// Pool manages goroutine workers that convert LHE files to Arrow files.
type Pool struct {
	name       string
	workers    int
	jobChan    chan *Job
	resultChan chan *Result
	wg         sync.WaitGroup

	conv *data.Converter
	ipc  *lhearrow.IPCWriter

	// Atomic counters for thread-safe statistics
	active    int64
	completed int64
	failed    int64

	// Control
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
	mu      sync.RWMutex
}

// NewPool creates a new pool with the specified number of workers.
func NewPool(name string, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	pool := &Pool{
		name:       name,
		workers:    workers,
		jobChan:    make(chan *Job, workers*16),
		resultChan: make(chan *Result, workers*16),
		conv:       data.NewConverter(),
		ipc:        lhearrow.NewIPCWriter(),
		ctx:        ctx,
		cancel:     cancel,
		running:    true,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// worker is the goroutine that processes jobs.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobChan:
			if !ok {
				return
			}
			p.processJob(id, job)
		}
	}
}

// processJob converts a single file and sends the result.
func (p *Pool) processJob(workerID int, job *Job) {
	atomic.AddInt64(&p.active, 1)
	defer atomic.AddInt64(&p.active, -1)

	start := time.Now()

	result := &Result{
		JobID:    job.ID,
		Path:     job.Path,
		WorkerID: workerID,
	}

	// Panic recovery so one corrupt file never takes down the pool
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic converting %s: %v", job.Path, r)
			result.Duration = time.Since(start)
			atomic.AddInt64(&p.failed, 1)
			p.sendResult(result)
		}
	}()

	if job.Ctx != nil {
		select {
		case <-job.Ctx.Done():
			result.Err = job.Ctx.Err()
			result.Duration = time.Since(start)
			atomic.AddInt64(&p.failed, 1)
			p.sendResult(result)
			return
		default:
		}
	}

	result.Outputs, result.Events, result.Particles, result.Err = p.convertFile(job)
	result.Duration = time.Since(start)

	if result.Err == nil {
		atomic.AddInt64(&p.completed, 1)
	} else {
		atomic.AddInt64(&p.failed, 1)
	}

	p.sendResult(result)
}

// convertFile runs the parse and writes the four output files.
func (p *Pool) convertFile(job *Job) ([]string, int, int, error) {
	tab, err := lhe.Parse(job.Path)
	if err != nil {
		return nil, 0, 0, err
	}

	set, err := p.conv.TableToRecords(tab)
	if err != nil {
		return nil, 0, 0, err
	}
	defer set.Release()

	base := filepath.Base(job.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	outputs := make([]string, 0, len(outputSuffixes))
	for i, rec := range set.Records() {
		path := filepath.Join(job.OutDir, base+outputSuffixes[i])
		if err := p.ipc.WriteRecordFile(path, rec); err != nil {
			return nil, 0, 0, err
		}
		outputs = append(outputs, path)
	}

	return outputs, tab.NumEvents, tab.NumParticles, nil
}

// sendResult delivers a result, blocking until the consumer takes it or
// the pool shuts down.
func (p *Pool) sendResult(result *Result) {
	select {
	case p.resultChan <- result:
	case <-p.ctx.Done():
	}
}

// Submit adds a job, blocking while the queue is full.
func (p *Pool) Submit(job *Job) error {
	p.mu.RLock()
	running := p.running
	p.mu.RUnlock()

	if !running {
		return ErrPoolClosed
	}

	select {
	case p.jobChan <- job:
		return nil
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

// Results returns the result channel for consuming results.
func (p *Pool) Results() <-chan *Result {
	return p.resultChan
}

// GetStats returns current pool statistics.
func (p *Pool) GetStats() PoolStats {
	completed := atomic.LoadInt64(&p.completed)
	failed := atomic.LoadInt64(&p.failed)
	total := completed + failed

	var successRate float64
	if total > 0 {
		successRate = float64(completed) / float64(total) * 100
	}

	return PoolStats{
		Name:        p.name,
		Workers:     p.workers,
		Active:      atomic.LoadInt64(&p.active),
		Completed:   completed,
		Failed:      failed,
		Pending:     len(p.jobChan),
		SuccessRate: successRate,
	}
}

// Shutdown gracefully shuts down the pool.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	p.cancel()
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// IsRunning returns true if the pool is still accepting jobs.
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}
