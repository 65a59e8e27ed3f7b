// Package worker runs fire-and-forget tasks on a bounded set of goroutines.
//
// Up to Core workers are started on demand and live until shutdown. Once they
// are busy, tasks wait in a queue of Queue slots; when the queue is full,
// extra workers up to Max are started and exit after KeepAlive without work.
// When every worker is busy and the queue is full, the submitting goroutine
// runs the task itself.
package worker

import (
	"errors"
	"sync"
	"time"

	"recipe-book/backend/global"
)

var ErrShutdownTimeout = errors.New("worker pool: shutdown timed out")

type Config struct {
	Core            int
	Max             int
	Queue           int
	KeepAlive       time.Duration
	ShutdownTimeout time.Duration
}

type Pool struct {
	cfg   Config
	tasks chan func()
	wg    sync.WaitGroup

	mu      sync.Mutex
	workers int
	closed  bool
}

func New(cfg Config) *Pool {
	if cfg.Core < 1 {
		cfg.Core = 1
	}
	if cfg.Max < cfg.Core {
		cfg.Max = cfg.Core
	}
	if cfg.Queue < 0 {
		cfg.Queue = 0
	}
	return &Pool{cfg: cfg, tasks: make(chan func(), cfg.Queue)}
}

// Submit schedules task. It reports false when the pool is shut down and the
// task was dropped.
func (p *Pool) Submit(task func()) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		global.Logger.Warn().Msg("worker pool is shut down, task discarded")
		return false
	}
	if p.workers < p.cfg.Core {
		p.spawn(task, true)
		p.mu.Unlock()
		return true
	}
	select {
	case p.tasks <- task:
		p.mu.Unlock()
		return true
	default:
	}
	if p.workers < p.cfg.Max {
		p.spawn(task, false)
		p.mu.Unlock()
		return true
	}
	p.mu.Unlock()

	// saturated
	run(task)
	return true
}

// Workers reports the number of live worker goroutines.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Shutdown stops accepting tasks and waits up to ShutdownTimeout for queued
// and running ones to finish.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	if p.cfg.ShutdownTimeout <= 0 {
		<-done
		return nil
	}
	select {
	case <-done:
		return nil
	case <-time.After(p.cfg.ShutdownTimeout):
		return ErrShutdownTimeout
	}
}

// spawn must be called with p.mu held.
func (p *Pool) spawn(first func(), core bool) {
	p.workers++
	p.wg.Add(1)
	go p.work(first, core)
}

func (p *Pool) work(first func(), core bool) {
	defer p.wg.Done()
	defer func() {
		p.mu.Lock()
		p.workers--
		p.mu.Unlock()
	}()

	run(first)
	if core || p.cfg.KeepAlive <= 0 {
		for task := range p.tasks {
			run(task)
		}
		return
	}

	idle := time.NewTimer(p.cfg.KeepAlive)
	defer idle.Stop()
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			run(task)
			idle.Reset(p.cfg.KeepAlive)
		case <-idle.C:
			return
		}
	}
}

func run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			global.Logger.Error().Interface("panic", r).Msg("worker task panicked")
		}
	}()
	task()
}
