package handlers

import (
	"log"
	"sync"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/atharvakonge/investment-tracker/internal/portfolio"
)

// positionLocker hands out one mutex per position id so concurrent
// exits of the same position serialize while exits of different
// positions run in parallel.
type positionLocker struct {
	locks    map[string]*sync.Mutex
	mapMutex sync.RWMutex
}

func newPositionLocker() *positionLocker {
	return &positionLocker{locks: make(map[string]*sync.Mutex)}
}

func (pl *positionLocker) Lock(id string) {
	pl.mapMutex.Lock()
	if pl.locks[id] == nil {
		pl.locks[id] = &sync.Mutex{}
	}
	m := pl.locks[id]
	pl.mapMutex.Unlock()

	m.Lock()
}

func (pl *positionLocker) Unlock(id string) {
	pl.mapMutex.RLock()
	m := pl.locks[id]
	pl.mapMutex.RUnlock()

	if m != nil {
		m.Unlock()
	}
}

// exitJob is one queued exit with a channel to send the outcome back.
type exitJob struct {
	stockID  string
	request  models.ExitStockRequest
	resultCh chan error
}

// ExitProcessor runs exit mutations through a worker pool. The exit
// operation is a read-modify-write, so same-position exits must not
// interleave; the locker guarantees that.
type ExitProcessor struct {
	svc       *portfolio.Service
	workers   int
	exitQueue chan exitJob
	stopCh    chan struct{}
	wg        sync.WaitGroup
	locker    *positionLocker
}

// NewExitProcessor creates a processor with the given worker count.
func NewExitProcessor(svc *portfolio.Service, workers int) *ExitProcessor {
	return &ExitProcessor{
		svc:       svc,
		workers:   workers,
		exitQueue: make(chan exitJob, 100),
		stopCh:    make(chan struct{}),
		locker:    newPositionLocker(),
	}
}

// Start starts the worker pool.
func (ep *ExitProcessor) Start() {
	for i := 0; i < ep.workers; i++ {
		ep.wg.Add(1)
		go ep.worker(i)
	}
	log.Printf("Started %d exit workers", ep.workers)
}

// Stop gracefully stops all workers.
func (ep *ExitProcessor) Stop() {
	close(ep.stopCh)
	ep.wg.Wait()
	log.Println("Exit processor stopped")
}

func (ep *ExitProcessor) worker(id int) {
	defer ep.wg.Done()

	for {
		select {
		case <-ep.stopCh:
			return

		case job := <-ep.exitQueue:
			job.resultCh <- ep.processExit(job)
		}
	}
}

func (ep *ExitProcessor) processExit(job exitJob) error {
	ep.locker.Lock(job.stockID)
	defer ep.locker.Unlock(job.stockID)

	return ep.svc.ExitStock(job.stockID, job.request)
}

// SubmitExit queues an exit and waits for its result.
func (ep *ExitProcessor) SubmitExit(stockID string, req models.ExitStockRequest) error {
	resultCh := make(chan error)

	ep.exitQueue <- exitJob{
		stockID:  stockID,
		request:  req,
		resultCh: resultCh,
	}

	return <-resultCh
}
