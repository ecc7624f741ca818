package meshing

import (
	"context"
	"sync"

	"voxelcore/internal/mathutil"
	"voxelcore/internal/registry"
)

// ChunkCoord identifies a chunk by its integer grid position.
type ChunkCoord struct{ X, Y, Z int }

// MeshJob requests a mesh for one chunk's voxel tensor.
type MeshJob struct {
	Coord      ChunkCoord
	Voxels     *mathutil.Tensor3
	ResultChan chan MeshResult
}

// MeshResult carries the output of one MeshJob back to its submitter.
type MeshResult struct {
	Coord        ChunkCoord
	Solid, Water *Geometry
	Custom       *Geometry // non-full model blocks, unmerged
}

// WorkerPool runs chunk meshing jobs across a fixed number of
// goroutines, each with its own TerrainMesher instance so that the
// mesher's scratch buffers never need locking.
type WorkerPool struct {
	reg      *registry.Registry
	jobQueue chan MeshJob
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines, each owning its own
// TerrainMesher bound to reg.
func NewWorkerPool(reg *registry.Registry, workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		reg:      reg,
		jobQueue: make(chan MeshJob, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(NewTerrainMesher(reg))
	}
	return p
}

// SubmitJob enqueues job without blocking. It returns false if the
// queue is full.
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking enqueues job, blocking until there is room or the
// pool is shut down.
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *WorkerPool) worker(mesher *TerrainMesher) {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			solid, water := mesher.MeshChunk(job.Voxels, nil, nil)
			custom := MeshCustomBlocks(p.reg, job.Voxels)
			result := MeshResult{Coord: job.Coord, Solid: solid, Water: water, Custom: custom}
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown cancels outstanding work and waits for every worker to
// exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
}

// QueueLength returns the number of jobs currently queued.
func (p *WorkerPool) QueueLength() int { return len(p.jobQueue) }
