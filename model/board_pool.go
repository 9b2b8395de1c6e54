package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles the snapshot boards taken every generation
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool. Its contents are undefined until it is
// used as the destination of CloneInto.
func (p *BoardPool) Get() *Board {
	return p.pool.Get().(*Board)
}

// Snapshot copies src into a pooled board
func (p *BoardPool) Snapshot(src *Board) *Board {
	return src.CloneInto(p.Get())
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Reset()
	p.pool.Put(b)
}
