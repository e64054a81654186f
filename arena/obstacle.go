package arena

// Obstacle is a radial band inside a slot
// Distance is the leading edge offset from the hub (1.0 far edge, negative past the cursor ring)
type Obstacle struct {
	Distance float64
	Height   float64
}

// Trailing returns the far edge of the band
func (o *Obstacle) Trailing() float64 {
	return o.Distance + o.Height
}

// Straddles reports whether the band covers the radial line y
func (o *Obstacle) Straddles(y float64) bool {
	return o.Distance <= y && o.Distance+o.Height > y
}

// ObstaclePool recycles obstacle records between patterns
// Not safe for concurrent use; owned by the simulation goroutine
type ObstaclePool struct {
	free      []*Obstacle
	allocated int
}

// NewObstaclePool creates an empty pool
func NewObstaclePool() *ObstaclePool {
	return &ObstaclePool{}
}

// Acquire returns a recycled or newly allocated obstacle set to (distance, height)
func (p *ObstaclePool) Acquire(distance, height float64) *Obstacle {
	var o *Obstacle
	if n := len(p.free); n > 0 {
		o = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		o = &Obstacle{}
		p.allocated++
	}
	o.Distance = distance
	o.Height = height
	return o
}

// Release returns an obstacle to the free list
// Releasing the same record twice without an intervening Acquire corrupts the pool
func (p *ObstaclePool) Release(o *Obstacle) {
	if o == nil {
		return
	}
	p.free = append(p.free, o)
}

// ReleaseAll returns every obstacle of the list; the caller truncates its slice
func (p *ObstaclePool) ReleaseAll(obstacles []*Obstacle) {
	for _, o := range obstacles {
		p.Release(o)
	}
}

// Free returns the free-list length
func (p *ObstaclePool) Free() int {
	return len(p.free)
}

// Allocated returns the number of records ever allocated by the pool
func (p *ObstaclePool) Allocated() int {
	return p.allocated
}

// Contains reports whether o currently sits in the free list
func (p *ObstaclePool) Contains(o *Obstacle) bool {
	for _, f := range p.free {
		if f == o {
			return true
		}
	}
	return false
}
