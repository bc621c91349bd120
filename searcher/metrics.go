package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Prunes    int64
	Depth     int
	Aborted   bool
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddPrune()
	SetAborted()
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	depth     int
	nodes     atomic.Int64
	prunes    atomic.Int64
	aborted   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddPrune() {
	c.prunes.Add(1)
}

func (c *collector) SetAborted() {
	c.aborted.Store(true)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		Prunes:    c.prunes.Load(),
		Depth:     c.depth,
		Aborted:   c.aborted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)               {}
func (dummyCollector) AddNode()                {}
func (dummyCollector) AddPrune()               {}
func (dummyCollector) SetAborted()             {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
