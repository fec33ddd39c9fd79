package capture

import (
	"sync"

	"gocv.io/x/gocv"

	"github.com/rehazenter/go-rehab/internal/log"
	"github.com/rehazenter/go-rehab/pkg/vision"
)

// FrameReader is the frame producer consumed by the Loop. *Source
// implements it; tests substitute synthetic readers.
type FrameReader interface {
	Read(dst *gocv.Mat) error
}

// Loop continuously reads frames, locates the marker and publishes the
// most recent Observation as an atomically replaced snapshot. Exactly
// one goroutine writes the snapshot; any number may read it. Readers
// never block the producer and the producer never waits for readers.
type Loop struct {
	src  FrameReader
	band vision.ColorBand

	mu      sync.RWMutex
	latest  *vision.Observation
	running bool

	started bool
	stop    chan struct{}
	done    chan struct{}
}

// NewLoop creates a capture loop over the given frame source.
func NewLoop(src FrameReader, band vision.ColorBand) *Loop {
	return &Loop{
		src:  src,
		band: band,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start begins frame acquisition on a background goroutine.
// Starting a Loop twice is a programming error.
func (l *Loop) Start() {
	if l.started {
		panic("capture: Loop started twice")
	}
	l.started = true
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()
	go l.run()
}

// Stop asks the loop to terminate and waits for it to exit. The check
// is cooperative, once per iteration; a frame read in flight completes
// first.
func (l *Loop) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
	<-l.done
}

// IsRunning reports whether the loop is still producing snapshots.
// A fatal capture error flips this to false; it is the only way loop
// death is surfaced, so control loops must poll it.
func (l *Loop) IsRunning() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Latest returns a copy of the most recent snapshot. The caller owns
// the returned Observation and must Close it. ok is false before the
// first frame has been processed (and after the loop shut down).
func (l *Loop) Latest() (obs vision.Observation, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.latest == nil {
		return vision.Observation{}, false
	}
	obs = vision.Observation{
		Center:   l.latest.Position().Center,
		Radius:   l.latest.Radius,
		Original: l.latest.Original.Clone(),
		Mask:     l.latest.Mask.Clone(),
	}
	return obs, true
}

// LatestPosition returns the most recent center and radius without the
// frames. This is the cheap accessor the calibration and counting loops
// poll every iteration.
func (l *Loop) LatestPosition() (pos vision.Position, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.latest == nil {
		return vision.Position{}, false
	}
	return l.latest.Position(), true
}

func (l *Loop) run() {
	locator := vision.NewLocator()
	frame := gocv.NewMat()
	defer func() {
		l.mu.Lock()
		l.running = false
		if l.latest != nil {
			l.latest.Close()
			l.latest = nil
		}
		l.mu.Unlock()
		frame.Close()
		locator.Close()
		close(l.done)
	}()

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		if err := l.src.Read(&frame); err != nil {
			log.Warn("capture loop terminating", "err", err)
			return
		}

		obs := locator.Locate(frame, l.band)
		l.publish(&obs)
	}
}

// publish atomically replaces the latest snapshot, releasing the frames
// of the one it overwrites.
func (l *Loop) publish(obs *vision.Observation) {
	l.mu.Lock()
	if l.latest != nil {
		l.latest.Close()
	}
	l.latest = obs
	l.mu.Unlock()
}
