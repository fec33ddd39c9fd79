// Command exercise runs one full rehabilitation session: it opens the
// capture source, calibrates the reference points, then counts
// repetitions until the configured limit. An optional HTTP monitor
// exposes status, events and the annotated frame stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"github.com/rehazenter/go-rehab/internal/config"
	"github.com/rehazenter/go-rehab/internal/log"
	"github.com/rehazenter/go-rehab/pkg/capture"
	"github.com/rehazenter/go-rehab/pkg/encourage"
	"github.com/rehazenter/go-rehab/pkg/exercise"
	"github.com/rehazenter/go-rehab/pkg/vision"
	"github.com/rehazenter/go-rehab/pkg/web"
)

// framePumpInterval is how often the annotated frame is pushed to
// monitor clients. Streaming is best-effort; dropping frames is fine.
const framePumpInterval = 100 * time.Millisecond

func main() {
	config.LoadDotenv()
	log.Init(config.LogLevel())

	var (
		width     = flag.Int("width", config.Int("CAMERA_WIDTH", 640), "camera frame width")
		height    = flag.Int("height", config.Int("CAMERA_HEIGHT", 480), "camera frame height")
		color     = flag.String("color", config.String("MARKER_COLOR", "yellow"), "marker color (yellow, blue, black)")
		video     = flag.String("video", config.String("VIDEO_PATH", ""), "video file path (default: live camera)")
		kindName  = flag.String("kind", "flexion", "exercise kind (flexion, abduction)")
		limbName  = flag.String("limb", "left_arm", "exercising limb")
		reps      = flag.Int("reps", 10, "repetition limit (1-99)")
		dwell     = flag.Int("dwell", 10, "calibration dwell per point, seconds (0-30)")
		timeLimit = flag.Int("time-limit", 0, "exercise time limit, seconds (0 = none)")
		port      = flag.String("port", config.String("MONITOR_PORT", ""), "monitor HTTP port (empty = disabled)")
	)
	flag.Parse()

	kind, err := exercise.ParseKind(*kindName)
	if err != nil {
		fatal(err)
	}
	limb, err := exercise.ParseLimb(*limbName)
	if err != nil {
		fatal(err)
	}
	res, err := capture.NewResolution(*width, *height)
	if err != nil {
		fatal(err)
	}

	cfg := exercise.Config{
		Kind:             kind,
		Limb:             limb,
		Resolution:       res,
		Color:            *color,
		VideoPath:        *video,
		RepetitionLimit:  *reps,
		CalibrationDwell: time.Duration(*dwell) * time.Second,
		TimeLimit:        time.Duration(*timeLimit) * time.Second,
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	band, err := vision.ParseColor(cfg.Color)
	if err != nil {
		fatal(err)
	}

	// Config is valid; only now touch the hardware.
	src, err := capture.Open(cfg.Resolution, cfg.VideoPath)
	if err != nil {
		fatal(err)
	}
	defer src.Close()

	loop := capture.NewLoop(src, band)
	loop.Start()
	defer loop.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := exercise.NewSession(cfg, loop)
	if err != nil {
		fatal(err)
	}

	encourager, err := encourage.New(cfg.RepetitionLimit, nil)
	if err != nil {
		fatal(err)
	}

	var monitor *web.Server
	if *port != "" {
		monitor = web.NewServer(*port, cfg)
		monitor.UpdateStatus(func(st *web.Status) {
			st.SessionID = session.ID.String()
			st.Running = true
		})
		monitor.StartAsync()
		defer monitor.Shutdown()
		go pumpFrames(ctx, loop, monitor)
	}

	session.Events = func(ev exercise.Event) {
		if ev.Type == exercise.EventRepetition {
			encourager.RepetitionDone(ev.Count)
		}
		if monitor != nil {
			monitor.PublishEvent(ev)
			monitor.UpdateStatus(func(st *web.Status) {
				applyEvent(st, ev)
			})
		}
	}

	encourager.Say("Calibrating now... please move your hand to the desired position on the table and hold it there.")
	set, err := session.Calibrate(ctx)
	if err != nil {
		fatal(fmt.Errorf("calibration failed: %w", err))
	}
	if points, err := exercise.FormatPoints(set); err == nil {
		log.Info("calibration points", "key", exercise.PointsKey(cfg.Limb), "points", points)
	} else {
		log.Warn("calibration produced a degenerate point", "err", err)
	}

	encourager.Say("Calibration completed! You may start your exercise now!")
	count, err := session.Run(ctx, set)
	switch {
	case err == nil:
		log.Info("session finished", "repetitions", count)
	case errors.Is(err, exercise.ErrTimeLimitReached):
		log.Warn("time limit reached", "repetitions", count)
	case errors.Is(err, context.Canceled):
		log.Warn("session aborted", "repetitions", count)
	default:
		fatal(fmt.Errorf("exercise failed after %d repetitions: %w", count, err))
	}
}

// applyEvent folds a session event into the monitor status.
func applyEvent(st *web.Status, ev exercise.Event) {
	switch ev.Type {
	case exercise.EventCalibrationStarted:
		st.Phase = "calibrating"
	case exercise.EventCalibrationComplete:
		st.Phase = "exercising"
	case exercise.EventRepetition:
		st.Count = ev.Count
	case exercise.EventExerciseComplete:
		st.Phase = "done"
		st.Count = ev.Count
		st.Running = false
	}
}

// pumpFrames streams the latest annotated frame to monitor clients.
func pumpFrames(ctx context.Context, loop *capture.Loop, monitor *web.Server) {
	ticker := time.NewTicker(framePumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		obs, ok := loop.Latest()
		if !ok {
			continue
		}
		monitor.UpdateStatus(func(st *web.Status) {
			st.MarkerFound = obs.Found()
			st.Radius = obs.Radius
			if obs.Center != nil {
				st.MarkerX = obs.Center.X
				st.MarkerY = obs.Center.Y
			}
		})
		if buf, err := gocv.IMEncode(gocv.JPEGFileExt, obs.Original); err == nil {
			monitor.PublishFrame(buf.GetBytes())
			buf.Close()
		}
		obs.Close()
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
