// Command track is a headless marker-tracking diagnostic: it opens the
// capture source and prints the detected center and radius continuously.
// Useful for checking lighting and color-band fit before a session.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rehazenter/go-rehab/internal/config"
	"github.com/rehazenter/go-rehab/internal/log"
	"github.com/rehazenter/go-rehab/pkg/capture"
	"github.com/rehazenter/go-rehab/pkg/vision"
)

func main() {
	config.LoadDotenv()
	log.Init(config.LogLevel())

	var (
		width  = flag.Int("width", 640, "camera frame width")
		height = flag.Int("height", 480, "camera frame height")
		color  = flag.String("color", "yellow", "marker color (yellow, blue, black)")
		video  = flag.String("video", "", "video file path (default: live camera)")
	)
	flag.Parse()

	res, err := capture.NewResolution(*width, *height)
	if err != nil {
		fatal(err)
	}
	band, err := vision.ParseColor(*color)
	if err != nil {
		fatal(err)
	}

	src, err := capture.Open(res, *video)
	if err != nil {
		fatal(err)
	}
	defer src.Close()
	fmt.Printf("Tracking %s marker at %dx%d (negotiated %dx%d)\n",
		band.Name, res.Width, res.Height, src.Width, src.Height)

	loop := capture.NewLoop(src, band)
	loop.Start()
	defer loop.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			fmt.Println("\nStopped.")
			return
		case <-ticker.C:
		}

		if !loop.IsRunning() {
			fmt.Println("Capture stopped.")
			return
		}
		pos, ok := loop.LatestPosition()
		switch {
		case !ok:
			fmt.Println("waiting for first frame...")
		case pos.Center == nil:
			fmt.Printf("marker not found (radius %.1f)\n", pos.Radius)
		default:
			fmt.Printf("marker at (%d,%d) radius %.1f\n", pos.Center.X, pos.Center.Y, pos.Radius)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
