// outline-replay applies a recorded drag session to an outline and prints
// the resulting tree. It accepts either a pointer script (-script), which is
// replayed through the capture layer with synthesized row-layout beacons, or
// a stream of wire events (-events), one JSON object per line, applied
// directly to the editor. Malformed event lines are logged and skipped.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/beacon"
)

// Row metrics for the synthesized layout in script mode. They mirror the
// outline example so a script recorded against it replays identically.
const (
	rowHeight = 34.0
	rowGap    = 6.0
	rowWidth  = 320.0
	indent    = 28.0
	nestZoneW = 90.0
)

func main() {
	var (
		outlinePath = flag.String("outline", "", "initial outline JSON file (default: stdin)")
		scriptPath  = flag.String("script", "", "pointer script to replay through the capture layer")
		eventsPath  = flag.String("events", "", "wire events to apply, one JSON object per line")
		threshold   = flag.Float64("threshold", beacon.DefaultThreshold, "drag threshold in pixels for script mode")
		asJSON      = flag.Bool("json", false, "print the result as outline JSON instead of a text tree")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if (*scriptPath == "") == (*eventsPath == "") {
		log.Fatal("exactly one of -script or -events is required")
	}

	outline, err := loadOutline(*outlinePath)
	if err != nil {
		log.Fatal("load outline", "err", err)
	}
	ed := beacon.NewEditor(outline)

	switch {
	case *scriptPath != "":
		if err := runScript(ed, *scriptPath, *threshold); err != nil {
			log.Fatal("replay script", "err", err)
		}
	case *eventsPath != "":
		if err := runEvents(ed, *eventsPath); err != nil {
			log.Fatal("apply events", "err", err)
		}
	}

	if err := printOutline(ed.Outline(), *asJSON); err != nil {
		log.Fatal("print outline", "err", err)
	}
}

func loadOutline(path string) (*beacon.Outline, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var o beacon.Outline
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func runScript(ed *beacon.Editor, path string, threshold float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	script, err := beacon.LoadScript(data)
	if err != nil {
		return err
	}
	c := beacon.NewCapture()
	c.SetThreshold(threshold)
	applied := script.Run(ed, c, func() []beacon.Beacon {
		return layoutBeacons(ed)
	})
	log.Debug("script replayed", "steps", script.Len(), "events", applied)
	return nil
}

// layoutBeacons synthesizes the same beacon set the outline example builds
// from its row layout, so headless replays resolve drops the way the UI
// would.
func layoutBeacons(ed *beacon.Editor) []beacon.Beacon {
	dragged, _ := ed.Dragging()
	var bs []beacon.Beacon
	i := 0
	ed.Outline().Walk(func(n *beacon.Node, depth int) {
		r := beacon.Rect{
			X:      float64(depth) * indent,
			Y:      float64(i) * rowHeight,
			Width:  rowWidth - float64(depth)*indent,
			Height: rowHeight - rowGap,
		}
		i++
		if n.ID == dragged {
			return
		}
		half := r.Height / 2
		bs = append(bs,
			beacon.Beacon{
				Slot: beacon.Slot{Kind: beacon.SlotBefore, Ref: n.ID},
				Rect: beacon.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: half},
			},
			beacon.Beacon{
				Slot: beacon.Slot{Kind: beacon.SlotAfter, Ref: n.ID},
				Rect: beacon.Rect{X: r.X, Y: r.Y + half, Width: r.Width, Height: half},
			},
			beacon.Beacon{
				Slot: beacon.Slot{Kind: beacon.SlotAppendIn, Ref: n.ID},
				Rect: beacon.Rect{X: r.X + r.Width, Y: r.Y, Width: nestZoneW, Height: r.Height},
			},
		)
		if len(n.Children()) > 0 {
			bs = append(bs, beacon.Beacon{
				Slot: beacon.Slot{Kind: beacon.SlotPrependIn, Ref: n.ID},
				Rect: beacon.Rect{X: r.X + indent, Y: r.Y + r.Height, Width: r.Width - indent, Height: rowGap},
			})
		}
	})
	return bs
}

func runEvents(ed *beacon.Editor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	applied, skipped := 0, 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		ev, err := beacon.DecodeEvent([]byte(raw))
		if err != nil {
			log.Warn("skipping event", "line", line, "err", err)
			skipped++
			continue
		}
		ev.Apply(ed)
		applied++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	log.Debug("events applied", "applied", applied, "skipped", skipped)
	return nil
}

func printOutline(o *beacon.Outline, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	o.Walk(func(n *beacon.Node, depth int) {
		fmt.Printf("%s%s\n", strings.Repeat("  ", depth), n.Text)
	})
	return nil
}
