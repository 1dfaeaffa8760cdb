// Command shapesdemo demonstrates the layout shape container.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/netshape"
	"github.com/gogpu/layout/shapes"
	"github.com/gogpu/layout/undo"
)

var (
	count   = flag.Int("shapes", 10000, "number of random boxes to insert")
	seed    = flag.Uint64("seed", 1, "random seed")
	extent  = flag.Int("extent", 100000, "placement area edge length")
	lang    = flag.String("lang", "en", "message language (en, de)")
	verbose = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid -lang %q: %v", *lang, err)
	}
	shapes.SetMessageLanguage(tag)

	m := undo.NewManager()
	s := shapes.New(shapes.WithManager(m))

	rng := rand.New(rand.NewPCG(*seed, 0))
	m.Transaction("insert boxes")
	for range *count {
		x := layout.Coord(rng.IntN(*extent))
		y := layout.Coord(rng.IntN(*extent))
		shapes.InsertWithProperties(s, layout.NewBox(x, y, x+100, y+100), shapes.PropertiesID(1+rng.IntN(4)))
	}
	m.Commit()
	s.Sort()
	log.Printf("Inserted %d boxes, bbox %v", s.Size(), s.BBox())

	probe := layout.NewBox(0, 0, layout.Coord(*extent/10), layout.Coord(*extent/10))
	log.Printf("Touching %v: %d, overlapping: %d", probe,
		countShapes(s.BeginTouching(probe, shapes.All)),
		countShapes(s.BeginOverlapping(probe, shapes.All)))

	m.Transaction("clear")
	s.Clear()
	m.Commit()
	log.Printf("After clear: %d shapes", s.Size())
	if !m.Undo() {
		log.Fatalf("Nothing to undo")
	}
	log.Printf("After undo of %q: %d shapes", m.RedoDescription(), s.Size())

	bulk := shapes.New(shapes.WithEditable(false))
	sh := shapes.Insert(bulk, layout.NewBox(0, 0, 10, 10))
	if err := bulk.Erase(sh); errors.Is(err, shapes.ErrNotEditable) {
		log.Printf("Bulk container: %v", err)
	} else {
		log.Fatalf("Erase on a bulk container returned %v", err)
	}

	repo := layout.NewShapeRepository()
	a := netshape.FromPolygon(layout.PolygonFromBox(layout.NewBox(10, 20, 100, 200)), repo)
	b := netshape.FromPolygon(layout.PolygonFromBox(layout.NewBox(10, 320, 100, 500)), repo)
	log.Printf("Net shapes interact: %v, displaced by (50,-200): %v",
		a.InteractsWith(b), a.InteractsWithTransformed(b, layout.Disp(layout.V(50, -200))))
}

func countShapes(it *shapes.ShapeIterator) int {
	defer it.Close()
	n := 0
	for ; !it.AtEnd(); it.Next() {
		n++
	}
	return n
}
