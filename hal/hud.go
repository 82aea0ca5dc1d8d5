package hal

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudBG = color.RGBA{R: 0, G: 0, B: 0, A: 0xb0}
	hudFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

const (
	hudLineHeight = 11
	hudBaseline   = 8
	hudPad        = 3
)

// hud draws a few lines of status text into a small RGBA overlay.
type hud struct {
	font tinyfont.Fonter
	img  *image.RGBA
}

func newHUD(width, lines int) *hud {
	h := lines*hudLineHeight + 2*hudPad
	return &hud{
		font: &proggy.TinySZ8pt7b,
		img:  image.NewRGBA(image.Rect(0, 0, width, h)),
	}
}

// hudLines formats the status shown for f.
func hudLines(f Frame, fps float64) []string {
	st := f.State
	return []string{
		fmt.Sprintf("x [%.6g, %.6g]", st.View.Xmin, st.View.Xmax),
		fmt.Sprintf("y [%.6g, %.6g]", st.View.Ymin, st.View.Ymax),
		fmt.Sprintf("zoom %s x%.4f speed %.4f", st.Direction, st.ZoomFactor, st.Speed),
		fmt.Sprintf("%s render %s %.1f fps", st.Res, f.Render.Round(100*time.Microsecond), fps),
	}
}

func (h *hud) draw(lines []string) *image.RGBA {
	d := rgbaDisplay{img: h.img}
	b := h.img.Bounds()
	d.fill(b, hudBG)
	for i, line := range lines {
		y := hudPad + hudBaseline + i*hudLineHeight
		if y > b.Dy() {
			break
		}
		tinyfont.WriteLine(d, h.font, hudPad, int16(y), line, hudFG)
	}
	return h.img
}

// rgbaDisplay lets tinyfont draw into an image.RGBA.
type rgbaDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = rgbaDisplay{}

func (d rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d rgbaDisplay) Display() error { return nil }

// fill paints r, clipped to the image.
func (d rgbaDisplay) fill(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(d.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d.img.SetRGBA(px, py, c)
		}
	}
}
