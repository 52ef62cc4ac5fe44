package game

import (
	"errors"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/iburimskiy/circle-through-point/internal/config"
	"github.com/iburimskiy/circle-through-point/internal/control"
	"github.com/iburimskiy/circle-through-point/internal/plane"
)

type fakeDialogs struct {
	errors []string
	path   string
}

func (f *fakeDialogs) Error(msg string) error {
	f.errors = append(f.errors, msg)
	return nil
}

func (f *fakeDialogs) SavePath(string) (string, error) {
	return f.path, nil
}

func newTestGame(d dialogs) *game {
	log := slog.New(slog.DiscardHandler)
	g := &game{
		session: control.NewSession(plane.NewRenderer(), log),
		log:     log,
		dialogs: d,
		sound:   sound{log: log},
		width:   config.WindowWidth,
		height:  config.WindowHeight,
	}
	g.layoutControls()
	return g
}

func TestComputeAction(t *testing.T) {
	Convey("Given a window with fake dialogs", t, func() {
		d := &fakeDialogs{}
		g := newTestGame(d)

		Convey("Invalid input opens the error dialog and changes nothing", func() {
			g.session.SetText(control.FieldX, "abc")
			g.session.SetText(control.FieldY, "1")
			g.doCompute()
			So(d.errors, ShouldResemble, []string{"Enter integers!"})
			So(g.session.RadiusText(), ShouldEqual, "Radius: ")
			So(g.session.Renderer().Target().IsSet(), ShouldBeFalse)
		})

		Convey("Valid input sets the point without a dialog", func() {
			g.session.SetText(control.FieldX, "3")
			g.session.SetText(control.FieldY, "4")
			g.doCompute()
			So(d.errors, ShouldBeEmpty)
			So(g.session.AngleText(), ShouldEqual, "Angle: 53.13°")
		})

		Convey("Reset closes the dropdown", func() {
			g.density.open = true
			g.doReset()
			So(g.density.open, ShouldBeFalse)
		})
	})
}

func TestSnapshotAction(t *testing.T) {
	Convey("Saving a snapshot writes the canvas to the chosen path", t, func() {
		path := filepath.Join(t.TempDir(), "snap.png")
		g := newTestGame(&fakeDialogs{path: path})
		g.doSnapshot()
		So(g.lastErr, ShouldBeNil)
		_, err := os.Stat(path)
		So(err, ShouldBeNil)
	})

	Convey("A canceled dialog writes nothing", t, func() {
		g := newTestGame(&fakeDialogs{})
		g.doSnapshot()
		So(g.lastErr, ShouldBeNil)
	})
}

func TestViewport(t *testing.T) {
	g := newTestGame(&fakeDialogs{})
	if got := g.viewport(); got != (plane.Viewport{Width: config.CanvasWidth, Height: config.CanvasHeight}) {
		t.Errorf("viewport = %+v", got)
	}
	g.Layout(300, 50)
	if got := g.viewport(); got.Height != 1 || got.Width != 300 {
		t.Errorf("viewport after shrink = %+v", got)
	}
}

func TestButton(t *testing.T) {
	b := button{rect: image.Rect(10, 10, 50, 30)}

	if b.update(20, 20, true, false) {
		t.Fatal("press alone must not click")
	}
	if !b.pressed || !b.hovered {
		t.Fatal("button should be pressed and hovered")
	}
	if !b.update(20, 20, false, true) {
		t.Fatal("release over the button should click")
	}

	b.update(20, 20, true, false)
	if b.update(100, 100, false, true) {
		t.Fatal("release outside the button must not click")
	}
	if b.pressed {
		t.Fatal("release clears pressed")
	}
}

func TestDropdown(t *testing.T) {
	Convey("Given a closed density dropdown", t, func() {
		d := dropdown{rect: image.Rect(0, 0, 80, 20), options: plane.DensityLabels(), hover: -1}

		Convey("Clicking the box opens it", func() {
			choice, consumed := d.update(10, 10, true)
			So(choice, ShouldEqual, -1)
			So(consumed, ShouldBeTrue)
			So(d.open, ShouldBeTrue)

			Convey("Clicking the third option chooses 20x20", func() {
				choice, consumed := d.update(10, 20*3+5, true)
				So(consumed, ShouldBeTrue)
				So(choice, ShouldEqual, 2)
				So(d.options[choice], ShouldEqual, "20x20")
				So(d.open, ShouldBeFalse)
			})

			Convey("Clicking elsewhere closes it without a choice", func() {
				choice, consumed := d.update(300, 300, true)
				So(consumed, ShouldBeTrue)
				So(choice, ShouldEqual, -1)
				So(d.open, ShouldBeFalse)
			})
		})

		Convey("Clicks outside a closed dropdown pass through", func() {
			_, consumed := d.update(300, 300, true)
			So(consumed, ShouldBeFalse)
		})
	})
}

// fakeOutput records the calls made to the audio device.
type fakeOutput struct {
	initErr error
	calls   []string
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.calls = append(f.calls, "init")
	return f.initErr
}

func (f *fakeOutput) Clear() {
	f.calls = append(f.calls, "clear")
}

func (f *fakeOutput) Play(beep.Streamer) {
	f.calls = append(f.calls, "play")
}

func TestSoundEnabled(t *testing.T) {
	Convey("Given a window with sound on", t, func() {
		out := &fakeOutput{}
		g := newTestGame(&fakeDialogs{})
		g.sound = sound{enabled: true, out: out, log: g.log}

		Convey("The device is opened once and each sound clears then plays", func() {
			g.session.SetText(control.FieldX, "0")
			g.session.SetText(control.FieldY, "1")
			g.doCompute()
			g.doCompute()
			g.session.SetText(control.FieldX, "abc")
			g.doCompute()
			So(out.calls, ShouldResemble, []string{
				"init", "clear", "play",
				"clear", "play",
				"clear", "play",
			})
			So(g.sound.enabled, ShouldBeTrue)
		})

		Convey("A failed init turns sound off", func() {
			out.initErr = errors.New("no device")
			g.sound.confirm(90)
			g.sound.confirm(90)
			So(out.calls, ShouldResemble, []string{"init"})
			So(g.sound.enabled, ShouldBeFalse)
		})
	})

	Convey("Sound off never touches the device", t, func() {
		out := &fakeOutput{}
		s := sound{out: out, log: slog.New(slog.DiscardHandler)}
		s.confirm(45)
		s.reject()
		So(out.calls, ShouldBeEmpty)
	})
}

func TestLayoutFollowsWidth(t *testing.T) {
	Convey("The control row fits the minimum window width", t, func() {
		g := newTestGame(&fakeDialogs{})
		So(g.exit.rect.Max.X+config.Margin, ShouldBeLessThanOrEqualTo, config.MinWindowWidth)

		Convey("Result labels track a resized window", func() {
			g.Layout(1200, 900)
			So(g.angleRect.Max.X, ShouldEqual, 1200-config.Margin)
			g.Layout(config.MinWindowWidth, 900)
			So(g.angleRect.Max.X, ShouldEqual, config.MinWindowWidth-config.Margin)
			So(g.exit.rect.Max.X, ShouldBeLessThanOrEqualTo, config.MinWindowWidth)
		})
	})
}
