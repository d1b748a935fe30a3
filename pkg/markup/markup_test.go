package markup

import (
	"strings"
	"testing"
	"time"

	"github.com/Snider/rswait/pkg/mocks"
	"github.com/Snider/rswait/pkg/quotes"
	"github.com/Snider/rswait/pkg/rotator"
)

func TestFragment(t *testing.T) {
	d := Fragment()
	el, ok := d.Element("waitBox")
	if !ok {
		t.Fatal("shipped fragment has no waitBox")
	}
	if _, ok := el.Text(); !ok {
		t.Fatal("shipped fragment has no rs-wait-text child")
	}
	if got := d.Style("waitBox", "display"); got != "none" {
		t.Errorf("waitBox should start hidden, display = %q", got)
	}
}

func TestElement_Bad(t *testing.T) {
	d := Fragment()
	if _, ok := d.Element("missingBox"); ok {
		t.Error("expected no element for missingBox")
	}

	d, err := Parse(strings.NewReader(`<div id="bare"><span>no target</span></div>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	el, ok := d.Element("bare")
	if !ok {
		t.Fatal("expected bare container")
	}
	if _, ok := el.Text(); ok {
		t.Error("expected no text target in bare container")
	}
}

func TestElement_Mutations(t *testing.T) {
	d, err := Parse(strings.NewReader(`<section><div id="box" style="color: red; display: none"><p class="lead rs-wait-text">old <b>text</b></p></div></section>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	el, _ := d.Element("box")
	el.Show()
	if got := d.Style("box", "display"); got != "block" {
		t.Errorf("display = %q, want block", got)
	}
	if got := d.Style("box", "color"); got != "red" {
		t.Errorf("Show dropped other style declarations, color = %q", got)
	}

	target, _ := el.Text()
	target.SetOpacity(0)
	target.SetText("Nog heel even. Beloofd.")
	if got := d.TextOf("box"); got != "Nog heel even. Beloofd." {
		t.Errorf("TextOf = %q", got)
	}
	out := d.String()
	if !strings.Contains(out, `style="opacity:0"`) {
		t.Errorf("expected opacity style in %s", out)
	}
	target.SetOpacity(1)
	if out := d.String(); !strings.Contains(out, `style="opacity:1"`) || strings.Contains(out, "<b>") {
		t.Errorf("unexpected markup after swap: %s", out)
	}
}

func TestRender_EscapesText(t *testing.T) {
	d := Fragment()
	el, _ := d.Element("waitBox")
	target, _ := el.Text()
	target.SetText(`<script>alert("x")</script>`)
	if strings.Contains(d.String(), "<script>") {
		t.Error("quote text was not escaped")
	}
}

func TestRotator_WaitBox(t *testing.T) {
	d := Fragment()
	clk := mocks.NewClock()
	r := rotator.New(d, rotator.WithClock(clk), rotator.WithSeed(3))

	if !r.Start("waitBox", quotes.ProductDescription) {
		t.Fatal("Start could not find waitBox")
	}
	if got := d.Style("waitBox", "display"); got != "block" {
		t.Errorf("waitBox not shown, display = %q", got)
	}
	clk.Advance(rotator.DefaultFadeDelay)
	first := d.TextOf("waitBox")
	if first == "" {
		t.Fatal("no quote rendered")
	}
	pool := quotes.MustDefault().Resolve(quotes.ProductDescription)
	found := false
	for _, q := range pool {
		if q == first {
			found = true
		}
	}
	if !found {
		t.Errorf("rendered text %q is not in the catalog", first)
	}

	clk.Advance(rotator.DefaultInterval)
	second := d.TextOf("waitBox")
	if second == first {
		t.Error("quote did not change after one interval")
	}

	r.Stop()
	clk.Advance(10 * time.Second)
	if d.TextOf("waitBox") != second {
		t.Error("text changed after Stop")
	}
}
