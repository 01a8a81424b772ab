package navigator

import (
	"errors"
	"strings"
	"testing"

	"github.com/maxvelasco/portuguese-map/internal/domain"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

type fakePopup struct {
	handlers map[string][]func()
	open     bool
}

func (p *fakePopup) On(event string, handler func()) {
	p.handlers[event] = append(p.handlers[event], handler)
}

func (p *fakePopup) IsOpen() bool { return p.open }

func (p *fakePopup) close() {
	p.open = false
	for _, h := range p.handlers[ports.PopupClose] {
		h()
	}
}

type fakeMarker struct {
	id      string
	coords  domain.Coordinates
	html    string
	sets    int
	onClick []func()
	popup   *fakePopup
}

func newFakeMarker(id string, c domain.Coordinates) *fakeMarker {
	return &fakeMarker{id: id, coords: c, popup: &fakePopup{handlers: map[string][]func(){}}}
}

func (m *fakeMarker) ID() string                      { return m.id }
func (m *fakeMarker) Coordinates() domain.Coordinates { return m.coords }
func (m *fakeMarker) SetPopupContent(html string)     { m.html = html; m.sets++ }
func (m *fakeMarker) OnClick(handler func())          { m.onClick = append(m.onClick, handler) }
func (m *fakeMarker) Popup() ports.PopupHandle        { return m.popup }

func (m *fakeMarker) click() {
	for _, h := range m.onClick {
		h()
	}
	m.popup.open = true
}

var rio = domain.Coordinates{Lon: -43.21043, Lat: -22.90947}

func entryAt(title string, c domain.Coordinates) domain.NarrativeEntry {
	cc := c
	return domain.NarrativeEntry{Title: title, Description: title + " description", Coordinates: &cc}
}

// setup registers titles at rio and binds one marker there.
func setup(t *testing.T, titles ...string) (*Navigator, *MarkerBinding, *fakeMarker) {
	t.Helper()
	nav := New(NewPopupGroupStore())
	for _, title := range titles {
		if _, err := nav.RegisterEntry(entryAt(title, rio)); err != nil {
			t.Fatalf("register %q: %v", title, err)
		}
	}
	m := newFakeMarker("m1", rio)
	b := nav.BindMarkerInteraction(m, rio)
	return nav, b, m
}

func titleOf(v View) string {
	start := strings.Index(v.HTML, "<h3>")
	end := strings.Index(v.HTML, "</h3>")
	if start < 0 || end < 0 {
		return ""
	}
	return v.HTML[start+4 : end]
}

func TestNavigatorCyclesThroughGroup(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C")

	v, ok := nav.Open(b)
	if !ok {
		t.Fatal("open returned false")
	}
	if titleOf(v) != "A" || b.Index() != 0 {
		t.Fatalf("open rendered %q at %d, want A at 0", titleOf(v), b.Index())
	}

	want := []string{"B", "C", "A"}
	for i, w := range want {
		v, _ = nav.Advance(b, Next)
		if titleOf(v) != w {
			t.Fatalf("advance #%d rendered %q, want %q", i+1, titleOf(v), w)
		}
	}
}

func TestNavigatorAdvanceBackwardWraps(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C")
	nav.Open(b)

	v, _ := nav.Advance(b, Previous)
	if b.Index() != 2 || titleOf(v) != "C" {
		t.Fatalf("prev from 0 landed on %d (%q), want 2 (C)", b.Index(), titleOf(v))
	}
}

func TestNavigatorFullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		titles := make([]string, n)
		for i := range titles {
			titles[i] = string(rune('A' + i))
		}
		nav, b, _ := setup(t, titles...)
		nav.Open(b)
		nav.Advance(b, Next)
		start := b.Index()

		for i := 0; i < n; i++ {
			nav.Advance(b, Next)
		}
		if b.Index() != start {
			t.Fatalf("n=%d: cursor = %d after full cycle, want %d", n, b.Index(), start)
		}
		if b.Index() < 0 || b.Index() >= n {
			t.Fatalf("n=%d: cursor %d out of range", n, b.Index())
		}
	}
}

func TestNavigatorNextThenPrevIsIdentity(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C", "D")
	nav.Open(b)
	nav.Advance(b, Next)
	before := b.View().HTML

	nav.Advance(b, Next)
	v, _ := nav.Advance(b, Previous)

	if v.HTML != before {
		t.Fatalf("next+prev changed content:\n got %s\nwant %s", v.HTML, before)
	}
}

func TestNavigatorSingleEntryHasNoControls(t *testing.T) {
	nav, b, m := setup(t, "D")

	v, _ := nav.Open(b)
	if len(v.Controls) != 0 {
		t.Fatalf("expected no controls, got %d", len(v.Controls))
	}
	if strings.Contains(v.HTML, "<button") {
		t.Fatalf("single entry popup contains buttons: %s", v.HTML)
	}

	for _, dir := range []Direction{Next, Previous} {
		got, _ := nav.Advance(b, dir)
		if b.Index() != 0 || got.HTML != v.HTML {
			t.Fatalf("advance %v on single entry changed state: index=%d", dir, b.Index())
		}
	}
	if m.html != v.HTML {
		t.Fatalf("marker content changed on single entry advance")
	}
}

func TestNavigatorMultiEntryHasControls(t *testing.T) {
	nav, b, _ := setup(t, "A", "B")
	v, _ := nav.Open(b)

	if _, ok := v.Control(Next); !ok {
		t.Fatal("missing next control")
	}
	if _, ok := v.Control(Previous); !ok {
		t.Fatal("missing prev control")
	}
	if !strings.Contains(v.HTML, `id="next-popup"`) || !strings.Contains(v.HTML, `id="prev-popup"`) {
		t.Fatalf("controls missing from markup: %s", v.HTML)
	}
}

func TestNavigatorReopenIsIdentical(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C")

	first, _ := nav.Open(b)
	nav.Close(b)
	second, _ := nav.Open(b)

	if first.HTML != second.HTML {
		t.Fatalf("reopen differs:\n got %s\nwant %s", second.HTML, first.HTML)
	}
}

func TestNavigatorCursorSurvivesClose(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C")
	nav.Open(b)
	nav.Advance(b, Next)
	nav.Close(b)

	v, _ := nav.Open(b)
	if titleOf(v) != "B" {
		t.Fatalf("reopen rendered %q, want B (persisted cursor)", titleOf(v))
	}
}

func TestNavigatorControlsDriveAdvance(t *testing.T) {
	nav, b, m := setup(t, "A", "B", "C")
	v, _ := nav.Open(b)

	next, _ := v.Control(Next)
	next.Invoke()
	if b.Index() != 1 || titleOf(b.View()) != "B" {
		t.Fatalf("next control landed on %d", b.Index())
	}
	if m.html != b.View().HTML {
		t.Fatal("marker content not updated by control")
	}

	prev, _ := b.View().Control(Previous)
	prev.Invoke()
	if b.Index() != 0 {
		t.Fatalf("prev control landed on %d, want 0", b.Index())
	}
}

func TestNavigatorStaleControlIsInert(t *testing.T) {
	nav, b, _ := setup(t, "A", "B", "C")
	v, _ := nav.Open(b)
	stale, _ := v.Control(Next)

	nav.Advance(b, Next)
	stale.Invoke()
	if b.Index() != 1 {
		t.Fatalf("stale control moved cursor to %d", b.Index())
	}

	current, _ := b.View().Control(Next)
	nav.Close(b)
	current.Invoke()
	if got := nav.Store().groups[b.Key()].Cursor(); got != 1 {
		t.Fatalf("control fired after close, cursor = %d", got)
	}
}

func TestNavigatorCloseIsIdempotent(t *testing.T) {
	nav, b, _ := setup(t, "A", "B")
	nav.Open(b)

	nav.Close(b)
	nav.Close(b)
	if b.State() != Closed {
		t.Fatalf("state = %v, want closed", b.State())
	}

	if _, ok := nav.Advance(b, Next); ok {
		t.Fatal("advance on closed popup should be a no-op")
	}
}

func TestNavigatorOpenUnknownKeyIsNoop(t *testing.T) {
	nav := New(NewPopupGroupStore())
	m := newFakeMarker("lonely", rio)
	b := nav.BindMarkerInteraction(m, rio)

	if _, ok := nav.Open(b); ok {
		t.Fatal("open on empty key should be a no-op")
	}
	if m.sets != 0 || b.State() != Closed {
		t.Fatalf("no-op open touched marker: sets=%d state=%v", m.sets, b.State())
	}
}

func TestNavigatorMarkerEventsAreWired(t *testing.T) {
	_, b, m := setup(t, "A", "B")

	m.click()
	if b.State() != Open || !strings.Contains(m.html, "A") {
		t.Fatalf("click did not open popup: state=%v html=%s", b.State(), m.html)
	}

	m.popup.close()
	if b.State() != Closed {
		t.Fatalf("popup close event did not close binding: %v", b.State())
	}
}

func TestNavigatorRegisterAfterOpenKeepsCursor(t *testing.T) {
	nav, b, _ := setup(t, "A", "B")
	nav.Open(b)
	nav.Advance(b, Next)

	if _, err := nav.RegisterEntry(entryAt("C", rio)); err != nil {
		t.Fatal(err)
	}
	if b.Index() != 1 || nav.Store().groups[b.Key()].Cursor() != 1 {
		t.Fatalf("register reset cursor to %d", b.Index())
	}

	v, _ := nav.Advance(b, Next)
	if titleOf(v) != "C" {
		t.Fatalf("new entry not reachable, got %q", titleOf(v))
	}
}

func TestRegisterRejectsMissingCoordinates(t *testing.T) {
	s := NewPopupGroupStore()

	_, err := s.Register(domain.NarrativeEntry{Title: "nowhere"})
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("err = %v, want ErrInvalidCoordinates", err)
	}
	if s.Len() != 0 {
		t.Fatalf("group created for invalid entry")
	}
}

func TestRegisterSameCoordinatesShareGroup(t *testing.T) {
	s := NewPopupGroupStore()
	k1, _ := s.Register(entryAt("one", domain.Coordinates{Lon: -43.21043, Lat: -22.90947}))
	k2, _ := s.Register(entryAt("two", domain.Coordinates{Lon: -43.21043, Lat: -22.90947}))

	if k1 != k2 {
		t.Fatalf("keys differ: %q vs %q", k1, k2)
	}
	g, ok := s.Group(k1)
	if !ok || g.Len() != 2 {
		t.Fatalf("expected one group with 2 entries, got ok=%v", ok)
	}
}

func TestRenderEscapesText(t *testing.T) {
	e := entryAt(`<script>alert("x")</script>`, rio)
	e.Description = `Onça & "amigos"`
	e.Link = domain.NewLink("javascript:alert(1)", "", false)

	html := RenderEntry(e)

	if strings.Contains(html, "<script>") {
		t.Fatalf("title not escaped: %s", html)
	}
	if !strings.Contains(html, "Onça &amp; &#34;amigos&#34;") {
		t.Fatalf("description not escaped as expected: %s", html)
	}
	if strings.Contains(html, "javascript:") {
		t.Fatalf("unsafe url kept: %s", html)
	}
}

func TestRenderLinkVariants(t *testing.T) {
	e := entryAt("video", rio)
	e.Link = domain.NewLink("https://player.vimeo.com/video/486936176", "", true)
	if html := RenderEntry(e); !strings.Contains(html, `<iframe src="https://player.vimeo.com/video/486936176"`) {
		t.Fatalf("embed link not rendered as iframe: %s", html)
	}

	e.Link = domain.NewLink("https://example.org/watch", "", false)
	html := RenderEntry(e)
	if !strings.Contains(html, `<a href="https://example.org/watch" target="_blank">Ver mais</a>`) {
		t.Fatalf("plain link not rendered as anchor: %s", html)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"next": Next, "prev": Previous, "Previous": Previous} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestNavigatorSharedCursorAcrossMarkers(t *testing.T) {
	nav, first, _ := setup(t, "A", "B", "C")
	other := nav.BindMarkerInteraction(newFakeMarker("m2", rio), rio)

	nav.Open(first)
	nav.Open(other)
	nav.Advance(first, Next)

	if first.Index() != 1 {
		t.Fatalf("advancing marker shows %d, want 1", first.Index())
	}
	if other.Index() != 0 || titleOf(other.View()) != "A" {
		t.Fatalf("second marker index = %d (%q), want its own last render 0 (A)", other.Index(), titleOf(other.View()))
	}

	v, _ := nav.Open(other)
	if other.Index() != 1 || titleOf(v) != "B" {
		t.Fatalf("re-open shows %d (%q), want shared cursor 1 (B)", other.Index(), titleOf(v))
	}
}

func TestNavigatorIndexZeroWhileClosed(t *testing.T) {
	nav, b, _ := setup(t, "A", "B")
	nav.Open(b)
	nav.Advance(b, Next)
	nav.Close(b)

	if b.Index() != 0 {
		t.Fatalf("closed binding index = %d, want 0", b.Index())
	}
	if nav.Store().groups[b.Key()].Cursor() != 1 {
		t.Fatal("close must not move the group cursor")
	}
}
