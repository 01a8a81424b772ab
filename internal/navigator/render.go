package navigator

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/domain"
)

// Direction of a navigation step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// ParseDirection accepts "next" and "prev" (or "previous").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		return Next, nil
	case "prev", "previous":
		return Previous, nil
	default:
		return 0, fmt.Errorf("parse direction: unknown direction %q", s)
	}
}

func (d Direction) String() string {
	if d == Previous {
		return "prev"
	}
	return "next"
}

// Control is one navigation button of a rendered popup.
// Invoke runs the callback captured at render time; a control from an
// earlier render no longer does anything.
type Control struct {
	ElementID string
	Label     string
	Direction Direction
	invoke    func()
}

func (c Control) Invoke() {
	if c.invoke != nil {
		c.invoke()
	}
}

// View is the output of one render: markup plus the controls bound to it.
type View struct {
	Key      string
	Index    int
	Total    int
	HTML     string
	Controls []Control
}

// Control looks up the control for dir.
func (v View) Control(dir Direction) (Control, bool) {
	for _, c := range v.Controls {
		if c.Direction == dir {
			return c, true
		}
	}
	return Control{}, false
}

var popupTemplate = template.Must(template.New("popup").Parse(
	`<h3>{{.Title}}</h3>` +
		`<p>{{.Description}}</p>` +
		`{{with .Link}}{{if .Embed}}` +
		`<iframe src="{{.URL}}" width="100%" height="200" frameborder="0" allow="fullscreen; picture-in-picture" allowfullscreen></iframe>` +
		`{{else}}<a href="{{.URL}}" target="_blank">{{.Label}}</a>{{end}}{{end}}` +
		`{{if .Controls}}<div>{{range .Controls}}<button id="{{.ElementID}}">{{.Label}}</button>{{end}}</div>{{end}}`,
))

type popupData struct {
	Title       string
	Description string
	Link        *domain.Link
	Controls    []Control
}

// Render produces the popup for group entry at cursor. Groups with more
// than one entry get previous/next controls calling onAdvance.
func Render(g *PopupGroup, cursor int, onAdvance func(Direction)) View {
	entry := g.entries[cursor]

	var controls []Control
	if g.Len() > 1 {
		controls = []Control{
			{ElementID: "prev-popup", Label: "Previous", Direction: Previous, invoke: func() { onAdvance(Previous) }},
			{ElementID: "next-popup", Label: "Next", Direction: Next, invoke: func() { onAdvance(Next) }},
		}
	}

	return View{
		Key:      g.key,
		Index:    cursor,
		Total:    g.Len(),
		HTML:     renderHTML(entry, controls),
		Controls: controls,
	}
}

// RenderEntry renders a single entry without controls.
func RenderEntry(entry domain.NarrativeEntry) string {
	return renderHTML(entry, nil)
}

func renderHTML(entry domain.NarrativeEntry, controls []Control) string {
	var b strings.Builder
	data := popupData{
		Title:       entry.Title,
		Description: entry.Description,
		Link:        entry.Link,
		Controls:    controls,
	}
	if err := popupTemplate.Execute(&b, data); err != nil {
		log.Error().Err(err).Str("title", entry.Title).Msg("render popup failed")
		return "<h3>" + template.HTMLEscapeString(entry.Title) + "</h3>"
	}
	return b.String()
}
