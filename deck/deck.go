// Package deck assembles slides of tables, charts, text and shapes and
// writes them out as a PowerPoint file through GoPPT. Content is staged on
// slide objects and rendered at write time, so conditional recoloring of a
// table applied after it is added still reaches the output.
package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"

	ppt "github.com/VantageDataChat/GoPPT"

	officegen "github.com/toddbenanzer/office-gen"
)

// Presentation accumulates slides and writes the final deck.
type Presentation struct {
	Title   string
	Creator string

	cfg    *officegen.Config
	slides []*Slide
}

// New creates an empty presentation. A nil config uses the defaults.
func New(cfg *officegen.Config) *Presentation {
	if cfg == nil {
		cfg = officegen.DefaultConfig()
	}
	return &Presentation{cfg: cfg}
}

// Config returns the presentation-level configuration.
func (p *Presentation) Config() *officegen.Config { return p.cfg }

// AddSlide appends a slide with its own configuration copy. An empty
// title suppresses the header.
func (p *Presentation) AddSlide(title string) *Slide {
	s := &Slide{Title: title, cfg: p.cfg.Clone()}
	p.slides = append(p.slides, s)
	return s
}

// Slides returns the slides added so far, in order.
func (p *Presentation) Slides() []*Slide { return p.slides }

// Bytes renders the deck to PPTX bytes.
func (p *Presentation) Bytes() ([]byte, error) {
	doc := ppt.New()
	props := doc.GetDocumentProperties()
	props.Title = p.Title
	props.Creator = p.Creator

	for i, s := range p.slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = doc.GetActiveSlide()
		} else {
			slide = doc.CreateSlide()
		}
		s.render(slide)
	}

	w, err := ppt.NewWriter(doc, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("create pptx writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write pptx: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the deck and writes it to w.
func (p *Presentation) Write(w io.Writer) error {
	b, err := p.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// SaveFile renders the deck to a file.
func (p *Presentation) SaveFile(path string) error {
	b, err := p.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
