package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/models"
)

// Ensure StickFigure implements interfaces.LocalRenderer
var _ interfaces.LocalRenderer = (*StickFigure)(nil)

const (
	canvasSize = 400
	lineWidth  = 2
	fontPoints = 18
	lineHeight = 18

	headX, headY, headRadius = 200, 100, 40
	torsoTop, torsoBottom    = 140, 250
	torsoHalfWidth           = 20
	statsTop                 = 330
)

// StickFigure draws the profile as a 400x400 PNG without any remote dependency
type StickFigure struct {
	fontPath string
	logger   *zap.Logger

	fontOnce sync.Once
}

// NewStickFigure creates a renderer. fontPath is an optional TrueType font;
// the built-in face is used when it is empty or cannot be loaded.
func NewStickFigure(fontPath string, logger *zap.Logger) *StickFigure {
	return &StickFigure{
		fontPath: fontPath,
		logger:   logger,
	}
}

// Render draws the name, the figure and the four stat lines
func (s *StickFigure) Render(profile models.Profile) ([]byte, error) {
	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	s.applyFont(dc)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(lineWidth)

	dc.DrawStringAnchored(profile.Name, canvasSize/2, 16, 0.5, 0.5)

	// head and eyes
	dc.DrawCircle(headX, headY, headRadius)
	dc.Stroke()
	dc.DrawCircle(headX-15, headY-10, 5)
	dc.DrawCircle(headX+15, headY-10, 5)
	dc.Fill()

	// torso
	dc.DrawRectangle(headX-torsoHalfWidth, torsoTop, 2*torsoHalfWidth, torsoBottom-torsoTop)
	dc.Stroke()

	// arms
	dc.DrawLine(headX-torsoHalfWidth, torsoTop, headX-torsoHalfWidth-40, torsoTop+40)
	dc.DrawLine(headX+torsoHalfWidth, torsoTop, headX+torsoHalfWidth+40, torsoTop+40)

	// legs
	dc.DrawLine(headX, torsoBottom, headX-30, torsoBottom+70)
	dc.DrawLine(headX, torsoBottom, headX+30, torsoBottom+70)
	dc.Stroke()

	if profile.Length.Value > 0 {
		dc.DrawLine(headX, torsoBottom, headX, float64(torsoBottom+profile.Length.Value))
		dc.Stroke()
	}

	y := float64(statsTop)
	for _, line := range statLines(profile) {
		dc.DrawStringAnchored(line, 10, y, 0, 0.5)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *StickFigure) applyFont(dc *gg.Context) {
	if s.fontPath == "" {
		return
	}

	err := dc.LoadFontFace(s.fontPath, fontPoints)
	s.fontOnce.Do(func() {
		if err != nil {
			s.logger.Warn("Failed to load font, using built-in face", zap.String("path", s.fontPath), zap.Error(err))
		}
	})
}

func statLines(p models.Profile) []string {
	lines := make([]string, 0, len(models.AllKinds))
	for _, r := range p.Readings() {
		rng := r.Kind.Range()
		if rng.Unit == "" {
			lines = append(lines, fmt.Sprintf("%s: %d", rng.Label, r.Value))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s", rng.Label, r.Value, rng.Unit))
	}
	return lines
}
