package render

import (
	"go.uber.org/fx"

	"github.com/akalomiris/reportly/internal/config"
)

// Module wires the PDF renderer.
var Module = fx.Provide(newRenderer)

type rendererParams struct {
	fx.In

	Config *config.Config
}

func newRenderer(p rendererParams) (*Renderer, error) {
	return New(p.Config.DisplayLocation(), p.Config.PDFBinaryPath)
}
