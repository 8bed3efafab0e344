// Package render defines the seam between form models and the environments
// that drive them: a Renderer walks a form's pages against some surface (raw
// terminal, line prompts) and returns the aggregate result, and a Registry
// lets hosts pick renderers by name.
package render

import (
	"context"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

// Renderer drives one complete form run. Implementations own the screen
// loop; the form owns sequencing and aggregation. Render blocks until the
// form completes, the user cancels (ErrAborted), or the surface fails.
type Renderer interface {
	Name() string
	Render(ctx context.Context, form *forms.Form, options Options) (forms.ResultSet, error)
}
