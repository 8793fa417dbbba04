// ABOUTME: Detail panel for a single célula, the console's side-panel view
// ABOUTME: Edit and delete affordances are flags decided by the caller

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// CelulaPanel writes the detail view for one célula. canEdit and
// canDelete come from the authorization policies; the panel only shows
// or hides the action hints.
func CelulaPanel(w io.Writer, c *model.Celula, canEdit, canDelete bool) {
	headerColor.Fprintf(w, "%s\n", c.Nombre)
	headerColor.Fprintf(w, "%s\n", strings.Repeat("-", len([]rune(c.Nombre))))

	fmt.Fprintf(w, "Día:        %s %s\n", c.Dia, c.Hora())
	fmt.Fprintf(w, "Género:     %s\n", generoLabel(c.Genero))
	fmt.Fprintf(w, "Dirección:  %s\n", c.Direccion)
	fmt.Fprintf(w, "Ubicación:  %.4f, %.4f\n", c.Latitud, c.Longitud)
	fmt.Fprintf(w, "Líder:      %s\n", personName(c.Lider))
	fmt.Fprintf(w, "Timoteo:    %s\n", personName(c.Timoteo))
	if c.Telefono != "" {
		fmt.Fprintf(w, "Teléfono:   %s\n", c.Telefono)
	}
	if c.EnlaceWhatsapp != "" {
		fmt.Fprintf(w, "WhatsApp:   %s\n", c.EnlaceWhatsapp)
	}
	if c.Descripcion != "" {
		fmt.Fprintf(w, "\n%s\n", c.Descripcion)
	}

	var actions []string
	if canEdit {
		actions = append(actions, "celulas update "+fmt.Sprint(c.ID))
	}
	if canDelete {
		actions = append(actions, "celulas delete "+fmt.Sprint(c.ID))
	}
	if len(actions) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", dimmedColor.Sprint("acciones:"), strings.Join(actions, ", "))
	}
}
