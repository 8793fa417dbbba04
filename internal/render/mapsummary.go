// ABOUTME: Textual map summary grouping células by weekday with gendered counts
// ABOUTME: The map view's clustering logic without the tile layer

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// MapSummary writes the filtered células grouped by weekday in calendar
// order, with per-gender counts colored the way the map colors its
// markers. Days without células are omitted.
func MapSummary(w io.Writer, celulas []model.Celula) {
	byDia := make(map[string][]model.Celula)
	for _, c := range celulas {
		dia := strings.ToUpper(c.Dia)
		byDia[dia] = append(byDia[dia], c)
	}

	total := 0
	for _, dia := range model.Dias() {
		group := byDia[dia]
		if len(group) == 0 {
			continue
		}
		total += len(group)

		hombres, mujeres := 0, 0
		for _, c := range group {
			switch strings.ToUpper(c.Genero) {
			case model.GeneroHombre:
				hombres++
			case model.GeneroMujer:
				mujeres++
			}
		}

		headerColor.Fprintf(w, "%s", dia)
		fmt.Fprintf(w, " (%d)", len(group))
		if hombres > 0 {
			fmt.Fprintf(w, "  %s %d", hombreColor.Sprint("hombres"), hombres)
		}
		if mujeres > 0 {
			fmt.Fprintf(w, "  %s %d", mujerColor.Sprint("mujeres"), mujeres)
		}
		fmt.Fprintln(w)

		for _, c := range group {
			fmt.Fprintf(w, "  %s %s  %s (%.4f, %.4f)\n",
				c.Hora(), c.Nombre, c.Direccion, c.Latitud, c.Longitud)
		}
	}

	if total == 0 {
		fmt.Fprintln(w, dimmedColor.Sprint("No hay células para los filtros aplicados."))
		return
	}
	fmt.Fprintf(w, "\n%d células\n", total)
}
