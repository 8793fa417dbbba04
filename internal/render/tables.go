// ABOUTME: Tabular listings for usuarios and células using tabwriter
// ABOUTME: Color is applied per role and gender, rows keep backend order

package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	adminColor   = color.New(color.FgYellow)
	hombreColor  = color.New(color.FgBlue)
	mujerColor   = color.New(color.FgRed)
	dimmedColor  = color.New(color.Faint)
	accentColor  = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

// UsuariosTable writes one row per usuario in the order given.
// Usuarios dados de baja are dimmed and annotated with the baja date.
func UsuariosTable(w io.Writer, usuarios []model.Usuario) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerColor.Sprint("ID\tNOMBRE\tEMAIL\tTELEFONO\tROL\tESTADO"))
	for _, u := range usuarios {
		estado := accentColor.Sprint("activo")
		if !u.Activo() {
			estado = dimmedColor.Sprintf("baja %s", u.FechaBaja.Format("2006-01-02"))
		}
		rol := string(u.Rol)
		if u.Rol == model.RolAdmin {
			rol = adminColor.Sprint(rol)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.NombreCompleto(), u.Email, u.Telefono, rol, estado)
	}
	tw.Flush()
}

// CelulasTable writes one row per célula in the order given.
func CelulasTable(w io.Writer, celulas []model.Celula) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerColor.Sprint("ID\tNOMBRE\tDIA\tHORA\tGENERO\tLIDER\tTIMOTEO\tDIRECCION"))
	for _, c := range celulas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Nombre, c.Dia, c.Hora(), generoLabel(c.Genero),
			personName(c.Lider), personName(c.Timoteo), c.Direccion)
	}
	tw.Flush()
}

// StaleNotice warns that the listing below comes from the local
// snapshot because the backend could not be reached.
func StaleNotice(w io.Writer, fetchedAt time.Time) {
	warningColor.Fprintf(w, "Sin conexión con el servidor; mostrando datos del %s.\n",
		fetchedAt.Format("2006-01-02 15:04"))
}

func personName(u *model.Usuario) string {
	if u == nil {
		return dimmedColor.Sprint("-")
	}
	return u.NombreCompleto()
}

func generoLabel(g string) string {
	switch g {
	case model.GeneroHombre:
		return hombreColor.Sprint(g)
	case model.GeneroMujer:
		return mujerColor.Sprint(g)
	default:
		return g
	}
}
