// ABOUTME: Demo dataset seeding for the mock backend
// ABOUTME: Creates a small set of users and células for local development

package mockapi

import (
	"fmt"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// SeedDemo populates the server with a small dataset. The admin account
// is admin@unestilodevida.org with the given password; every other seed
// user shares it too.
func (s *Server) SeedDemo(clave string) error {
	if _, err := s.AddUsuario(model.Usuario{
		Nombre: "Rodrigo", Apellido: "Ramírez",
		Email: "admin@unestilodevida.org", Telefono: "2215550001",
		Rol: model.RolAdmin,
	}, clave); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	lider1, err := s.AddUsuario(model.Usuario{
		Nombre: "José", Apellido: "Pérez",
		Email: "jose.perez@example.com", Telefono: "2215550002",
		Rol: model.RolLider,
	}, clave)
	if err != nil {
		return fmt.Errorf("seeding líder: %w", err)
	}

	lider2, err := s.AddUsuario(model.Usuario{
		Nombre: "María", Apellido: "Gómez",
		Email: "maria.gomez@example.com", Telefono: "2215550003",
		Rol: model.RolLider,
	}, clave)
	if err != nil {
		return fmt.Errorf("seeding líder: %w", err)
	}

	timoteo, err := s.AddUsuario(model.Usuario{
		Nombre: "Ana", Apellido: "Núñez",
		Email: "ana.nunez@example.com", Telefono: "2215550004",
		Rol: model.RolTimoteo,
	}, clave)
	if err != nil {
		return fmt.Errorf("seeding timoteo: %w", err)
	}

	s.AddCelula(model.Celula{
		Nombre: "Jóvenes Centro", Dia: model.DiaJueves, Genero: model.GeneroHombre,
		HoraInicio: "19:30:00", Direccion: "Calle 50 n°1234, La Plata",
		Latitud: -34.9516, Longitud: -57.8912,
		Descripcion: "Célula de jóvenes en el centro",
		Lider:       lider1, Timoteo: timoteo,
	})
	s.AddCelula(model.Celula{
		Nombre: "Mujeres Oeste", Dia: model.DiaMartes, Genero: model.GeneroMujer,
		HoraInicio: "10:00:00", Direccion: "Av. 44 n°987, La Plata",
		Latitud: -34.9402, Longitud: -57.9712,
		Lider: lider2,
	})

	return nil
}
