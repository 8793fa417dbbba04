// Package model holds the domain entities the console works with:
// usuarios (members with a role and a soft-delete flag) and células
// (weekly small-group meetings with a líder and an optional timoteo),
// plus the enumerations and the input validation for both.
//
// Types here mirror the backend's JSON contract field for field; the
// packages above build filtering, authorization, and rendering on top
// without redefining the shapes.
package model
