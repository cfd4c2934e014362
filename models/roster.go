// File: models/roster.go
package models

// RosterSize is the fixed number of entrants; the schedule table and the bracket depend on it.
const RosterSize = 7

// DefaultRoster returns a fresh copy of the static roster every tournament starts from.
func DefaultRoster() []Competitor {
	return []Competitor{
		{ID: 1, Name: "Thiago Santamarina", Avatar: "img/Thiago.jpg", Country: "Argentina", Style: "Estratégico"},
		{ID: 2, Name: "Gonzalo Campos", Avatar: "img/Gonzalo.jpg", Country: "Argentina", Style: "Ofensivo"},
		{ID: 3, Name: "Joaquin Riedel", Avatar: "img/Joaquin.jpg", Country: "Argentina", Style: "Veloz"},
		{ID: 4, Name: "Augusto Turner", Avatar: "img/Augusto.jpg", Country: "Argentina", Style: "Preciso"},
		{ID: 5, Name: "Melody Bosio", Avatar: "img/Melody.jpg", Country: "Argentina", Style: "Técnico"},
		{ID: 6, Name: "Zoe Billar", Avatar: "img/Zoe.jpg", Country: "Argentina", Style: "Defensivo"},
		{ID: 7, Name: "Vienni", Avatar: "img/vienni.jpg", Country: "Argentina", Style: "Potente"},
	}
}
