package service

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Drink is the closed set of drinks the shop serves.
type Drink int

const (
	Americano Drink = iota + 1
	Espresso
	Cappuccino
)

// Name returns the display name of the drink.
func (d Drink) Name() string {
	switch d {
	case Americano:
		return "Americano"
	case Espresso:
		// Espresso: 7g (+/- 2g) of finely ground coffee, 30-45ml extracted under
		// 9 bar at 194-204F over 25s (+/- 5s). Flavor only; brew time below is game time.
		return "Espresso"
	case Cappuccino:
		return "Cappuccino"
	}
	return "Unknown"
}

// Order is what a customer asks for.
type Order struct {
	Type Drink  `json:"type"`
	Name string `json:"name"`
}

// OrderFor builds the order record for d.
func OrderFor(d Drink) Order {
	return Order{Type: d, Name: d.Name()}
}

// Customer is a queued request for a drink.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Wants Order     `json:"wants"`
}

// Timer tracks the brewing progress of a station.
type Timer struct {
	Active   bool          `json:"active"`
	Elapsed  time.Duration `json:"elapsed"`
	Duration time.Duration `json:"duration"`
}

// Progress returns the completed fraction in [0,1].
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	return min(max(p, 0), 1)
}

// Station is a fixed service point; station i sits on row i.
type Station struct {
	Name  string `json:"name"`
	Drink Drink  `json:"drink"`
	Timer Timer  `json:"timer"`
	Ready bool   `json:"ready"` // a filled cup waits on the counter
}

// Player is the barista.
type Player struct {
	Row          int  `json:"row"`
	IsActivating bool `json:"isActivating"`
}

// Screen describes the drawing surface in pixels.
type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// State is the whole game tree. It is treated as immutable: the reducer
// returns a modified copy and never writes through a received pointer.
type State struct {
	Player     Player     `json:"player"`
	Stations   []Station  `json:"stations"`
	Customers  []Customer `json:"customers"`
	Score      int        `json:"score"`
	Debug      bool       `json:"debug"`
	Screen     Screen     `json:"screen"`
	SpriteRows int        `json:"spriteRows"`
	SpriteCols int        `json:"spriteCols"`
	RNG        RNG        `json:"-"`
}

// Brew times per station, in game time.
const (
	americanoBrewTime  = 3 * time.Second
	espressoBrewTime   = 2 * time.Second
	cappuccinoBrewTime = 4 * time.Second
)

// DefaultStations returns the fixed station row, top to bottom.
func DefaultStations() []Station {
	return []Station{
		{Name: "Americano", Drink: Americano, Timer: Timer{Duration: americanoBrewTime}},
		{Name: "Espresso", Drink: Espresso, Timer: Timer{Duration: espressoBrewTime}},
		{Name: "Cappuccino", Drink: Cappuccino, Timer: Timer{Duration: cappuccinoBrewTime}},
	}
}

// InitialState builds the starting tree for a screen and sprite grid.
func InitialState(screen Screen, spriteRows, spriteCols int, rng RNG) *State {
	return &State{
		Stations:   DefaultStations(),
		Customers:  []Customer{},
		Screen:     screen,
		SpriteRows: spriteRows,
		SpriteCols: spriteCols,
		RNG:        rng,
	}
}

// clone returns a copy whose slices can be changed without touching s.
func (s *State) clone() *State {
	next := *s
	next.Stations = slices.Clone(s.Stations)
	next.Customers = slices.Clone(s.Customers)
	return &next
}

// StationAt returns the station on the player's row.
func (s *State) StationAt(row int) (Station, bool) {
	if row < 0 || row >= len(s.Stations) {
		return Station{}, false
	}
	return s.Stations[row], true
}
