package testutils

import "github.com/JacquesMo/PlayoffsFantasyHype/config"

// TestLeague returns a small league whose players appear in the fake tank01
// fixtures.
//
// Scored from the fixtures, Max has 53.42 in the Wild Card (Puka 25, Josh
// Allen 28.42, Nico no record) and Jacq/MG3 has 46.80 in the Divisional round
// (CMC 24, Kenneth 22.80, Saquon Barkley no record).
func TestLeague() *config.League {
	return &config.League{
		Name:       "Test League",
		Season:     "2025",
		SeasonType: "post",
		Rounds: []config.Round{
			{Name: "Wild Card", Week: 1},
			{Name: "Divisional", Week: 2},
			{Name: "Conference Championship", Week: 3},
			{Name: "Super Bowl", Week: 4},
		},
		Managers: []config.Manager{
			{Name: "Max", Players: []string{"Puka", "Josh Allen", "Nico"}},
			{Name: "Jacq/MG3", Players: []string{"CMC", "Saquon Barkley", "Kenneth"}},
		},
		Nicknames: map[string]string{
			"CMC":     "Christian McCaffrey",
			"Kenneth": "Kenneth Walker III",
			"Nico":    "Nico Collins",
			"Puka":    "Puka Nacua",
		},
		Eliminated: []string{"CAR", "JAX"},
	}
}
