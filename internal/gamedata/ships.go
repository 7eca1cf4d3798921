package gamedata

// ShipDef defines a ship class loaded from JSON.
type ShipDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "carrier")
	Name   string `json:"name"`   // Display name (e.g., "Carrier")
	Length int    `json:"length"` // Number of grid cells the ship occupies
}

// ShipsFile represents the structure of ships.json.
type ShipsFile struct {
	Ships []ShipDef `json:"ships"`
}

// LoadShips loads the fleet ship definitions from the embedded ships.json.
func LoadShips() ([]ShipDef, error) {
	file, err := Load[ShipsFile]("ships.json")
	if err != nil {
		return nil, err
	}
	return file.Ships, nil
}

// MustLoadShips loads ship definitions, panicking on error.
func MustLoadShips() []ShipDef {
	ships, err := LoadShips()
	if err != nil {
		panic(err)
	}
	return ships
}

// FleetCells returns the total number of grid cells a fleet occupies.
// This is the number of hits required to destroy a player.
func FleetCells(ships []ShipDef) int {
	total := 0
	for _, s := range ships {
		total += s.Length
	}
	return total
}
