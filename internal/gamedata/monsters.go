package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name, numbered per spawn
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex colour; empty means red
	ViewRange   int    `json:"viewRange"`   // Sight radius; 0 uses the configured default
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *MonsterDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the definition's colour, falling back to red.
func (d *MonsterDef) TCellColor() tcell.Color {
	if d.Color == "" {
		return tcell.ColorRed
	}
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorRed
	}
	return color
}

// Validate checks the fields the spawner depends on.
func (d *MonsterDef) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("monster definition missing id")
	}
	if d.Name == "" {
		return fmt.Errorf("monster %s: missing name", d.ID)
	}
	if d.SpawnWeight < 0 {
		return fmt.Errorf("monster %s: negative spawn weight %d", d.ID, d.SpawnWeight)
	}
	if d.ViewRange < 0 {
		return fmt.Errorf("monster %s: negative view range %d", d.ID, d.ViewRange)
	}
	return nil
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads and validates monster definitions from the embedded monsters.json.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Monsters {
		if err := file.Monsters[i].Validate(); err != nil {
			return nil, fmt.Errorf("monsters.json: %w", err)
		}
	}
	return file.Monsters, nil
}
