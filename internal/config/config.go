// Package config provides YAML-based configuration for the terminal game.
// Board size and mine count are fixed and deliberately absent.
package config

// Config is the full set of user settings.
type Config struct {
	Seed   uint64    `yaml:"seed"`   // 0 = random based on time
	Verify bool      `yaml:"verify"` // check every generated board, panic on failure
	Sound  bool      `yaml:"sound"`  // ring the terminal bell on a mine
	Log    LogConfig `yaml:"log"`
	Theme  Theme     `yaml:"theme"`
}

// LogConfig controls where engine and UI logs go. The terminal belongs to
// the game, so logs only ever go to a file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // empty discards logs
}

// Theme holds the glyphs and colours used to draw the board.
type Theme struct {
	Hidden  string   `yaml:"hidden"`
	Flag    string   `yaml:"flag"`
	Mine    string   `yaml:"mine"`
	Empty   string   `yaml:"empty"`
	Cursor  string   `yaml:"cursor"`  // lipgloss colour for the cursor background
	Numbers []string `yaml:"numbers"` // lipgloss colours for counts 1 to 8
}

// NumberColor returns the colour for count n, falling back to the last
// configured colour when the list is short.
func (t Theme) NumberColor(n int) string {
	if len(t.Numbers) == 0 || n < 1 {
		return ""
	}
	if n > len(t.Numbers) {
		return t.Numbers[len(t.Numbers)-1]
	}
	return t.Numbers[n-1]
}
