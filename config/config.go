package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termtiles/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds terminal palette indices (0-255) for the board and the
// six tile colors.
type ConfigColors struct {
	Red    int `json:"red"`
	Orange int `json:"orange"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
	Blue   int `json:"blue"`
	Purple int `json:"purple"`

	BoardColor    int `json:"board"`
	BoardColorAlt int `json:"board_alt"`
	EmptyColor    int `json:"empty"`
	CursorColorBG int `json:"cursor_bg"`
	StagedColorBG int `json:"staged_bg"`
	HandSlotBG    int `json:"hand_slot_bg"`
	SelectedBG    int `json:"selected_bg"`
}

// ConfigSymbols holds the runes drawn for the six tile shapes and for empty
// board cells.
type ConfigSymbols struct {
	Circle    rune `json:"circle"`
	Square    rune `json:"square"`
	Diamond   rune `json:"diamond"`
	Fourpoint rune `json:"fourpoint"`
	Clover    rune `json:"clover"`
	Asterisk  rune `json:"asterisk"`
	EmptyCell rune `json:"empty_cell"`
}

type Theme struct {
	DrawCheckerboard bool          `json:"draw_checkerboard"`
	Colors           ConfigColors  `json:"colors"`
	Symbols          ConfigSymbols `json:"symbols"`
}

type Config struct {
	Theme Theme `json:"theme"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	symbols := []rune{
		c.Theme.Symbols.Circle,
		c.Theme.Symbols.Square,
		c.Theme.Symbols.Diamond,
		c.Theme.Symbols.Fourpoint,
		c.Theme.Symbols.Clover,
		c.Theme.Symbols.Asterisk,
		c.Theme.Symbols.EmptyCell,
	}
	for _, r := range symbols {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
