package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCheckerboard: true,
		Colors: ConfigColors{
			Red:    196,
			Orange: 208,
			Yellow: 220,
			Green:  40,
			Blue:   33,
			Purple: 129,

			BoardColor:    235,
			BoardColorAlt: 236,
			EmptyColor:    240,
			CursorColorBG: 24,
			StagedColorBG: 22,
			HandSlotBG:    237,
			SelectedBG:    28,
		},
		Symbols: ConfigSymbols{
			Circle:    '●',
			Square:    '■',
			Diamond:   '◆',
			Fourpoint: '✦',
			Clover:    '✚',
			Asterisk:  '✳',
			EmptyCell: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
	}
}
