package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowCandidates:           false,
		ShowLegalMoves:           true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			MarkerColor:       65,
			LegalColor:        214,
			CursorColorFG:     0,
			CursorColorBG:     4,
			LastPlayedColorBG: 3,
		},
		Symbols: ConfigSymbols{
			BlackDisc: '●',
			WhiteDisc: '○',
			Empty:     '·',
			Candidate: '∙',
			Legal:     '•',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: "info",
			File:  "debug.log",
		},
	}
}
