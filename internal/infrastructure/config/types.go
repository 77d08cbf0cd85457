package config

// NavConfig is the root config for worlds.json
type NavConfig struct {
	Starmap      string             `mapstructure:"starmap"`
	AssetsDir    string             `mapstructure:"assetsDir"`
	Worlds       []WorldConfig      `mapstructure:"worlds"`
	Transition   TransitionConfig   `mapstructure:"transition"`
	ReturnButton ReturnButtonConfig `mapstructure:"returnButton"`
	Display      DisplayConfig      `mapstructure:"display"`
}

// WorldConfig is one world and, unless it is the starmap, its region
type WorldConfig struct {
	ID     string        `mapstructure:"id"`
	Asset  string        `mapstructure:"asset"`  // Background image path under AssetsDir
	Region *RegionConfig `mapstructure:"region"` // nil for the starmap
}

// RegionConfig places a region in design-space coordinates
type RegionConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Radius float64 `mapstructure:"radius"`
	Color  string  `mapstructure:"color"` // Hex, e.g. "#ff0000"
	Alpha  float64 `mapstructure:"alpha"`
}

// TransitionConfig configures the warp flash
type TransitionConfig struct {
	FlashMs int    `mapstructure:"flashMs"` // Duration of each half of the flash
	Color   string `mapstructure:"color"`
}

// ReturnButtonConfig configures the "Return to Starmap" label
type ReturnButtonConfig struct {
	Label        string  `mapstructure:"label"`
	BottomOffset float64 `mapstructure:"bottomOffset"` // Distance from the bottom edge (pixels)
	FontSize     float64 `mapstructure:"fontSize"`
	Color        string  `mapstructure:"color"`
	Background   string  `mapstructure:"background"`
	PaddingX     float64 `mapstructure:"paddingX"`
	PaddingY     float64 `mapstructure:"paddingY"`
}

// DisplayConfig configures the initial window
type DisplayConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}
