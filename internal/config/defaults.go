package config

const (
	defaultProjectDir      = "~/montage/projects"
	defaultLogDir          = "~/.local/share/montage/logs"
	defaultAPIBind         = "127.0.0.1:7823"
	defaultPixelsPerSecond = 10.0
	defaultMinZoom         = 0.25
	defaultMaxZoom         = 4.0
	defaultMinItemWidth    = 20.0
	defaultOverscanItems   = 3
	defaultHistoryEntries  = 200
	defaultRequestTimeout  = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

func defaultLanes() []Lane {
	return []Lane{
		{Index: 0, Name: "Code", Kind: "code", Color: "#4c9aff"},
		{Index: 1, Name: "Video", Kind: "video", Color: "#ff8b00"},
		{Index: 2, Name: "Narration", Kind: "audio", Color: "#36b37e"},
		{Index: 3, Name: "Titles", Kind: "title", Color: "#998dd9"},
		{Index: 4, Name: "Overlays", Kind: "visual-asset", Color: "#ff5630"},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir: defaultProjectDir,
			LogDir:     defaultLogDir,
			APIBind:    defaultAPIBind,
		},
		Timeline: Timeline{
			PixelsPerSecond: defaultPixelsPerSecond,
			MinZoom:         defaultMinZoom,
			MaxZoom:         defaultMaxZoom,
			MinItemWidth:    defaultMinItemWidth,
			OverscanItems:   defaultOverscanItems,
		},
		History: History{
			MaxEntries: defaultHistoryEntries,
		},
		Tracks: Tracks{
			Lanes: defaultLanes(),
		},
		Notifications: Notifications{
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
