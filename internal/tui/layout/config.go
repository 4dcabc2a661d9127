package layout

// Config holds all layout-related configuration values.
type Config struct {
	List ListConfig
	Text TextConfig
}

// ListConfig holds timeline list dimension configuration.
type ListConfig struct {
	// HeaderReduction is subtracted from terminal height for list content.
	// Accounts for: app padding (1) + title line (1) + status line (1) +
	// help bar (2) = 5.
	HeaderReduction int

	// SettingsPanelHeight is additionally subtracted while the settings
	// panel is open.
	SettingsPanelHeight int

	// MinHeight is the minimum visible list height.
	MinHeight int

	// ContentPadding is subtracted from terminal width for row rendering.
	ContentPadding int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		List: ListConfig{
			HeaderReduction:     5,
			SettingsPanelHeight: 7,
			MinHeight:           3,
			ContentPadding:      4,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
