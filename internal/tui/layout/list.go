package layout

// CalculateListHeight computes the visible row count for the timeline list.
func CalculateListHeight(terminalHeight int, settingsOpen bool, cfg ListConfig) int {
	height := terminalHeight - cfg.HeaderReduction
	if settingsOpen {
		height -= cfg.SettingsPanelHeight
	}
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateRowWidth computes the width available for row content.
func CalculateRowWidth(terminalWidth int, cfg ListConfig) int {
	return terminalWidth - cfg.ContentPadding
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
