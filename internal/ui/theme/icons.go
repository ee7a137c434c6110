package theme

// Glyph returns the one-cell symbol drawn for a node icon name.
func Glyph(icon string) string {
	switch icon {
	case "server":
		return "▣"
	case "branch":
		return "⋔"
	case "boxes":
		return "▦"
	case "home":
		return "⌂"
	default:
		return "ℹ"
	}
}
