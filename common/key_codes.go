package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA   = 65  // A key (ASCII)
	KeyD   = 68  // D key (ASCII)
	KeyP   = 80  // P key (ASCII)
	KeyEsc = 256 // Escape key (GLFW)
)

// Arrow keys drive carousel navigation.
const (
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
)
