//go:build purego

package vecmath

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/sabourke/difmap-sub005/internal/vecmath/arch/generic"
	// Import registry package
	_ "github.com/sabourke/difmap-sub005/internal/vecmath/registry"
)
