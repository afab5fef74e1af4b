package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "visual", "ai")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry, in tick order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Force generators
	r.Register(SystemInfo{ID: "gravity", Name: "Gravity", Description: "Adds constant gravity acceleration", Category: "forces"})
	r.Register(SystemInfo{ID: "wind", Name: "Wind", Description: "Pushes bodies while wind is held", Category: "forces"})
	r.Register(SystemInfo{ID: "friction", Name: "Friction", Description: "Opposes motion on ground contact", Category: "forces"})
	r.Register(SystemInfo{ID: "drag", Name: "Drag", Description: "Quadratic air resistance", Category: "forces"})
	r.Register(SystemInfo{ID: "steering", Name: "Steering", Description: "Seekers chase the player", Category: "forces"})

	// Motion
	r.Register(SystemInfo{ID: "integrate", Name: "Integrate", Description: "Applies acceleration to velocity and position", Category: "motion"})
	r.Register(SystemInfo{ID: "boundary", Name: "Boundary", Description: "Reflects bodies off the floor and walls", Category: "motion"})

	// Internal
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Collects window stats", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
}

// ByCategory returns systems filtered by category, in registration order.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories in first-registered order.
func (r *SystemRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.systems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}
