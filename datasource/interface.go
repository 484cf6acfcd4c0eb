package datasource

// Query describes a single weather lookup
type Query struct {
	// Location is the free-text place name, e.g. "London" or "London,GB"
	Location string

	// Celsius requests metric units. When false no unit system is sent and the
	// provider's default applies.
	Celsius bool

	// Count limits the number of forecast entries. Zero leaves it to the provider.
	Count int
}
