package config

// Load reads the global and local layers, merges them, and parses the
// result against root. Either layer may be absent. Errors from any stage
// propagate unchanged: the caller either gets a complete Config or the
// first failure, never both.
func Load(globalPath, localPath, root string) (*Config, error) {
	global, err := LoadRaw(globalPath)
	if err != nil {
		return nil, err
	}
	local, err := LoadRaw(localPath)
	if err != nil {
		return nil, err
	}
	return Parse(Merge(global, local), root)
}
