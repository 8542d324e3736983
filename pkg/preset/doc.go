// Package preset loads reusable generation settings from YAML or TOML files.
//
// A preset can set any of the values the CLI would otherwise ask for:
//
//	name: vector3
//	components: XYZ
//	max_components: 3
//	template: 'public Vector{length}T<T> {elem} => new Vector{length}T<T>({params});\n'
//
// Presets are resolved by path, then by name in $XDG_CONFIG_HOME/swizgen/presets,
// then among the presets embedded in the binary.
package preset
