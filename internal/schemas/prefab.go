package schemas

var prefabSchemas = map[string]CuratedSchema{
	"prefab_create": {
		Description: "Create a prefab asset from an existing scene GameObject. The prefab is saved as a .prefab file.",
		Params: []Param{
			required("name", str("Name of the scene GameObject to convert to prefab")),
			optional("path", withDefault(str("Folder to save the prefab in (default: 'Assets')"), "Assets")),
			optional("prefabName", str("Custom name for the prefab file (default: same as GameObject)")),
		},
	},

	"prefab_instantiate": {
		Description: "Instantiate a prefab in the current scene. Creates a prefab instance linked to the original asset.",
		Params: []Param{
			required("prefabPath", str("Asset path to the prefab (e.g. Assets/Prefabs/Tree.prefab)")),
			optional("name", str("Custom name for the instance")),
			optional("x", withDefault(num("X position"), 0)),
			optional("y", withDefault(num("Y position"), 0)),
			optional("z", withDefault(num("Z position"), 0)),
		},
	},

	"prefab_apply": {
		Description: "Apply all overrides from a prefab instance back to the original prefab asset.",
		Params: []Param{
			required("name", str("Name of the prefab instance in the scene")),
		},
	},

	"prefab_unpack": {
		Description: "Unpack a prefab instance, breaking the prefab link. Mode 'OutermostRoot' unpacks the top level, 'Completely' unpacks all nested prefabs.",
		Params: []Param{
			required("name", str("Name of the prefab instance to unpack")),
			optional("mode", withDefault(enum("Unpack depth: OutermostRoot or Completely", "OutermostRoot", "Completely"), "OutermostRoot")),
		},
	},
}
