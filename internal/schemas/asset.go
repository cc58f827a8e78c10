package schemas

var assetSchemas = map[string]CuratedSchema{
	"asset_create": {
		Description: "Create a new asset in the project. Supported types: Material, Script, Shader, ScriptableObject, AnimationClip, AnimatorController, and more.",
		Params: []Param{
			required("assetType", str("Type of asset: Material, Script, Shader, ScriptableObject, AnimationClip, AnimatorController, etc.")),
			required("name", str("Name of the new asset")),
			optional("template", str("Template or shader name (e.g. 'Standard' for materials)")),
			optional("destination", str("Folder path (default: 'Assets'). E.g. Assets/Materials")),
		},
	},

	"asset_delete": {
		Description: "Delete an asset from the project by its path.",
		Params: []Param{
			required("path", str("Asset path to delete (e.g. Assets/Materials/Wood.mat)")),
		},
		Annotations: destructive,
	},

	"asset_rename": {
		Description: "Rename an asset.",
		Params: []Param{
			required("currentPath", str("Current asset path (e.g. Assets/Materials/Old.mat)")),
			required("newName", str("New name for the asset (without extension)")),
		},
	},

	"asset_move": {
		Description: "Move an asset to a different folder.",
		Params: []Param{
			required("sourcePath", str("Current asset path (e.g. Assets/Materials/Wood.mat)")),
			required("destinationFolder", str("Target folder (e.g. Assets/NewFolder)")),
		},
	},

	"assets_list": {
		Description: "List assets in the project. Filter by type and/or folder. Returns name, path, and type for each asset.",
		Params: []Param{
			optional("type", str("Filter by asset type: Material, Texture2D, Prefab, Scene, Script, AudioClip, etc.")),
			optional("folder", str("Folder to search in (default: 'Assets'). E.g. Assets/Materials")),
		},
		Annotations: readOnly,
	},
}
