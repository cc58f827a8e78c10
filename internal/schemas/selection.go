package schemas

var selectionSchemas = map[string]CuratedSchema{
	"selection_get": {
		Description: "Get the current editor selection: active GameObject, active object, and all selected objects with their types.",
		Annotations: readOnly,
	},

	"selection_set": {
		Description: "Select a GameObject by name in the editor. Optionally add to existing selection.",
		Params: []Param{
			required("name", str("Name of the GameObject to select")),
			optional("addToSelection", withDefault(str("'true' to add to current selection, 'false' to replace"), "false")),
		},
	},

	"selection_asset": {
		Description: "Select and ping an asset in the Project window by its path.",
		Params: []Param{
			required("path", str("Asset path to select (e.g. Assets/Materials/Wood.mat)")),
		},
	},

	"selection_clear": {
		Description: "Clear the current editor selection.",
	},

	"selection_focus": {
		Description: "Focus the Scene View camera on the currently selected GameObject (equivalent to pressing F).",
	},
}
