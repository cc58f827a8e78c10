package schemas

import "github.com/google/jsonschema-go/jsonschema"

func sceneMode() *jsonschema.Schema {
	return withDefault(enum("Single replaces current scene, Additive loads alongside", "Single", "Additive"), "Single")
}

var sceneSchemas = map[string]CuratedSchema{
	"scene_active": {
		Description: "Get information about the currently active scene: name, path, build index, dirty state, root object count.",
		Annotations: readOnly,
	},

	"scene_create": {
		Description: "Create a new empty scene. Mode 'Single' replaces current scene, 'Additive' adds alongside existing scenes.",
		Params: []Param{
			optional("name", str("Scene name (default: 'New Scene')")),
			optional("mode", sceneMode()),
		},
	},

	"scene_open": {
		Description: "Open/load an existing scene by its asset path (e.g. 'Assets/Scenes/Main.unity').",
		Params: []Param{
			required("path", str("Scene asset path (e.g. Assets/Scenes/Main.unity)")),
			optional("mode", sceneMode()),
		},
	},

	"scene_save": {
		Description: "Save the active scene. Optionally specify a new path to 'Save As'.",
		Params: []Param{
			optional("path", str("Path to save to (omit to save in place). E.g. Assets/Scenes/Level1.unity")),
		},
	},

	"scene_close": {
		Description: "Close a scene. Optionally save before closing.",
		Params: []Param{
			optional("path", str("Scene path to close (omit for active scene)")),
			optional("save", withDefault(str("'true' to save before closing, 'false' to discard changes"), "true")),
		},
	},

	"scene_loaded": {
		Description: "List all currently loaded scenes with their name, path, dirty state, and which is active.",
		Annotations: readOnly,
	},

	"scene_setactive": {
		Description: "Set a loaded scene as the active scene.",
		Params: []Param{
			required("path", str("Path of the loaded scene to set as active")),
		},
	},
}
