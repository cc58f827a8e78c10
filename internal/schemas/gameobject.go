package schemas

var gameobjectSchemas = map[string]CuratedSchema{
	"gameobject_create": {
		Description: "Create a new GameObject in the active Unity scene. Can create primitives (Cube, Sphere, Capsule, Cylinder, Plane, Quad) or empty GameObjects. Supports setting initial transform and parent.",
		Params: []Param{
			required("name", str("Name of the new GameObject")),
			optional("type", str("Primitive type: Cube, Sphere, Capsule, Cylinder, Plane, Quad. Omit for empty GameObject")),
			optional("position", vector3("Initial world position")),
			optional("rotation", vector3("Initial rotation in euler angles")),
			optional("scale", vector3("Initial local scale")),
			optional("parentName", str("Name of an existing GameObject to set as parent")),
		},
		Annotations: Annotations{Destructive: hint(false), Idempotent: hint(false)},
	},

	"gameobject_delete": {
		Description: "Delete a GameObject from the scene by name. The object and all its children will be destroyed.",
		Params: []Param{
			required("name", str("Name of the GameObject to delete")),
		},
		Annotations: destructive,
	},

	"gameobject_transform": {
		Description: "Set the transform (position, rotation, scale) of a GameObject. Only provided fields are modified.",
		Params: []Param{
			required("name", str("Name of the target GameObject")),
			optional("position", vector3("New world position")),
			optional("rotation", vector3("New rotation in euler angles")),
			optional("scale", vector3("New local scale")),
		},
		Annotations: idempotent,
	},

	"gameobject_list": {
		Description: "List all root GameObjects in the active scene with a 2-level hierarchy (root objects and their direct children). Returns name, active state, tag, layer, and child count.",
		Annotations: readOnly,
	},

	"gameobject_clone": {
		Description: "Duplicate/clone a GameObject. The clone appears at the same position as the original.",
		Params: []Param{
			required("name", str("Name of the GameObject to clone")),
			optional("newName", str("Name for the cloned object (default: '<name> (Clone)')")),
		},
	},

	"gameobject_active": {
		Description: "Enable or disable a GameObject (set active/inactive).",
		Params: []Param{
			required("name", str("Name of the GameObject")),
			optional("active", withDefault(boolean("true to enable, false to disable"), true)),
		},
		Annotations: idempotent,
	},

	"gameobject_component_add": {
		Description: "Add a component to a GameObject. Use Unity component type names like Rigidbody, BoxCollider, AudioSource, Light, etc.",
		Params: []Param{
			required("gameObjectName", str("Name of the target GameObject")),
			required("componentType", str("Unity component type name (e.g. Rigidbody, BoxCollider, AudioSource, MeshRenderer)")),
		},
	},

	"gameobject_component_remove": {
		Description: "Remove a component from a GameObject by type name.",
		Params: []Param{
			required("name", str("Name of the target GameObject")),
			required("componentType", str("Component type name to remove")),
		},
		Annotations: destructive,
	},

	"gameobject_find_by_tag": {
		Description: "Find all GameObjects with a specific tag. Returns name, active state, and layer for each match.",
		Params: []Param{
			required("tag", str("Tag to search for (e.g. Player, MainCamera, Enemy)")),
		},
		Annotations: readOnly,
	},

	"gameobject_tag": {
		Description: "Set the tag of a GameObject.",
		Params: []Param{
			required("name", str("Name of the GameObject")),
			required("tag", str("Tag to set (must be defined in Unity Tag Manager)")),
		},
		Annotations: idempotent,
	},

	"gameobject_layer": {
		Description: "Set the layer of a GameObject. Accepts layer number (0-31) or layer name.",
		Params: []Param{
			required("name", str("Name of the GameObject")),
			required("layer", str("Layer number (0-31) or layer name (e.g. Default, UI, Water)")),
		},
		Annotations: idempotent,
	},
}
