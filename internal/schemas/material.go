package schemas

var materialSchemas = map[string]CuratedSchema{
	"material_color": {
		Description: "Set a color property on a material. Default property is '_Color' (main color). Color values are 0-1 floats.",
		Params: []Param{
			required("materialPath", str("Asset path to the material (e.g. Assets/Materials/Wood.mat)")),
			optional("propertyName", withDefault(str("Shader property name (default: '_Color')"), "_Color")),
			optional("r", unit("Red (0-1)")),
			optional("g", unit("Green (0-1)")),
			optional("b", unit("Blue (0-1)")),
			optional("a", unit("Alpha (0-1)")),
		},
		Annotations: idempotent,
	},

	"material_float": {
		Description: "Set a float property on a material (e.g. _Metallic, _Smoothness, _Glossiness).",
		Params: []Param{
			required("materialPath", str("Asset path to the material")),
			required("propertyName", str("Shader property name (e.g. _Metallic, _Smoothness)")),
			required("value", num("Float value to set")),
		},
		Annotations: idempotent,
	},

	"material_texture": {
		Description: "Set a texture on a material. Default property is '_MainTex' (albedo/diffuse).",
		Params: []Param{
			required("materialPath", str("Asset path to the material")),
			optional("texturePath", str("Asset path to the texture (omit to clear)")),
			optional("propertyName", withDefault(str("Shader property name (default: '_MainTex')"), "_MainTex")),
		},
		Annotations: idempotent,
	},

	"material_shader": {
		Description: "Change the shader of a material (e.g. 'Standard', 'Universal Render Pipeline/Lit').",
		Params: []Param{
			required("materialPath", str("Asset path to the material")),
			required("shaderName", str("Shader name (e.g. 'Standard', 'Universal Render Pipeline/Lit', 'Unlit/Color')")),
		},
		Annotations: idempotent,
	},

	"material_properties": {
		Description: "List all shader properties of a material with their current values, types, and names.",
		Params: []Param{
			required("materialPath", str("Asset path to the material")),
		},
		Annotations: readOnly,
	},
}
