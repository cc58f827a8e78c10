package schemas

var cameraSchemas = map[string]CuratedSchema{
	"camera_create": {
		Description: "Create a new Camera GameObject in the scene with optional position, FOV, and orthographic mode.",
		Params: []Param{
			optional("name", withDefault(str("Camera name"), "New Camera")),
			optional("x", num("X position")),
			optional("y", num("Y position")),
			optional("z", num("Z position")),
			optional("fov", num("Field of view in degrees (default: 60)")),
			optional("orthographic", str("'true' for orthographic camera")),
		},
	},

	"camera_configure": {
		Description: "Configure an existing camera's properties: FOV, clip planes, orthographic mode, background color, depth.",
		Params: []Param{
			required("name", str("Name of the camera GameObject")),
			optional("fov", num("Field of view in degrees")),
			optional("nearClip", num("Near clip plane distance")),
			optional("farClip", num("Far clip plane distance")),
			optional("orthographic", str("'true' or 'false'")),
			optional("orthographicSize", num("Orthographic camera size")),
			optional("depth", num("Camera render depth/priority")),
		},
		Annotations: idempotent,
	},

	"camera_list": {
		Description: "List all cameras in the scene with their settings (FOV, orthographic, depth, clip planes).",
		Annotations: readOnly,
	},

	"camera_screenshot": {
		Description: "Take a screenshot using ScreenCapture.",
		Params: []Param{
			optional("path", withDefault(str("Output file path"), "Assets/Screenshot.png")),
		},
	},

	"camera_capture": {
		Description: "Capture what a specific camera sees using RenderTexture. Higher quality than screenshot. Falls back to main camera if not specified.",
		Params: []Param{
			optional("name", str("Camera name (falls back to Main Camera)")),
			optional("path", withDefault(str("Output PNG file path"), "Assets/CameraCapture.png")),
			optional("width", withDefault(num("Image width in pixels"), 1280)),
			optional("height", withDefault(num("Image height in pixels"), 720)),
		},
	},
}
