package schemas

var buildSchemas = map[string]CuratedSchema{
	"build_settings": {
		Description: "Get current build settings: active platform, enabled scenes, development mode, player settings (company, product, version).",
		Annotations: readOnly,
	},

	"build_player_settings": {
		Description: "Update Player settings. All fields are optional: only provided fields are changed.",
		Params: []Param{
			optional("companyName", str("Company name")),
			optional("productName", str("Product name")),
			optional("bundleVersion", str("Version string (e.g. '1.0.0')")),
			optional("fullscreen", str("'true' for fullscreen, 'false' for windowed")),
			optional("defaultScreenWidth", num("Default screen width in pixels")),
			optional("defaultScreenHeight", num("Default screen height in pixels")),
		},
		Annotations: idempotent,
	},

	"build_switch_platform": {
		Description: "Switch the active build platform. This may take time as Unity reimports assets.",
		Params: []Param{
			required("platform", enum("Target platform", "windows", "windows64", "mac", "osx", "linux", "android", "ios", "webgl")),
		},
	},

	"build_start": {
		Description: "Start a build with the current build settings. Uses enabled scenes from Build Settings. This may take a long time.",
		Params: []Param{
			required("outputPath", str("Output path for the build (e.g. 'Build/MyGame.exe' or 'Build/MyGame')")),
		},
	},

	"build_platforms": {
		Description: "List all available build platforms and the currently active one.",
		Annotations: readOnly,
	},
}
