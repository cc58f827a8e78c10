// Package catalog supplies the endpoint list tools are built from: the
// dynamic discovery result when the editor answers, else a static fallback.
package catalog

import "github.com/bobmcallan/uac-mcp/internal/models"

// staticEndpoints mirrors the endpoints shipped with the UAC plugin.
var staticEndpoints = []models.EndpointInfo{
	// core
	{Path: "/api/status", Method: "GET", Category: "core", Description: "Get server status"},
	{Path: "/api/project/info", Method: "GET", Category: "core", Description: "Get project info"},
	// gameobject
	{Path: "/api/gameobject/create", Method: "POST", Category: "gameobject", Description: "Create gameobject"},
	{Path: "/api/gameobject/delete", Method: "POST", Category: "gameobject", Description: "Delete gameobject"},
	{Path: "/api/gameobject/transform", Method: "POST", Category: "gameobject", Description: "Transform gameobject"},
	{Path: "/api/gameobject/list", Method: "GET", Category: "gameobject", Description: "List gameobjects"},
	{Path: "/api/gameobject/clone", Method: "POST", Category: "gameobject", Description: "Clone gameobject"},
	{Path: "/api/gameobject/active", Method: "POST", Category: "gameobject", Description: "Set gameobject active"},
	{Path: "/api/gameobject/tag", Method: "POST", Category: "gameobject", Description: "Set gameobject tag"},
	{Path: "/api/gameobject/layer", Method: "POST", Category: "gameobject", Description: "Set gameobject layer"},
	{Path: "/api/gameobject/findByTag", Method: "GET", Category: "gameobject", Description: "Find gameobjects by tag"},
	{Path: "/api/gameobject/component/add", Method: "POST", Category: "gameobject", Description: "Add component"},
	{Path: "/api/gameobject/component/remove", Method: "POST", Category: "gameobject", Description: "Remove component"},
	{Path: "/api/gameobject/components", Method: "GET", Category: "gameobject", Description: "List components"},
	{Path: "/api/gameobject/hierarchy", Method: "POST", Category: "gameobject", Description: "Set parent"},
	{Path: "/api/gameobject/material", Method: "POST", Category: "gameobject", Description: "Set material"},
	// scene
	{Path: "/api/scene/active", Method: "GET", Category: "scene", Description: "Get active scene"},
	{Path: "/api/scene/create", Method: "POST", Category: "scene", Description: "Create scene"},
	{Path: "/api/scene/open", Method: "POST", Category: "scene", Description: "Open scene"},
	{Path: "/api/scene/save", Method: "POST", Category: "scene", Description: "Save scene"},
	{Path: "/api/scene/close", Method: "POST", Category: "scene", Description: "Close scene"},
	{Path: "/api/scene/loaded", Method: "GET", Category: "scene", Description: "Get loaded scenes"},
	{Path: "/api/scene/setactive", Method: "POST", Category: "scene", Description: "Set active scene"},
	// asset
	{Path: "/api/asset/create", Method: "POST", Category: "asset", Description: "Create asset"},
	{Path: "/api/asset/delete", Method: "POST", Category: "asset", Description: "Delete asset"},
	{Path: "/api/asset/rename", Method: "POST", Category: "asset", Description: "Rename asset"},
	{Path: "/api/asset/move", Method: "POST", Category: "asset", Description: "Move asset"},
	{Path: "/api/assets/list", Method: "GET", Category: "asset", Description: "List assets"},
	// material
	{Path: "/api/material/color", Method: "POST", Category: "material", Description: "Set material color"},
	{Path: "/api/material/float", Method: "POST", Category: "material", Description: "Set material float"},
	{Path: "/api/material/texture", Method: "POST", Category: "material", Description: "Set material texture"},
	{Path: "/api/material/shader", Method: "POST", Category: "material", Description: "Set material shader"},
	{Path: "/api/material/properties", Method: "GET", Category: "material", Description: "List material properties"},
	// prefab
	{Path: "/api/prefab/create", Method: "POST", Category: "prefab", Description: "Create prefab"},
	{Path: "/api/prefab/instantiate", Method: "POST", Category: "prefab", Description: "Instantiate prefab"},
	{Path: "/api/prefab/apply", Method: "POST", Category: "prefab", Description: "Apply prefab overrides"},
	{Path: "/api/prefab/unpack", Method: "POST", Category: "prefab", Description: "Unpack prefab"},
	// build
	{Path: "/api/build/settings", Method: "GET", Category: "build", Description: "Get build settings"},
	{Path: "/api/build/playerSettings", Method: "POST", Category: "build", Description: "Set player settings"},
	{Path: "/api/build/switchPlatform", Method: "POST", Category: "build", Description: "Switch platform"},
	{Path: "/api/build/start", Method: "POST", Category: "build", Description: "Start build"},
	{Path: "/api/build/platforms", Method: "GET", Category: "build", Description: "Get platforms"},
	// console
	{Path: "/api/console/log", Method: "POST", Category: "console", Description: "Log message"},
	{Path: "/api/console/clear", Method: "POST", Category: "console", Description: "Clear console"},
	{Path: "/api/console/logs", Method: "GET", Category: "console", Description: "Get logs"},
	{Path: "/api/console/start", Method: "POST", Category: "console", Description: "Start listening"},
	{Path: "/api/console/stop", Method: "POST", Category: "console", Description: "Stop listening"},
	{Path: "/api/console/errors", Method: "GET", Category: "console", Description: "Get error counts"},
	{Path: "/api/console/compilation", Method: "GET", Category: "console", Description: "Get compilation errors"},
	// selection
	{Path: "/api/selection/get", Method: "GET", Category: "selection", Description: "Get selection"},
	{Path: "/api/selection/set", Method: "POST", Category: "selection", Description: "Set selection"},
	{Path: "/api/selection/asset", Method: "POST", Category: "selection", Description: "Select asset"},
	{Path: "/api/selection/clear", Method: "POST", Category: "selection", Description: "Clear selection"},
	{Path: "/api/selection/all", Method: "POST", Category: "selection", Description: "Select all"},
	{Path: "/api/selection/focus", Method: "POST", Category: "selection", Description: "Focus selection"},
	// camera
	{Path: "/api/camera/create", Method: "POST", Category: "camera", Description: "Create camera"},
	{Path: "/api/camera/configure", Method: "POST", Category: "camera", Description: "Configure camera"},
	{Path: "/api/camera/list", Method: "GET", Category: "camera", Description: "List cameras"},
	{Path: "/api/camera/screenshot", Method: "POST", Category: "camera", Description: "Take screenshot"},
	{Path: "/api/camera/capture", Method: "POST", Category: "camera", Description: "Capture camera view"},
	// discovery
	{Path: "/api/discover", Method: "GET", Category: "discovery", Description: "Discover all endpoints"},
	{Path: "/api/categories", Method: "GET", Category: "discovery", Description: "List categories"},
}

// StaticEndpoints returns a copy of the built-in catalog.
func StaticEndpoints() []models.EndpointInfo {
	out := make([]models.EndpointInfo, len(staticEndpoints))
	copy(out, staticEndpoints)
	return out
}
