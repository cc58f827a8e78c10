package schemas

var consoleSchemas = map[string]CuratedSchema{
	"console_log": {
		Description: "Log a message to the Unity Console. Supports Log, Warning, and Error types.",
		Params: []Param{
			required("message", str("Message to log")),
			optional("type", withDefault(enum("Log type: Log, Warning, or Error", "Log", "Warning", "Error"), "Log")),
		},
	},

	"console_clear": {
		Description: "Clear the Unity Console and the internal log buffer.",
		Annotations: destructive,
	},

	"console_logs": {
		Description: "Get captured console logs. Requires console listening to be started first.",
		Params: []Param{
			optional("type", str("Filter by type: Log, Warning, Error, Exception (omit for all)")),
		},
		Annotations: readOnly,
	},

	"console_start": {
		Description: "Start listening to Unity Console messages. Required before console_logs will capture anything.",
	},

	"console_stop": {
		Description: "Stop listening to Unity Console messages.",
	},

	"console_errors": {
		Description: "Get error and warning counts from the console log buffer.",
		Annotations: readOnly,
	},

	"console_compilation": {
		Description: "Get compilation errors and warnings directly from Unity's internal log system (up to 100 entries).",
		Annotations: readOnly,
	},
}
