// FILE: internal/entity/tool_entity.go
package entity

type ToolType string

const (
	ToolPluginGen   ToolType = "PLUGIN_GEN"
	ToolModGen      ToolType = "MOD_GEN"
	ToolSkriptGen   ToolType = "SKRIPT_GEN"
	ToolDiscordBot  ToolType = "DISCORD_BOT"
	ToolResourcePck ToolType = "RESOURCE_PACK"
	ToolCrashDoctor ToolType = "CRASH_DOCTOR"
	ToolSkinRender  ToolType = "SKIN_RENDER"
	ToolMotdStudio  ToolType = "MOTD_STUDIO"
)

var premiumTools = map[ToolType]bool{
	ToolModGen:      true,
	ToolDiscordBot:  true,
	ToolResourcePck: true,
}

// IsPremiumTool reports whether a tool requires a paid plan.
func IsPremiumTool(tool ToolType) bool {
	return premiumTools[tool]
}

// VaultTypeOf maps a tool to the vault collection its output lands in.
// Tools without a durable artifact return an empty string.
func VaultTypeOf(tool ToolType) string {
	switch tool {
	case ToolPluginGen:
		return "plugin"
	case ToolModGen:
		return "mod"
	case ToolSkriptGen:
		return "skript"
	case ToolDiscordBot:
		return "discord_bot"
	case ToolResourcePck:
		return "resource_pack"
	default:
		return ""
	}
}
