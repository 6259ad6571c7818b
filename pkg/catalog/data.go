package catalog

// Tab layout for the editor, matching the order the dedicated server's
// shipped serverconfig.xml documents its settings in.
var layout = map[Category][]string{
	General: {
		"ServerName", "ServerDescription", "ServerWebsiteURL", "ServerPassword",
		"ServerLoginConfirmationText", "Region", "Language", "ServerPort",
		"ServerVisibility", "ServerDisabledNetworkProtocols", "ServerMaxWorldTransferSpeedKiBs",
		"ServerMaxPlayerCount", "ServerReservedSlots", "ServerReservedSlotsPermission",
		"ServerAdminSlots", "ServerAdminSlotsPermission", "WebDashboardEnabled",
		"WebDashboardPort", "WebDashboardUrl", "EnableMapRendering", "TelnetEnabled",
		"TelnetPort", "TelnetPassword", "TelnetFailedLoginLimit", "TelnetFailedLoginsBlocktime",
		"TerminalWindowEnabled", "AdminFileName", "ServerAllowCrossplay", "EACEnabled",
		"IgnoreEOSSanctions", "HideCommandExecutionLog", "MaxUncoveredMapChunksPerPlayer",
	},
	World: {
		"PersistentPlayerProfiles", "MaxChunkAge", "SaveDataLimit", "GameWorld",
		"WorldGenSeed", "WorldGenSize", "GameName", "GameMode",
	},
	Difficulty: {
		"GameDifficulty", "BlockDamagePlayer", "BlockDamageAI", "BlockDamageAIBM",
		"XPMultiplier", "PlayerSafeZoneLevel", "PlayerSafeZoneHours",
	},
	Rules: {
		"BuildCreate", "DayNightLength", "DayLightLength", "BiomeProgression",
		"StormFreq", "DeathPenalty", "DropOnDeath", "DropOnQuit",
		"BedrollDeadZoneSize", "BedrollExpiryTime", "AllowSpawnNearFriend",
		"CameraRestrictionMode", "JarRefund",
	},
	Performance: {
		"MaxSpawnedZombies", "MaxSpawnedAnimals", "ServerMaxAllowedViewDistance",
		"MaxQueuedMeshLayers",
	},
	Zombies: {
		"EnemySpawnMode", "EnemyDifficulty", "ZombieFeralSense", "ZombieMove",
		"ZombieMoveNight", "ZombieFeralMove", "ZombieBMMove", "AISmellMode",
		"BloodMoonFrequency", "BloodMoonRange", "BloodMoonWarning", "BloodMoonEnemyCount",
	},
	Loot: {
		"LootAbundance", "LootRespawnDays", "AirDropFrequency", "AirDropMarker",
	},
	Multiplayer: {
		"PartySharedKillRange", "PlayerKillingMode",
	},
	Claims: {
		"LandClaimCount", "LandClaimSize", "LandClaimDeadZone", "LandClaimExpiryTime",
		"LandClaimDecayMode", "LandClaimOnlineDurabilityModifier", "LandClaimOfflineDurabilityModifier",
		"LandClaimOfflineDelay", "DynamicMeshEnabled", "DynamicMeshLandClaimOnly",
		"DynamicMeshLandClaimBuffer", "DynamicMeshMaxItemCache",
	},
	Other: {
		"TwitchServerPermission", "TwitchBloodMoonAllowed", "QuestProgressionDailyLimit",
	},
}

// Official descriptions, used when the loaded file carries no comment for a
// property. Texts follow the dedicated server's shipped documentation.
var descriptions = map[string]string{
	"ServerName":                  "Whatever you want the name of the server to be.",
	"ServerDescription":           "Whatever you want the server description to be, will be shown in the server browser.",
	"ServerWebsiteURL":            "Website URL for the server, will be shown in the server browser as a clickable link",
	"ServerPassword":              "Password to gain entry to the server",
	"ServerLoginConfirmationText": "If set the user will see the message during joining the server and has to confirm it before continuing. For more complex changes to this window you can change the \"serverjoinrulesdialog\" window in XUi",
	"Region":                      "The region this server is in. Values: NorthAmericaEast, NorthAmericaWest, CentralAmerica, SouthAmerica, Europe, Russia, Asia, MiddleEast, Africa, Oceania",
	"Language":                    "Primary language for players on this server. Values: Use any language name that you would users expect to search for. Should be the English name of the language, e.g. not \"Deutsch\" but \"German\"",
	"ServerPort":                  "Port you want the server to listen on. Keep it in the ranges 26900 to 26905 or 27015 to 27020 if you want PCs on the same LAN to find it as a LAN server.",
	"ServerVisibility":            "Visibility of this server: 2 = public, 1 = only shown to friends, 0 = not listed. As you are never friend of a dedicated server setting this to \"1\" will only work when the first player connects manually by IP.",
	"ServerDisabledNetworkProtocols":  "Networking protocols that should not be used. Separated by comma. Possible values: LiteNetLib, SteamNetworking. Dedicated servers should disable SteamNetworking if there is no NAT router in between your users and the server or when port-forwarding is set up correctly",
	"ServerMaxWorldTransferSpeedKiBs": "Maximum (!) speed in kiB/s the world is transferred at to a client on first connect if it does not have the world yet. Maximum is about 1300 kiB/s, even if you set a higher value.",
	"ServerMaxPlayerCount":            "Maximum Concurrent Players",
	"ServerReservedSlots":             "Out of the MaxPlayerCount this many slots can only be used by players with a specific permission level",
	"ServerReservedSlotsPermission":   "Required permission level to use reserved slots above",
	"ServerAdminSlots":                "This many admins can still join even if the server has reached MaxPlayerCount",
	"ServerAdminSlotsPermission":      "Required permission level to use the admin slots above",
	"WebDashboardEnabled":             "Enable/disable the web dashboard",
	"WebDashboardPort":                "Port of the web dashboard",
	"WebDashboardUrl":                 "External URL to the web dashboard if not just using the public IP of the server, e.g. if the web dashboard is behind a reverse proxy. Needs to be the full URL, like \"https://domainOfReverseProxy.tld:1234/\". Can be left empty if directly using the public IP and dashboard port",
	"EnableMapRendering":              "Enable/disable rendering of the map to tile images while exploring it. This is used e.g. by the web dashboard to display a view of the map.",
	"TelnetEnabled":                   "Enable/Disable the telnet",
	"TelnetPort":                      "Port of the telnet server",
	"TelnetPassword":                  "Password to gain entry to telnet interface. If no password is set the server will only listen on the local loopback interface",
	"TelnetFailedLoginLimit":          "After this many wrong passwords from a single remote client the client will be blocked from connecting to the Telnet interface",
	"TelnetFailedLoginsBlocktime":     "How long will the block persist (in seconds)",
	"TerminalWindowEnabled":           "Show a terminal window for log output / command input (Windows only)",
	"AdminFileName":                   "Server admin file name. Path relative to UserDataFolder/Saves",
	"ServerAllowCrossplay":            "Enables/Disables crossplay, crossplay servers will only be found in searches and joinable if sanctions are not ignored, and have a default or fewer player slot count",
	"EACEnabled":                      "Enables/Disables EasyAntiCheat",
	"IgnoreEOSSanctions":              "Ignore EOS sanctions when allowing players to join",
	"HideCommandExecutionLog":         "Hide logging of command execution. 0 = show everything, 1 = hide only from Telnet/ControlPanel, 2 = also hide from remote game clients, 3 = hide everything",
	"MaxUncoveredMapChunksPerPlayer":  "Override how many chunks can be uncovered on the in-game map by each player. Resulting max map file size limit per player is (x * 512 Bytes), uncovered area is (x * 256 m²). Default 131072 means max 32 km² can be uncovered at any time",

	"PersistentPlayerProfiles": "If disabled a player can join with any selected profile. If true they will join with the last profile they joined with",
	"MaxChunkAge":              "The number of in-game days which must pass since visiting a chunk before it will reset to its original state if not revisited or protected (e.g. by a land claim or bedroll being in close proximity).",
	"SaveDataLimit":            "The maximum disk space allowance for each saved game in megabytes (MB). Saved chunks may be forcibly reset to their original states to free up space when this limit is reached. Negative values disable the limit.",
	"GameWorld":                "\"RWG\" (see WorldGenSeed and WorldGenSize options below) or any already existing world name in the Worlds folder (currently shipping with e.g. \"Navezgane\", \"Pregen06k01\", \"Pregen06k02\", \"Pregen08k01\", \"Pregen08k02\", ...)",
	"WorldGenSeed":             "If RWG this is the seed for the generation of the new world. If a world with the resulting name already exists it will simply load it",
	"WorldGenSize":             "6144, 8192, 10240 If GameWorld = RWG, this controls the width and height of the created world. Officially supported sizes are between 6144 and 10240 and must be a multiple of 2048, e.g. 6144, 8192, 10240.",
	"GameName":                 "Whatever you want the game name to be (allowed [A-Za-z0-9_-. ]). This affects the save game name as well as the seed used when placing decoration (trees etc.) in the world. It does not control the generic layout of the world if creating an RWG world",
	"GameMode":                 "GameModeSurvival",

	"GameDifficulty":      "0 - 5, 0=easiest, 5=hardest",
	"BlockDamagePlayer":   "How much damage do players to blocks (percentage in whole numbers)",
	"BlockDamageAI":       "How much damage do AIs to blocks (percentage in whole numbers)",
	"BlockDamageAIBM":     "How much damage do AIs during blood moons to blocks (percentage in whole numbers)",
	"XPMultiplier":        "XP gain multiplier (percentage in whole numbers)",
	"PlayerSafeZoneLevel": "If a player is less or equal this level he will create a safe zone (no enemies) when spawned",
	"PlayerSafeZoneHours": "Hours in world time this safe zone exists",

	"BuildCreate":          "cheat mode on/off",
	"DayNightLength":       "real time minutes per in game day: 60 minutes",
	"DayLightLength":       "in game hours the sun shines per day: 18 hours day light per in game day",
	"BiomeProgression":     "Enables biome hazards and loot stage caps to promote biome progression. Loot stage caps are increased by completing biome challenges.",
	"StormFreq":            "Adjusts the frequency of storms. 0% turns them off. Vanilla values: 0, 50, 100, 150, 200, 300, 400, 500",
	"DeathPenalty":         "Penalty after dying. 0 = Nothing. 1 = Default: Classic XP Penalty. 2 = Injured: You keep most of your de-buffs. Food and Water is set to 50% on respawn. 3 = Permanent Death: Your character is completely reset. You will respawn with a fresh start within the saved game.",
	"DropOnDeath":          "0 = nothing, 1 = everything, 2 = toolbelt only, 3 = backpack only, 4 = delete all",
	"DropOnQuit":           "0 = nothing, 1 = everything, 2 = toolbelt only, 3 = backpack only",
	"BedrollDeadZoneSize":  "Size (box \"radius\", so a box with 2 times the given value for each side's length) of bedroll dead zone, no zombies will spawn inside this area, and any cleared sleeper volumes that touch a bedroll deadzone will not spawn after they've been cleared.",
	"BedrollExpiryTime":    "Number of real world days a bedroll stays active after owner was last online",
	"AllowSpawnNearFriend": "Can new players joining the server for the first time select to join near any friend playing at the same time? 0 = Disabled, 1 = Always, 2 = Only near friends in forest biome",
	"CameraRestrictionMode": "0 = Players can freely swap between first and third person camera modes, 1 = Restricted to first person, 2 = Restricted to third person",
	"JarRefund":             "0, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100% The empty jar refund percentage after consuming an item.",

	"MaxSpawnedZombies":            "This setting covers the entire map. There can only be this many zombies on the entire map at one time. Changing this setting has a huge impact on performance.",
	"MaxSpawnedAnimals":            "If your server has a large number of players you can increase this limit to add more wildlife. Animals don't consume as much CPU as zombies. NOTE: That this doesn't cause more animals to spawn arbitrarily: The biome spawning system only spawns a certain number of animals in a given area, but if you have lots of players that are all spread out then you may be hitting the limit and can increase it.",
	"ServerMaxAllowedViewDistance": "Max view distance a client may request (6 - 12). High impact on memory usage and performance.",
	"MaxQueuedMeshLayers":          "Maximum amount of Chunk mesh layers that can be enqueued during mesh generation. Reducing this will improve memory usage but may increase Chunk generation time",

	"EnemySpawnMode":      "Enable/Disable enemy spawning",
	"EnemyDifficulty":     "0 = Normal, 1 = Feral",
	"ZombieFeralSense":    "0-3 (Off, Day, Night, All)",
	"ZombieMove":          "0-4 (walk, jog, run, sprint, nightmare)",
	"ZombieMoveNight":     "0-4 (walk, jog, run, sprint, nightmare)",
	"ZombieFeralMove":     "0-4 (walk, jog, run, sprint, nightmare)",
	"ZombieBMMove":        "0-4 (walk, jog, run, sprint, nightmare)",
	"AISmellMode":         "0-5 (off, walk, jog, run, sprint, nightmare)",
	"BloodMoonFrequency":  "What frequency (in days) should a blood moon take place. Set to \"0\" for no blood moons",
	"BloodMoonRange":      "How many days can the actual blood moon day randomly deviate from the above setting. Setting this to 0 makes blood moons happen exactly each Nth day as specified in BloodMoonFrequency",
	"BloodMoonWarning":    "The Hour number that the red day number begins on a blood moon day. Setting this to -1 makes the red never show.",
	"BloodMoonEnemyCount": "This is the number of zombies that can be alive (spawned at the same time) at any time PER PLAYER during a blood moon horde, however, MaxSpawnedZombies overrides this number in multiplayer games. Also note that your game stage sets the max number of zombies PER PARTY. Low game stage values can result in lower number of zombies than the BloodMoonEnemyCount setting. Changing this setting has a huge impact on performance.",

	"LootAbundance":    "Percentage in whole numbers",
	"LootRespawnDays":  "Days in whole numbers",
	"AirDropFrequency": "How often airdrop occur in game-hours, 0 == never",
	"AirDropMarker":    "Sets if a marker is added to map/compass for air drops.",

	"PartySharedKillRange": "The distance you must be within to receive party shared kill XP and quest party kill objective credit.",
	"PlayerKillingMode":    "Player Killing Settings (0 = No Killing, 1 = Kill Allies Only, 2 = Kill Strangers Only, 3 = Kill Everyone)",

	"LandClaimCount":                     "Maximum allowed land claims per player.",
	"LandClaimSize":                      "Size in blocks that is protected by a keystone",
	"LandClaimDeadZone":                  "Keystones must be this many blocks apart (unless you are friends with the other player)",
	"LandClaimExpiryTime":                "The number of real world days a player can be offline before their claims expire and are no longer protected",
	"LandClaimDecayMode":                 "Controls how offline players land claims decay. 0=Slow (Linear) , 1=Fast (Exponential), 2=None (Full protection until claim is expired).",
	"LandClaimOnlineDurabilityModifier":  "How much protected claim area block hardness is increased when a player is online. 0 means infinite (no damage will ever be taken). Default is 4x",
	"LandClaimOfflineDurabilityModifier": "How much protected claim area block hardness is increased when a player is offline. 0 means infinite (no damage will ever be taken). Default is 4x",
	"LandClaimOfflineDelay":              "The number of minutes after a player logs out that the land claim area hardness transitions from online to offline. Default is 0",
	"DynamicMeshEnabled":                 "Is Dynamic Mesh system enabled",
	"DynamicMeshLandClaimOnly":           "Is Dynamic Mesh system only active in player LCB areas",
	"DynamicMeshLandClaimBuffer":         "Dynamic Mesh LCB chunk radius",
	"DynamicMeshMaxItemCache":            "How many items can be processed concurrently, higher values use more RAM",

	"TwitchServerPermission":     "Required permission level to use twitch integration on the server",
	"TwitchBloodMoonAllowed":     "If the server allows twitch actions during a blood moon. This could cause server lag with extra zombies being spawned during blood moon.",
	"QuestProgressionDailyLimit": "Limits the number of quests that contribute to quest tier progression a player can complete each day. Quests after the limit can still be completed for rewards.",
}
